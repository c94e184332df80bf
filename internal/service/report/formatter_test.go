package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/attendify/attendify-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func sampleStats(totalHours any, appreciation string) map[string]any {
	summary := map[string]any{
		"week":          "2025-05-01 - 2025-05-07",
		"workingDays":   5,
		"absentDays":    1,
		"missedPunches": 1,
	}
	if totalHours != nil {
		summary["totalHours"] = totalHours
	}

	stats := map[string]any{
		"summary": summary,
		"details": map[string]any{
			"missedPunchDetails": []map[string]any{{"date": "2025-05-03"}},
			"absenceDetails":     []map[string]any{},
			"dailyStatus": []map[string]any{
				{"date": "2025-05-02", "status": "Absent", "hours": 0},
				{"date": "2025-05-01", "status": "Working Day", "reason": "Regular shift", "hours": 8},
			},
		},
	}
	if appreciation != "" {
		stats["appreciationMessage"] = appreciation
	}
	return stats
}

func TestBuildReport_IsPure(t *testing.T) {
	t.Parallel()

	raw := mustJSON(t, sampleStats(45.5, "Great work!"))

	first, err := BuildReport("Asha Rao", "May 2025", raw)
	require.NoError(t, err)
	second, err := BuildReport("Asha Rao", "May 2025", raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildReport_SummarySection(t *testing.T) {
	t.Parallel()

	raw := mustJSON(t, sampleStats(41.257, ""))

	html, err := BuildReport("Asha Rao", "May 2025", raw)
	require.NoError(t, err)

	assert.Contains(t, html, "Dear Asha Rao,")
	assert.Contains(t, html, "week of 2025-05-01 - 2025-05-07 (May 2025)")
	assert.Contains(t, html, "Total Hours Worked: 41.26 hours")
	assert.Contains(t, html, "Full Days Worked: 5")
	assert.Contains(t, html, "Absent: 1")
	assert.Contains(t, html, "Missed Punches: 1")
}

func TestBuildReport_TotalHoursDefaulting(t *testing.T) {
	t.Parallel()

	missing, err := BuildReport("Asha Rao", "May 2025", mustJSON(t, sampleStats(nil, "")))
	require.NoError(t, err)
	explicitZero, err := BuildReport("Asha Rao", "May 2025", mustJSON(t, sampleStats(0, "")))
	require.NoError(t, err)

	assert.Equal(t, missing, explicitZero)
	assert.Contains(t, missing, "Total Hours Worked: 0.00 hours")
}

func TestBuildReport_TotalHoursNumericString(t *testing.T) {
	t.Parallel()

	html, err := BuildReport("Asha Rao", "May 2025", mustJSON(t, sampleStats("42.5", "")))
	require.NoError(t, err)

	assert.Contains(t, html, "Total Hours Worked: 42.50 hours")
}

func TestBuildReport_TotalHoursGarbageString(t *testing.T) {
	t.Parallel()

	_, err := BuildReport("Asha Rao", "May 2025", mustJSON(t, sampleStats("lots", "")))

	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrStatsMapping)
}

func TestBuildReport_AppreciationBanding(t *testing.T) {
	t.Parallel()

	positive, err := BuildReport("Asha Rao", "May 2025", mustJSON(t, sampleStats(45, "Great work!")))
	require.NoError(t, err)
	assert.Contains(t, positive, "Message")
	assert.Contains(t, positive, "#16a34a")
	assert.Contains(t, positive, "Great work!")

	caution, err := BuildReport("Asha Rao", "May 2025", mustJSON(t, sampleStats(30, "Keep it up")))
	require.NoError(t, err)
	assert.Contains(t, caution, "#d97706")
	assert.NotContains(t, caution, "#16a34a")

	// A present message below 20 hours renders no message block at all.
	dropped, err := BuildReport("Asha Rao", "May 2025", mustJSON(t, sampleStats(10, "Nice try")))
	require.NoError(t, err)
	assert.NotContains(t, dropped, ">Message<")
	assert.NotContains(t, dropped, "Nice try")
}

func TestBuildReport_DailyStatusSortedByDate(t *testing.T) {
	t.Parallel()

	html, err := BuildReport("Asha Rao", "May 2025", mustJSON(t, sampleStats(40, "")))
	require.NoError(t, err)

	first := strings.Index(html, "2025-05-01: Regular shift.")
	second := strings.Index(html, "2025-05-02: Absent (0.00 hrs).")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestBuildReport_MissedPunchSectionOnlyWhenNonEmpty(t *testing.T) {
	t.Parallel()

	withPunches, err := BuildReport("Asha Rao", "May 2025", mustJSON(t, sampleStats(40, "")))
	require.NoError(t, err)
	assert.Contains(t, withPunches, "Missed Punch Dates")
	assert.Contains(t, withPunches, "2025-05-03")

	stats := sampleStats(40, "")
	stats["details"].(map[string]any)["missedPunchDetails"] = []map[string]any{}
	without, err := BuildReport("Asha Rao", "May 2025", mustJSON(t, stats))
	require.NoError(t, err)
	assert.NotContains(t, without, "Missed Punch Dates")
}

func TestBuildReport_EmptyDailyStatusPlaceholder(t *testing.T) {
	t.Parallel()

	stats := sampleStats(40, "")
	stats["details"].(map[string]any)["dailyStatus"] = []map[string]any{}

	html, err := BuildReport("Asha Rao", "May 2025", mustJSON(t, stats))
	require.NoError(t, err)

	assert.Contains(t, html, "No daily status records available.")
}

func TestBuildReport_EntryDefaults(t *testing.T) {
	t.Parallel()

	stats := sampleStats(40, "")
	stats["details"].(map[string]any)["dailyStatus"] = []map[string]any{
		{"status": "Absent"},
		{"date": "2025-05-05"},
	}

	html, err := BuildReport("Asha Rao", "May 2025", mustJSON(t, stats))
	require.NoError(t, err)

	assert.Contains(t, html, "Not specified: Absent (0.00 hrs).")
	assert.Contains(t, html, "2025-05-05: Not provided (0.00 hrs).")
}

func TestBuildReport_StringEncodedLevels(t *testing.T) {
	t.Parallel()

	summary := `{"week":"2025-05-01 - 2025-05-07","totalHours":45,"workingDays":5,"absentDays":0,"missedPunches":0}`
	daily := `[{"date":"2025-05-01","status":"Present","hours":9}]`
	details := `{"missedPunchDetails":[],"absenceDetails":[],"dailyStatus":` + mustQuote(t, daily) + `}`
	stats := map[string]any{
		"summary": summary,
		"details": details,
	}

	// The whole bundle itself arrives as a JSON-encoded string too.
	raw := mustJSON(t, string(mustJSON(t, stats)))

	html, err := BuildReport("Asha Rao", "May 2025", raw)
	require.NoError(t, err)

	assert.Contains(t, html, "Total Hours Worked: 45.00 hours")
	assert.Contains(t, html, "2025-05-01: Present (9.00 hrs).")
}

func mustQuote(t *testing.T, s string) string {
	t.Helper()
	b, err := json.Marshal(s)
	require.NoError(t, err)
	return string(b)
}

func TestBuildReport_NamedDecodeFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		stats any
		want  error
	}{
		{"stats not decodable", "definitely not json", report.ErrInvalidStats},
		{"summary not decodable", map[string]any{"summary": "nope", "details": map[string]any{}}, report.ErrInvalidSummary},
		{"details not decodable", map[string]any{"summary": map[string]any{}, "details": "nope"}, report.ErrInvalidDetails},
		{"dailyStatus not decodable", map[string]any{
			"summary": map[string]any{},
			"details": map[string]any{"dailyStatus": "nope"},
		}, report.ErrInvalidDailyStatus},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, err := BuildReport("Asha Rao", "May 2025", mustJSON(t, c.stats))
			require.Error(t, err)
			assert.ErrorIs(t, err, c.want)
		})
	}
}
