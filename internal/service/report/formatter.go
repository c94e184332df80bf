package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"strings"

	"github.com/attendify/attendify-backend-go/internal/domain/report"
)

//go:embed templates/*.html
var templateFS embed.FS

var reportTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Statuses that count as a worked day. For these, a present reason replaces
// the status/hours line.
var workedStatuses = map[string]bool{
	"Working Day":    true,
	"Present":        true,
	"Half Day":       true,
	"Work From Home": true,
	"Partial":        true,
}

type decodedStats struct {
	summary      report.Summary
	details      report.Details
	daily        []report.DailyStatusEntry
	appreciation *string
}

type reportView struct {
	EmployeeName     string
	Week             string
	Month            string
	TotalHours       string
	FullDays         int
	AbsentDays       int
	MissedPunches    int
	MissedPunchDates []string
	DailyLines       []string
	AppreciationKind string
	Appreciation     string
}

// BuildReport renders one employee's stats bundle into a standalone HTML
// document. It is pure: identical input yields byte-identical output, and no
// I/O happens here.
func BuildReport(employeeName, month string, stats json.RawMessage) (string, error) {
	decoded, err := decodeStats(stats)
	if err != nil {
		return "", err
	}

	mapped, err := mapStats(decoded)
	if err != nil {
		return "", err
	}

	daily := append([]report.DailyStatusEntry(nil), decoded.daily...)
	sort.SliceStable(daily, func(i, j int) bool {
		return daily[i].Date < daily[j].Date
	})
	lines := make([]string, 0, len(daily))
	for _, entry := range daily {
		lines = append(lines, dailyLine(entry))
	}

	week := decoded.summary.Week
	if week == "" {
		week = "Not specified"
	}

	view := reportView{
		EmployeeName:     employeeName,
		Week:             week,
		Month:            month,
		TotalHours:       fmt.Sprintf("%.2f", mapped.TotalHours),
		FullDays:         mapped.FullDays,
		AbsentDays:       mapped.AbsentDays,
		MissedPunches:    mapped.MissedPunches,
		MissedPunchDates: mapped.MissedPunchDates,
		DailyLines:       lines,
		AppreciationKind: appreciationKind(mapped),
	}
	if mapped.Appreciation != nil {
		view.Appreciation = *mapped.Appreciation
	}

	var body bytes.Buffer
	if err := reportTemplates.ExecuteTemplate(&body, "report.html", view); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return body.String(), nil
}

// decodeStats normalizes the stats bundle. Stats, summary, details and
// dailyStatus may each independently arrive as a JSON-encoded string; a
// failure at any level is reported with that level's sentinel.
func decodeStats(raw json.RawMessage) (decodedStats, error) {
	var out decodedStats

	var stats report.ReportStats
	if err := unwrapJSON(raw, &stats); err != nil {
		return out, fmt.Errorf("%w: %v", report.ErrInvalidStats, err)
	}
	out.appreciation = stats.AppreciationMessage

	if err := unwrapJSON(stats.Summary, &out.summary); err != nil {
		return out, fmt.Errorf("%w: %v", report.ErrInvalidSummary, err)
	}

	if err := unwrapJSON(stats.Details, &out.details); err != nil {
		return out, fmt.Errorf("%w: %v", report.ErrInvalidDetails, err)
	}

	if err := unwrapJSON(out.details.DailyStatus, &out.daily); err != nil {
		return out, fmt.Errorf("%w: %v", report.ErrInvalidDailyStatus, err)
	}

	return out, nil
}

// unwrapJSON decodes raw into dst, first unwrapping one level of string
// encoding when the value arrived as a JSON-encoded string. An absent or null
// value leaves dst at its zero value.
func unwrapJSON(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		trimmed = []byte(s)
	}
	return json.Unmarshal(trimmed, dst)
}

func mapStats(decoded decodedStats) (report.MappedStats, error) {
	hours, err := totalHours(decoded.summary.TotalHours)
	if err != nil {
		return report.MappedStats{}, fmt.Errorf("%w: %v", report.ErrStatsMapping, err)
	}

	dates := make([]string, 0, len(decoded.details.MissedPunchDetails))
	for _, punch := range decoded.details.MissedPunchDetails {
		dates = append(dates, punch.Date)
	}

	return report.MappedStats{
		FullDays:         decoded.summary.WorkingDays,
		AbsentDays:       decoded.summary.AbsentDays,
		MissedPunches:    decoded.summary.MissedPunches,
		MissedPunchDates: dates,
		TotalHours:       hours,
		Appreciation:     decoded.appreciation,
	}, nil
}

// totalHours coerces the raw totalHours value to a float. Absent and falsy
// values, an explicit 0 included, all come out as 0.0.
func totalHours(raw json.RawMessage) (float64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return 0, nil
	}

	var f float64
	if err := json.Unmarshal(trimmed, &f); err == nil {
		return f, nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		return strconv.ParseFloat(s, 64)
	}

	return 0, fmt.Errorf("totalHours is not a number: %s", trimmed)
}

func dailyLine(entry report.DailyStatusEntry) string {
	date := entry.Date
	if date == "" {
		date = "Not specified"
	}

	if workedStatuses[entry.Status] && entry.Reason != "" {
		return fmt.Sprintf("%s: %s.", date, entry.Reason)
	}

	status := entry.Status
	if status == "" {
		status = "Not provided"
	}
	var hours float64
	if entry.Hours != nil {
		hours = *entry.Hours
	}
	return fmt.Sprintf("%s: %s (%.2f hrs).", date, status, hours)
}

// appreciationKind picks the styling band for the appreciation block. Hours
// outside both bands drop the block entirely, even when a message is present.
func appreciationKind(mapped report.MappedStats) string {
	if mapped.Appreciation == nil || *mapped.Appreciation == "" {
		return ""
	}
	switch {
	case mapped.TotalHours > 40:
		return "positive"
	case mapped.TotalHours >= 20 && mapped.TotalHours <= 40:
		return "caution"
	default:
		return ""
	}
}
