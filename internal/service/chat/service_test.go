package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/attendify/attendify-backend-go/internal/pkg/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply      gemini.Reply
	err        error
	lastPrompt string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (gemini.Reply, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func TestBuildPrompt_EmbedsQueryAndRules(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt("Who was absent yesterday?")

	assert.Contains(t, prompt, `"Who was absent yesterday?"`)
	assert.Contains(t, prompt, "YYYY-MM-DD")
	assert.Contains(t, prompt, "Title Case")
	assert.Contains(t, prompt, "If no clear intent, return an empty array.")
}

func TestAnalyze_EmptyArrayReply(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{reply: gemini.Reply{Text: "[]"}}
	svc := NewChatService(gen)

	result := svc.Analyze(context.Background(), "gibberish")

	assert.Empty(t, result.Error)
	require.NotNil(t, result.Actions)
	assert.Len(t, result.Actions, 0)
}

func TestAnalyze_NoArrayInReply(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{reply: gemini.Reply{Text: "I could not determine any intent from that."}}
	svc := NewChatService(gen)

	result := svc.Analyze(context.Background(), "???")

	assert.Len(t, result.Actions, 0)
	assert.NotEmpty(t, result.Error)
}

func TestAnalyze_ArrayWrappedInProse(t *testing.T) {
	t.Parallel()

	reply := "Sure! Here are the actions:\n```json\n" +
		`[{"intent": "attendance_status", "filters": {"employee_name": "Amitesh Sharma", "date": "2025-06-01"}, "message_to_frontend": "Get the attendance status for Amitesh Sharma on 2025-06-01."}]` +
		"\n```\nLet me know if you need more."
	gen := &fakeGenerator{reply: gemini.Reply{Text: reply}}
	svc := NewChatService(gen)

	result := svc.Analyze(context.Background(), "What is Amitesh's status on June 1st?")

	assert.Empty(t, result.Error)
	require.Len(t, result.Actions, 1)
	require.NotNil(t, result.Actions[0].Intent)
	assert.Equal(t, "attendance_status", *result.Actions[0].Intent)
	assert.Equal(t, "Amitesh Sharma", result.Actions[0].Filters["employee_name"])
}

func TestAnalyze_MalformedElementsAreSkipped(t *testing.T) {
	t.Parallel()

	reply := `[
		{"filters": {"date": "2025-05-01"}},
		{"intent": "list_employees", "filters": {"status": "Absent", "date": "2025-06-02"}},
		{"intent": "working_hour", "filters": "not an object"},
		"just a string"
	]`
	gen := &fakeGenerator{reply: gemini.Reply{Text: reply}}
	svc := NewChatService(gen)

	result := svc.Analyze(context.Background(), "who was absent yesterday")

	assert.Empty(t, result.Error)
	require.Len(t, result.Actions, 1)
	assert.Equal(t, "list_employees", *result.Actions[0].Intent)
}

func TestAnalyze_NullIntentIsValid(t *testing.T) {
	t.Parallel()

	reply := `[{"intent": null, "filters": {}, "message_to_frontend": "Nothing specific."}]`
	gen := &fakeGenerator{reply: gemini.Reply{Text: reply}}
	svc := NewChatService(gen)

	result := svc.Analyze(context.Background(), "hm")

	require.Len(t, result.Actions, 1)
	assert.Nil(t, result.Actions[0].Intent)
	require.NotNil(t, result.Actions[0].Filters)
	assert.Len(t, result.Actions[0].Filters, 0)
}

func TestAnalyze_InvalidJSONBetweenBrackets(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{reply: gemini.Reply{Text: `Actions: [{"intent": oops, "filters": }]`}}
	svc := NewChatService(gen)

	result := svc.Analyze(context.Background(), "query")

	assert.Len(t, result.Actions, 0)
	assert.NotEmpty(t, result.Error)
}

func TestAnalyze_BlockedPrompt(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{reply: gemini.Reply{Blocked: true, BlockReason: "SAFETY"}}
	svc := NewChatService(gen)

	result := svc.Analyze(context.Background(), "something unsavoury")

	assert.Len(t, result.Actions, 0)
	assert.True(t, strings.Contains(result.Error, "SAFETY"), "error should carry the block reason: %q", result.Error)
}

func TestAnalyze_GatewayError(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{err: errors.New("gemini api error: connection refused")}
	svc := NewChatService(gen)

	result := svc.Analyze(context.Background(), "query")

	assert.Len(t, result.Actions, 0)
	assert.Contains(t, result.Error, "connection refused")
}

func TestAnalyze_QueryReachesTheModel(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{reply: gemini.Reply{Text: "[]"}}
	svc := NewChatService(gen)

	svc.Analyze(context.Background(), "List employees with partial day on April 29.")

	assert.Contains(t, gen.lastPrompt, "List employees with partial day on April 29.")
}
