package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storebot/internal/catalog"
	"storebot/internal/completion"
	"storebot/internal/moderation"
	"storebot/internal/prompt"
)

type stubGate struct {
	verdict moderation.Verdict
}

func (s *stubGate) Check(_ context.Context, _ string) moderation.Verdict {
	return s.verdict
}

type stubCompleter struct {
	reply string
	seen  []*schema.Message
}

func (s *stubCompleter) Complete(_ context.Context, messages []*schema.Message) string {
	s.seen = messages
	return s.reply
}

func newTestController(flagged bool, reply string) (*Controller, *stubCompleter) {
	completer := &stubCompleter{reply: reply}
	gate := &stubGate{verdict: moderation.Verdict{Flagged: flagged, Categories: map[string]bool{}}}
	return NewController(catalog.Default(), gate, completer), completer
}

func TestProcessMessageHappyPath(t *testing.T) {
	controller, _ := newTestController(false, "We have great phones in stock!")
	history := []*schema.Message{
		schema.UserMessage("hello"),
		schema.AssistantMessage("Hi! How can I help?", nil),
	}

	reply, newHistory := controller.ProcessMessage(context.Background(), "What phones do you have?", history)

	assert.Equal(t, "We have great phones in stock!", reply)
	require.Len(t, newHistory, 4)
	assert.Equal(t, schema.User, newHistory[2].Role)
	assert.Equal(t, "What phones do you have?", newHistory[2].Content)
	assert.Equal(t, schema.Assistant, newHistory[3].Role)
	assert.Equal(t, reply, newHistory[3].Content)
}

func TestSystemPromptIsFirstAndRebuiltFromCurrentTurn(t *testing.T) {
	controller, completer := newTestController(false, "ok")

	// Prior history mentions cameras; the current turn asks about phones.
	history := []*schema.Message{schema.UserMessage("tell me about the dslr")}
	controller.ProcessMessage(context.Background(), "What phones do you have?", history)

	require.NotEmpty(t, completer.seen)
	first := completer.seen[0]
	assert.Equal(t, schema.System, first.Role)
	assert.Contains(t, first.Content, "Phone Selection")
	assert.NotContains(t, first.Content, "FotoSnap DSLR Camera")

	// [system] + history + [current user turn]
	require.Len(t, completer.seen, 3)
	assert.Equal(t, "tell me about the dslr", completer.seen[1].Content)
	assert.Equal(t, "What phones do you have?", completer.seen[2].Content)
}

func TestNoMatchFallsBackToInventoryInvite(t *testing.T) {
	controller, completer := newTestController(false, "ok")

	controller.ProcessMessage(context.Background(), "do you sell garden gnomes?", nil)

	require.NotEmpty(t, completer.seen)
	assert.Contains(t, completer.seen[0].Content, prompt.NoMatchFallback)
}

func TestFlaggedInputReturnsRefusalAndLeavesHistoryAlone(t *testing.T) {
	controller, completer := newTestController(true, "should never be called")
	history := []*schema.Message{schema.UserMessage("hello")}

	reply, newHistory := controller.ProcessMessage(context.Background(), "something awful", history)

	assert.Equal(t, RefusalMessage, reply)
	assert.Equal(t, history, newHistory)
	assert.Len(t, newHistory, 1)
	assert.Nil(t, completer.seen, "completion must not be attempted for blocked input")
}

func TestCompletionFailureStillAppendsTwoTurns(t *testing.T) {
	controller, _ := newTestController(false, completion.Apology)
	history := []*schema.Message{schema.UserMessage("hi"), schema.AssistantMessage("hello!", nil)}

	reply, newHistory := controller.ProcessMessage(context.Background(), "Tell me about the iPhone 16.", history)

	assert.NotEmpty(t, reply)
	assert.Equal(t, completion.Apology, reply)
	assert.Len(t, newHistory, len(history)+2)
}

func TestSingleProductScenario(t *testing.T) {
	controller, completer := newTestController(false, "The iPhone 16 is $999.")

	reply, _ := controller.ProcessMessage(context.Background(), "Tell me about the iPhone 16.", nil)

	assert.Equal(t, "The iPhone 16 is $999.", reply)
	require.NotEmpty(t, completer.seen)
	assert.Contains(t, completer.seen[0].Content, "$999")
}

func TestHistoryInputIsNotMutated(t *testing.T) {
	controller, _ := newTestController(false, "ok")
	history := make([]*schema.Message, 0, 8)
	history = append(history, schema.UserMessage("hello"))
	snapshot := history[0]

	_, newHistory := controller.ProcessMessage(context.Background(), "what tvs do you have?", history)

	require.Len(t, history, 1)
	assert.Same(t, snapshot, history[0])
	assert.NotSame(t, &history, &newHistory)
}

func TestRefusalMessageIsStable(t *testing.T) {
	assert.True(t, strings.HasPrefix(RefusalMessage, "Sorry"))
	assert.NotEmpty(t, RefusalMessage)
}
