// Package chat orchestrates one user turn: moderation gate, product
// matching, prompt assembly, completion call, history update.
package chat

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"storebot/internal/catalog"
	"storebot/internal/logger"
	"storebot/internal/matcher"
	"storebot/internal/moderation"
	"storebot/internal/prompt"
)

// RefusalMessage is returned for input flagged by the moderation gate.
const RefusalMessage = "Sorry, we can't process this request. Please try rephrasing your message."

// Gate classifies user input before any completion is attempted.
type Gate interface {
	Check(ctx context.Context, text string) moderation.Verdict
}

// Completer turns a full message list into reply text. Implementations
// must always return a string, never fail.
type Completer interface {
	Complete(ctx context.Context, messages []*schema.Message) string
}

// Controller runs the message-processing pipeline. It is stateless
// between calls; the catalog is the only shared, read-only resource.
type Controller struct {
	catalog   *catalog.Catalog
	gate      Gate
	completer Completer
}

// NewController wires the pipeline components together.
func NewController(c *catalog.Catalog, gate Gate, completer Completer) *Controller {
	return &Controller{catalog: c, gate: gate, completer: completer}
}

// ProcessMessage handles one user turn and returns the reply plus the
// updated history. Flagged input gets the fixed refusal and leaves
// history untouched: a blocked message leaves no trace in conversation
// state. The system prompt is rebuilt fresh on every call so it always
// reflects the products matched against the current message, not
// whatever earlier turns mentioned. Never returns an error.
func (c *Controller) ProcessMessage(ctx context.Context, userText string, history []*schema.Message) (string, []*schema.Message) {
	verdict := c.gate.Check(ctx, userText)
	if verdict.Flagged {
		logger.Info().Int("history_len", len(history)).Msg("Input blocked by moderation gate")
		return RefusalMessage, history
	}
	logger.Debug().Msg("Input passed moderation check")

	matches := matcher.Match(userText, c.catalog)
	logger.Debug().Int("matched", len(matches)).Msg("Extracted product matches")

	productBlock := prompt.RenderProducts(matches)
	systemPrompt := prompt.BuildSystemPrompt(productBlock)

	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(systemPrompt))
	messages = append(messages, history...)
	messages = append(messages, schema.UserMessage(userText))

	reply := c.completer.Complete(ctx, messages)
	logger.Debug().Int("reply_len", len(reply)).Msg("Generated response")

	newHistory := make([]*schema.Message, 0, len(history)+2)
	newHistory = append(newHistory, history...)
	newHistory = append(newHistory, schema.UserMessage(userText), schema.AssistantMessage(reply, nil))

	return reply, newHistory
}
