// Package moderation screens customer input through the OpenAI
// moderation endpoint before any completion is attempted.
package moderation

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"storebot/internal/logger"
)

// Policy decides what a classifier outage means for the caller.
type Policy string

const (
	// FailOpen treats an unavailable classifier as a pass. Availability
	// over strict safety: legitimate users are not blocked by outages.
	FailOpen Policy = "open"
	// FailClosed treats an unavailable classifier as a block.
	FailClosed Policy = "closed"
)

// Verdict is the gate's answer for one piece of text.
type Verdict struct {
	Flagged    bool            `json:"flagged"`
	Categories map[string]bool `json:"categories"`
}

// API is the slice of the OpenAI client the gate needs.
type API interface {
	Moderations(ctx context.Context, request openai.ModerationRequest) (openai.ModerationResponse, error)
}

// Gate classifies input text as safe or unsafe.
type Gate struct {
	api    API
	model  string
	policy Policy
}

// NewGate builds a moderation gate over an OpenAI-compatible client.
func NewGate(api API, model string, policy Policy) *Gate {
	if policy != FailClosed {
		policy = FailOpen
	}
	return &Gate{api: api, model: model, policy: policy}
}

// Check classifies text. It never returns an error: on classifier
// failure the configured policy decides the verdict and the error is
// logged instead of propagated.
func (g *Gate) Check(ctx context.Context, text string) Verdict {
	resp, err := g.api.Moderations(ctx, openai.ModerationRequest{
		Input: text,
		Model: g.model,
	})
	if err != nil || len(resp.Results) == 0 {
		if err != nil {
			logger.Warn().Err(err).Str("policy", string(g.policy)).Msg("Moderation check failed")
		} else {
			logger.Warn().Str("policy", string(g.policy)).Msg("Moderation response contained no results")
		}
		return Verdict{
			Flagged:    g.policy == FailClosed,
			Categories: map[string]bool{},
		}
	}

	result := resp.Results[0]
	return Verdict{
		Flagged:    result.Flagged,
		Categories: categoryMap(result.Categories),
	}
}

func categoryMap(c openai.ResultCategories) map[string]bool {
	return map[string]bool{
		"hate":                   c.Hate,
		"hate/threatening":       c.HateThreatening,
		"harassment":             c.Harassment,
		"harassment/threatening": c.HarassmentThreatening,
		"self-harm":              c.SelfHarm,
		"self-harm/intent":       c.SelfHarmIntent,
		"self-harm/instructions": c.SelfHarmInstructions,
		"sexual":                 c.Sexual,
		"sexual/minors":          c.SexualMinors,
		"violence":               c.Violence,
		"violence/graphic":       c.ViolenceGraphic,
	}
}
