package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/anthropics/anthropic-sdk-go"
)

// Single path segment in kebab case. Anything else (path separators,
// uppercase, spaces) is a contract violation, not silently accepted:
// the single-level taxonomy is enforced here, not just in the prompt.
var reKebabSegment = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var validConfidence = map[string]bool{"high": true, "medium": true, "low": true}

// Classify sends the transcript and library digest to the language model
// and parses its placement decision. Any contract violation (non-text
// first content block, non-JSON text, malformed plan) is fatal for the
// run: no fallback category is synthesized.
func (c *implClassifier) Classify(ctx context.Context, in Input) (*Plan, error) {
	prompt := buildPrompt(in)

	c.logger.Info(ctx, "Requesting placement decision (model=%s, library entries=%v)", c.model, in.HasEntries)

	msg, err := c.messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("classification request: %w", err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("classification response contains no content blocks")
	}
	block := msg.Content[0]
	if block.Type != "text" {
		return nil, fmt.Errorf("classification response is not plain text (got %q block)", block.Type)
	}

	plan, err := parsePlan(block.Text)
	if err != nil {
		return nil, err
	}

	c.logger.Info(ctx, "Placement decision: category=%s confidence=%s", plan.Category, plan.Confidence)
	return plan, nil
}

// parsePlan parses the model's text as a strict JSON Organization Plan.
// No partial-plan recovery, no schema coercion.
func parsePlan(text string) (*Plan, error) {
	var plan Plan
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return nil, fmt.Errorf("classification response is not valid JSON: %w", err)
	}
	if plan.Category == "" {
		return nil, fmt.Errorf("classification plan is missing a category")
	}
	if !reKebabSegment.MatchString(plan.Category) {
		return nil, fmt.Errorf("classification plan category %q is not a single kebab-case path segment", plan.Category)
	}
	if !validConfidence[plan.Confidence] {
		return nil, fmt.Errorf("classification plan confidence %q is not one of high/medium/low", plan.Confidence)
	}
	return &plan, nil
}
