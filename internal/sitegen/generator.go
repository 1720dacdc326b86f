// Package sitegen generates website mockups: it turns a business profile and
// a design variant into a prompt, calls the model, and normalizes the raw
// response into clean markup.
package sitegen

import (
	"context"
	"fmt"
	"strings"

	"server/internal/domain"
)

// TextGenerator is the slice of the model client the generator needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// VariantError reports which variant's generation failed and why.
type VariantError struct {
	Style string
	Err   error
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("html generation failed for style %q: %v", e.Style, e.Err)
}

func (e *VariantError) Unwrap() error { return e.Err }

// Generator produces one website mockup per (business, variant) pair.
type Generator struct {
	model TextGenerator
}

// NewGenerator wires the generator to a model client.
func NewGenerator(model TextGenerator) *Generator {
	return &Generator{model: model}
}

// Generate builds the prompts, invokes the model, and returns normalized
// HTML. Any failure is wrapped in a VariantError naming the style; the cause
// stays reachable through errors.Is/As.
func (g *Generator) Generate(ctx context.Context, businessName, businessType string, variant domain.DesignVariant) (string, error) {
	raw, err := g.model.GenerateText(ctx, systemPrompt, buildUserPrompt(businessName, businessType, variant))
	if err != nil {
		return "", &VariantError{Style: variant.Style, Err: err}
	}
	return stripCodeFence(raw), nil
}

// stripCodeFence removes a wrapping markdown code fence. Downstream consumers
// assume raw markup with no fencing.
func stripCodeFence(raw string) string {
	html := strings.TrimSpace(raw)
	if strings.HasPrefix(html, "```html") {
		html = strings.TrimPrefix(html, "```html")
	} else if strings.HasPrefix(html, "```") {
		html = strings.TrimPrefix(html, "```")
	}
	html = strings.TrimSuffix(strings.TrimSpace(html), "```")
	return strings.TrimSpace(html)
}
