package imagegen

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gosimple/slug"
)

var ErrEmptyPrompt = errors.New("imagegen: prompt is empty")

// Generator turns a prompt into the URL of a produced image.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// PlaceholderGenerator produces a deterministic placeholder image URL from a
// template whose single %s verb receives the slugged prompt.
type PlaceholderGenerator struct {
	template string
	maxSlug  int
}

func NewPlaceholderGenerator(template string) *PlaceholderGenerator {
	return &PlaceholderGenerator{template: template, maxSlug: 80}
}

func (g *PlaceholderGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text := slug.Make(prompt)
	if text == "" {
		return "", ErrEmptyPrompt
	}
	if len(text) > g.maxSlug {
		text = strings.TrimRight(text[:g.maxSlug], "-")
	}

	if !strings.Contains(g.template, "%s") {
		return "", fmt.Errorf("imagegen: template %q has no %%s verb", g.template)
	}
	return fmt.Sprintf(g.template, url.QueryEscape(text)), nil
}
