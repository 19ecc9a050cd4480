package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skillmatch/internal/extract"
	"skillmatch/internal/infrastructure/gemini"
)

var (
	ErrEmptyText        = errors.New("missing 'text' field")
	ErrGenerationFailed = errors.New("text generation failed")
)

type ExtractUsecase interface {
	ExtractSkills(ctx context.Context, text string) ([]string, error)
}

type Extract struct {
	generator gemini.Generator
}

func NewExtractUsecase(generator gemini.Generator) *Extract {
	return &Extract{generator: generator}
}

// ExtractSkills asks the generator for a skill list and parses whatever
// comes back. Unlike the gap path there is no meaningful partial result
// without the generator, so its failure surfaces as an error.
func (u *Extract) ExtractSkills(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if u.generator == nil {
		return nil, ErrGenerationFailed
	}

	prompt := fmt.Sprintf(
		"Extract and return a list of programming and technical skills mentioned in this text.\n\n"+
			"%s\n\n"+
			"Return ONLY a JSON array of lowercase skill names, like: [\"django\", \"react\", \"gcp\"].\n"+
			"Do not explain or add formatting. Output only the array.",
		text,
	)

	raw, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, err)
	}

	return extract.Parse(raw), nil
}
