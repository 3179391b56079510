package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/ksa/internal/llm"
	"github.com/abhisek/ksa/internal/phase"
)

// Generator produces the questions for one sector and phase.
type Generator interface {
	// Generate returns exactly QuizSize validated questions. On any failure
	// it returns a nil slice and a *GenerationError.
	Generate(ctx context.Context, sector string, p phase.Phase) ([]Question, error)
}

// LLMGenerator implements Generator with one provider call per quiz.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

func NewGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

type quizOutput struct {
	Questions []Question `json:"questions"`
}

func (g *LLMGenerator) Generate(ctx context.Context, sector string, p phase.Phase) ([]Question, error) {
	sector = strings.TrimSpace(sector)
	fail := func(err error) ([]Question, error) {
		return nil, &GenerationError{Sector: sector, Phase: p, Err: err}
	}

	if sector == "" {
		return fail(errors.New("sector is empty"))
	}
	if !phase.Valid(p) {
		return fail(fmt.Errorf("invalid phase %q", p))
	}

	req := llm.Request{
		System:      genSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildGenMessage(sector, p)}},
		Schema:      QuizSchema,
		MaxTokens:   g.config.GenMaxTokens,
		Temperature: g.config.GenTemperature,
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, llm.PurposeAssessmentGen), req)
	if err != nil {
		return fail(fmt.Errorf("LLM generation failed: %w", err))
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fail(fmt.Errorf("parse LLM response: %w", err))
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(out.Questions); verr != nil {
			return fail(verr)
		}
	}

	// The caller may have given up while the provider was answering.
	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	return out.Questions, nil
}
