package resume

import (
	"context"
	"strings"

	"github.com/manan6/intelli-resume/pkg/llm"
)

// GenerateResult carries the document plus which branch produced it. Detail
// holds auxiliary diagnostics (why the fallback was used); it is never a
// failure surfaced to the end caller.
type GenerateResult struct {
	Document ResumeDocument
	Outcome  Outcome
	Model    string
	Detail   string
}

// GeneratorService is the application use case for resume generation.
type GeneratorService interface {
	Generate(ctx context.Context, in ProfileInput) GenerateResult
	Recommend(field, experienceLevel string, existing []string) []string
}

type generatorService struct {
	llm       llm.CompletionClient
	prompts   *PromptBuilder
	modelName string
}

// NewGeneratorService creates the default implementation.
func NewGeneratorService(client llm.CompletionClient, prompts *PromptBuilder, modelName string) GeneratorService {
	if prompts == nil {
		prompts = NewPromptBuilder(nil)
	}
	return &generatorService{
		llm:       client,
		prompts:   prompts,
		modelName: modelName,
	}
}

// BuildHints derives per-request generation hints from the input profile.
func BuildHints(in ProfileInput) GenerationHints {
	return GenerationHints{
		ContentType: Classify(in.Background),
		Title:       InferTitle(in.Background, in.FieldHint(), in.ExperienceLevel),
		Skills:      RecommendSkills(in.FieldHint(), in.ExperienceLevel, in.Skills),
	}
}

// Generate runs the full pipeline: hints -> prompt -> completion ->
// extraction -> reconciliation, degrading to deterministic synthesis on any
// completion or extraction failure. It always returns a schema-valid
// document; nothing upstream can make it fail.
func (s *generatorService) Generate(ctx context.Context, in ProfileInput) GenerateResult {
	hints := BuildHints(in)
	if s.llm == nil {
		return s.fallback(in, hints, "completion client not configured")
	}

	prompt := s.prompts.Build(in, hints)
	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return s.fallback(in, hints, err.Error())
	}

	parsed, ok := ExtractDocument(strings.TrimSpace(raw))
	if !ok {
		return s.fallback(in, hints, "no structured document in model reply")
	}

	return GenerateResult{
		Document: Reconcile(parsed, in, hints),
		Outcome:  OutcomeAI,
		Model:    s.modelName,
	}
}

func (s *generatorService) fallback(in ProfileInput, hints GenerationHints, detail string) GenerateResult {
	return GenerateResult{
		Document: SynthesizeWithHints(in, hints),
		Outcome:  OutcomeFallback,
		Detail:   detail,
	}
}

func (s *generatorService) Recommend(field, experienceLevel string, existing []string) []string {
	return RecommendSkills(field, experienceLevel, existing)
}
