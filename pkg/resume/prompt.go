package resume

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Intro/outro wordings vary between calls to reduce repetition in model
// output. The JSON schema block below is shared by every variant so that
// extraction stays reliable regardless of which wording was picked.
var promptIntros = []string{
	"Create a professional resume in JSON format using this information:",
	"You are an expert resume writer. Build a polished resume as JSON from the details below:",
	"Write a complete professional resume in JSON format based on the following profile:",
}

var promptOutros = []string{
	"Return ONLY valid JSON with this structure:",
	"Respond with ONLY a single JSON object exactly matching this structure, no extra text:",
	"Your entire reply must be one valid JSON object with this structure:",
}

const promptSchema = `{
  "fullName": "%s",
  "email": "%s",
  "phone": "%s",
  "location": "%s",
  "jobTitle": "Professional title",
  "summary": "50-80 word professional summary",
  "education": [
    {
      "degree": "Degree name",
      "school": "School name",
      "year": "Year"
    }
  ],
  "skills": ["Skill 1", "Skill 2", "Skill 3"],
  "projects": [
    {
      "title": "Project title",
      "description": "Project description",
      "technologies": ["Tech 1", "Tech 2"]
    }
  ],
  "languages": [
    {"language": "English", "proficiency": "Fluent"},
    {"language": "Hindi", "proficiency": "Native"}
  ]
}`

// PromptBuilder renders user profiles and derived hints into a completion
// prompt. The variant selector is injected so tests can pin a wording.
type PromptBuilder struct {
	pick func(n int) int
}

// NewPromptBuilder returns a builder with the given variant source. Pass nil
// for time-seeded pseudo-random selection.
func NewPromptBuilder(r *rand.Rand) *PromptBuilder {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PromptBuilder{pick: r.Intn}
}

// Build renders the prompt. Identity fields go in verbatim: the destination
// is a natural-language instruction, not a structured protocol, and the
// reconciler later cross-checks that the model echoed them back.
func (b *PromptBuilder) Build(in ProfileInput, hints GenerationHints) string {
	var sb strings.Builder
	sb.WriteString(promptIntros[b.pick(len(promptIntros))])
	sb.WriteString("\n\nBASIC INFORMATION:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", in.FullName)
	fmt.Fprintf(&sb, "- Email: %s\n", in.Email)
	fmt.Fprintf(&sb, "- Phone: %s\n", in.Phone)
	fmt.Fprintf(&sb, "- Location: %s\n", in.Location)
	fmt.Fprintf(&sb, "- Field: %s\n", in.Stream)
	fmt.Fprintf(&sb, "- Specialization: %s\n", in.Specialization)
	fmt.Fprintf(&sb, "- Experience: %s\n", in.ExperienceLevel)
	fmt.Fprintf(&sb, "- Target Role: %s\n", in.TargetRole)
	fmt.Fprintf(&sb, "\nBACKGROUND: %q\n", in.Background)
	if hints.Title != "" {
		fmt.Fprintf(&sb, "\nSuggested professional title: %s\n", hints.Title)
	}
	if len(hints.Skills) > 0 {
		fmt.Fprintf(&sb, "Consider these skills where relevant: %s\n", strings.Join(hints.Skills, ", "))
	}
	sb.WriteString("\n")
	sb.WriteString(promptOutros[b.pick(len(promptOutros))])
	sb.WriteString("\n")
	fmt.Fprintf(&sb, promptSchema, in.FullName, in.Email, in.Phone, in.Location)
	return sb.String()
}
