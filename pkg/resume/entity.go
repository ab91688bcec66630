package resume

// ContentType classifies the dominant theme of a background narrative.
type ContentType string

const (
	ContentEducation  ContentType = "education"
	ContentExperience ContentType = "experience"
	ContentMixed      ContentType = "mixed"
)

// Experience levels as the client sends them. Anything else is treated as a
// generic professional.
const (
	LevelStudent     = "Student"
	LevelFresher     = "Fresher"
	LevelExperienced = "Experienced"
)

// ProfileInput is the caller-supplied profile. Identity fields are ground
// truth: whatever the model echoes back never overrides them. The struct is
// never mutated after it is received.
type ProfileInput struct {
	FullName        string   `json:"fullName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Location        string   `json:"location"`
	Stream          string   `json:"stream"`
	Specialization  string   `json:"field"`
	ExperienceLevel string   `json:"experienceLevel"`
	TargetRole      string   `json:"targetRole"`
	Background      string   `json:"prompt"`
	Skills          []string `json:"skills,omitempty"`
}

// FieldHint combines specialization and stream into one string for
// keyword-driven category and title matching.
func (in ProfileInput) FieldHint() string {
	if in.Specialization == "" {
		return in.Stream
	}
	if in.Stream == "" {
		return in.Specialization
	}
	return in.Specialization + " " + in.Stream
}

// GenerationHints are derived once per request and never persisted.
type GenerationHints struct {
	ContentType ContentType
	Title       string
	Skills      []string
}

type EducationItem struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
	Score  string `json:"score,omitempty"`
}

type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

type ExperienceItem struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ResumeDocument is the output contract of the generation pipeline. Every
// code path produces a schema-valid document: identity fields non-empty,
// summary at least summaryWordFloor words, languages never empty, slices
// never nil.
type ResumeDocument struct {
	FullName        string           `json:"fullName"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Location        string           `json:"location"`
	JobTitle        string           `json:"jobTitle"`
	Summary         string           `json:"summary"`
	Education       []EducationItem  `json:"education"`
	Skills          []string         `json:"skills"`
	Projects        []Project        `json:"projects"`
	WorkExperience  []ExperienceItem `json:"workExperience"`
	Internships     []ExperienceItem `json:"internships"`
	ExtraCurricular []string         `json:"extraCurricular"`
	Certifications  []string         `json:"certifications"`
	Achievements    []string         `json:"achievements"`
	Languages       []Language       `json:"languages"`
}

// Outcome reports which branch of the pipeline produced the document.
type Outcome string

const (
	OutcomeAI       Outcome = "ai_generated"
	OutcomeFallback Outcome = "fallback_used"
)
