package resume

import "strings"

const (
	skillFloor = 8
	skillCap   = 20
)

// Placeholders used when neither the caller nor the model supplied a value.
const (
	placeholderName     = "Your Name"
	placeholderEmail    = "your.email@example.com"
	placeholderLocation = "Your Location"
)

func defaultLanguages() []Language {
	return []Language{
		{Language: "English", Proficiency: "Fluent"},
		{Language: "Hindi", Proficiency: "Native"},
	}
}

// Reconcile merges a parsed model document with caller-supplied ground truth.
// Caller identity always wins when non-empty; standard sections are
// back-filled with defaults; minimum-content rules are enforced.
func Reconcile(parsed *ResumeDocument, in ProfileInput, hints GenerationHints) ResumeDocument {
	doc := *parsed

	doc.FullName = firstNonEmpty(in.FullName, doc.FullName, placeholderName)
	doc.Email = firstNonEmpty(in.Email, doc.Email, placeholderEmail)
	doc.Phone = firstNonEmpty(in.Phone, doc.Phone, "")
	doc.Location = firstNonEmpty(in.Location, doc.Location, placeholderLocation)

	if strings.TrimSpace(doc.JobTitle) == "" {
		doc.JobTitle = hints.Title
	}
	if len(doc.Languages) == 0 {
		doc.Languages = defaultLanguages()
	}
	doc.Skills = backfillSkills(doc.Skills, hints.Skills)
	doc.Summary = EnsureMinWords(doc.Summary, summaryWordFloor)

	normalizeSections(&doc)
	return doc
}

// backfillSkills extends an under-supplied skill list with recommendations
// until it reaches the floor, skipping duplicates, never beyond the cap.
func backfillSkills(skills, recommended []string) []string {
	if skills == nil {
		skills = []string{}
	}
	if len(skills) >= skillFloor {
		return skills
	}
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		seen[s] = struct{}{}
	}
	for _, s := range recommended {
		if len(skills) >= skillFloor || len(skills) >= skillCap {
			break
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		skills = append(skills, s)
	}
	return skills
}

// normalizeSections replaces nil slices with empty ones so the JSON output
// always carries arrays, never null.
func normalizeSections(doc *ResumeDocument) {
	if doc.Education == nil {
		doc.Education = []EducationItem{}
	}
	if doc.Skills == nil {
		doc.Skills = []string{}
	}
	if doc.Projects == nil {
		doc.Projects = []Project{}
	}
	if doc.WorkExperience == nil {
		doc.WorkExperience = []ExperienceItem{}
	}
	if doc.Internships == nil {
		doc.Internships = []ExperienceItem{}
	}
	if doc.ExtraCurricular == nil {
		doc.ExtraCurricular = []string{}
	}
	if doc.Certifications == nil {
		doc.Certifications = []string{}
	}
	if doc.Achievements == nil {
		doc.Achievements = []string{}
	}
	if doc.Languages == nil {
		doc.Languages = []Language{}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
