package resume

import (
	"fmt"
	"regexp"
	"strings"
)

// Degree signals recognized in the background narrative. Each entry is an
// independent rule: pattern hit -> education fragment. Compiled once at init.
var degreePatterns = []struct {
	re     *regexp.Regexp
	degree string
}{
	{regexp.MustCompile(`(?i)\bbca\b`), "Bachelor of Computer Applications (BCA)"},
	{regexp.MustCompile(`(?i)\bmca\b`), "Master of Computer Applications (MCA)"},
	{regexp.MustCompile(`(?i)\bb\.?\s?tech\b`), "Bachelor of Technology (B.Tech)"},
	{regexp.MustCompile(`(?i)\bm\.?\s?tech\b`), "Master of Technology (M.Tech)"},
	{regexp.MustCompile(`(?i)\bmba\b`), "Master of Business Administration (MBA)"},
	{regexp.MustCompile(`(?i)\bbba\b`), "Bachelor of Business Administration (BBA)"},
	{regexp.MustCompile(`(?i)\bb\.?\s?sc\b`), "Bachelor of Science (B.Sc)"},
	{regexp.MustCompile(`(?i)\bm\.?\s?sc\b`), "Master of Science (M.Sc)"},
	{regexp.MustCompile(`(?i)\bb\.?\s?com\b`), "Bachelor of Commerce (B.Com)"},
	{regexp.MustCompile(`(?i)\bdiploma\b`), "Diploma"},
	{regexp.MustCompile(`(?i)\b12th\b|\bhigher secondary\b`), "Senior Secondary (Class XII)"},
}

var (
	schoolPattern = regexp.MustCompile(`(?i)\b((?:[a-z]+\s+){0,3}(?:university|college|institute|school))\b`)
	yearPattern   = regexp.MustCompile(`\b(?:19|20)\d{2}(?:\s*[-–]\s*(?:(?:19|20)\d{2}|[Pp]resent))?\b`)
)

// Connective words that precede the school name proper, e.g. "study at X
// University" or "B.Tech at National Institute". Everything up to the last
// such word is discarded from the match.
var schoolStopwords = map[string]struct{}{
	"at": {}, "from": {}, "in": {}, "the": {}, "a": {}, "an": {}, "my": {},
	"study": {}, "studying": {}, "studied": {}, "of": {},
}

// Synthesize builds a complete, schema-valid document from caller input
// alone. Pure: no external calls, deterministic, total over any input
// including an entirely empty profile.
func Synthesize(in ProfileInput) ResumeDocument {
	return SynthesizeWithHints(in, BuildHints(in))
}

// SynthesizeWithHints is Synthesize for callers that already computed hints.
func SynthesizeWithHints(in ProfileInput, hints GenerationHints) ResumeDocument {
	doc := ResumeDocument{
		FullName:  firstNonEmpty(in.FullName, placeholderName),
		Email:     firstNonEmpty(in.Email, placeholderEmail),
		Phone:     in.Phone,
		Location:  firstNonEmpty(in.Location, placeholderLocation),
		JobTitle:  hints.Title,
		Summary:   EnsureMinWords(synthesizeSummary(in, hints), summaryWordFloor),
		Education: synthesizeEducation(in),
		Skills:    synthesizeSkills(in, hints),
		Projects:  synthesizeProjects(in),
		Languages: defaultLanguages(),
	}
	normalizeSections(&doc)
	return doc
}

func synthesizeEducation(in ProfileInput) []EducationItem {
	school := detectSchool(in.Background)
	year := yearPattern.FindString(in.Background)

	items := []EducationItem{}
	for _, rule := range degreePatterns {
		if rule.re.MatchString(in.Background) {
			items = append(items, EducationItem{
				Degree: rule.degree,
				School: firstNonEmpty(school, "University"),
				Year:   year,
			})
		}
	}
	if len(items) == 0 {
		items = append(items, EducationItem{
			Degree: "Bachelor's Degree",
			School: firstNonEmpty(school, "University"),
			Year:   year,
		})
	}
	return items
}

func detectSchool(text string) string {
	m := schoolPattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	words := strings.Fields(m[1])
	for i := len(words) - 2; i >= 0; i-- {
		if _, stop := schoolStopwords[strings.ToLower(words[i])]; stop {
			words = words[i+1:]
			break
		}
	}
	return strings.Join(words, " ")
}

func synthesizeSummary(in ProfileInput, hints GenerationHints) string {
	field := strings.TrimSpace(in.FieldHint())
	if field == "" {
		field = "the chosen field"
	}
	var opening string
	switch in.ExperienceLevel {
	case LevelStudent:
		opening = fmt.Sprintf("Motivated %s currently pursuing studies in %s.", strings.ToLower(hints.Title), field)
	case LevelFresher:
		opening = fmt.Sprintf("Enthusiastic %s beginning a professional journey in %s.", strings.ToLower(hints.Title), field)
	case LevelExperienced:
		opening = fmt.Sprintf("Accomplished %s with hands-on experience in %s.", strings.ToLower(hints.Title), field)
	default:
		opening = fmt.Sprintf("Dedicated %s with a strong interest in %s.", strings.ToLower(hints.Title), field)
	}
	if in.TargetRole != "" {
		opening += fmt.Sprintf(" Seeking opportunities as a %s.", in.TargetRole)
	}
	return opening
}

func synthesizeSkills(in ProfileInput, hints GenerationHints) []string {
	out := make([]string, 0, skillCap)
	seen := make(map[string]struct{})
	for _, s := range append(append([]string{}, in.Skills...), hints.Skills...) {
		if strings.TrimSpace(s) == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == skillCap {
			break
		}
	}
	return out
}

// Field-keyed project template library for fallback documents.
var projectTemplates = map[string][]Project{
	"technical": {
		{
			Title:        "Personal Portfolio Website",
			Description:  "Designed and built a responsive portfolio website showcasing projects, skills and contact details.",
			Technologies: []string{"HTML", "CSS", "JavaScript"},
		},
		{
			Title:        "Task Manager Application",
			Description:  "Developed a task tracking application with create, complete and filter flows and persistent storage.",
			Technologies: []string{"React", "Node.js", "MongoDB"},
		},
	},
	"business": {
		{
			Title:        "Market Research Study",
			Description:  "Conducted a market research study with surveys and competitor analysis, summarized into an actionable report.",
			Technologies: []string{"Microsoft Excel", "Survey Design"},
		},
		{
			Title:        "Business Process Improvement Proposal",
			Description:  "Analyzed an existing workflow and proposed process changes projected to reduce turnaround time.",
			Technologies: []string{"Data Analysis", "Presentation Skills"},
		},
	},
	"creative": {
		{
			Title:        "Brand Identity Concept",
			Description:  "Created a complete brand identity concept including logo, color palette and typography guidelines.",
			Technologies: []string{"Adobe Photoshop", "Figma"},
		},
		{
			Title:        "Short-Form Video Series",
			Description:  "Planned, shot and edited a short-form video series optimized for social media engagement.",
			Technologies: []string{"Video Editing", "Storyboarding"},
		},
	},
	"soft": {
		{
			Title:        "Community Volunteer Initiative",
			Description:  "Organized a community volunteer initiative, coordinating participants and logistics end to end.",
			Technologies: []string{"Teamwork", "Communication"},
		},
	},
}

func synthesizeProjects(in ProfileInput) []Project {
	templates := projectTemplates[categoryFor(in.FieldHint())]
	return append([]Project{}, templates...)
}
