package resume

import "strings"

// Keyword tables are read-only after init; safe for concurrent use.
var educationKeywords = []string{
	"school", "college", "university", "degree", "bca", "btech", "b.tech",
	"mca", "mba", "bsc", "msc", "bcom", "graduation", "studying", "student",
	"academic", "semester", "cgpa", "12th", "10th",
}

var experienceKeywords = []string{
	"work", "job", "company", "internship", "experience", "developer",
	"engineer", "manager", "salary", "team", "client", "freelance",
	"professional", "career", "position",
}

// Classify scores the background text against both keyword sets and returns
// the dominant theme. Each keyword counts once no matter how often it
// repeats. Ties (including empty text) are Mixed.
func Classify(text string) ContentType {
	lower := strings.ToLower(text)
	edu := countPresent(lower, educationKeywords)
	exp := countPresent(lower, experienceKeywords)
	switch {
	case edu > exp:
		return ContentEducation
	case exp > edu:
		return ContentExperience
	default:
		return ContentMixed
	}
}

func countPresent(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

// titleRule maps trigger keywords to a studying-labeled and a
// practicing-labeled title. Rules are checked in order; the first match wins,
// so computer/software must stay ahead of engineering, which stays ahead of
// business.
type titleRule struct {
	keywords     []string
	studentTitle string
	title        string
}

var titleRules = []titleRule{
	{
		keywords:     []string{"computer", "software", "programming", "coding", "developer", "web", "app"},
		studentTitle: "Computer Science Student",
		title:        "Software Developer",
	},
	{
		keywords:     []string{"engineering", "engineer", "mechanical", "civil", "electrical", "electronics"},
		studentTitle: "Engineering Student",
		title:        "Engineer",
	},
	{
		keywords:     []string{"business", "commerce", "management", "marketing", "finance", "accounting"},
		studentTitle: "Business Student",
		title:        "Business Professional",
	},
	{
		keywords:     []string{"science", "physics", "chemistry", "biology", "research"},
		studentTitle: "Science Student",
		title:        "Research Professional",
	},
	{
		keywords:     []string{"arts", "design", "creative", "media", "writing"},
		studentTitle: "Arts Student",
		title:        "Creative Professional",
	},
}

var levelTitles = map[string]string{
	LevelStudent:     "Student",
	LevelFresher:     "Entry Level Professional",
	LevelExperienced: "Experienced Professional",
}

// InferTitle derives a professional title when the model did not supply one.
// The background text is checked first, then the field, then an
// experience-level default, then the generic fallback.
func InferTitle(text, field, experienceLevel string) string {
	student := experienceLevel == LevelStudent
	if t, ok := matchTitle(text, student); ok {
		return t
	}
	if t, ok := matchTitle(field, student); ok {
		return t
	}
	if t, ok := levelTitles[experienceLevel]; ok {
		return t
	}
	return "Professional"
}

func matchTitle(text string, student bool) (string, bool) {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return "", false
	}
	for _, rule := range titleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				if student {
					return rule.studentTitle, true
				}
				return rule.title, true
			}
		}
	}
	return "", false
}
