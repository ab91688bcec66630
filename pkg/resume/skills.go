package resume

import (
	"strings"

	"github.com/manan6/intelli-resume/pkg/nlp"
)

// Skill taxonomy, partitioned by category. Initialized once, read-only after
// that; safe for unsynchronized concurrent reads.
var skillTaxonomy = map[string][]string{
	"technical": {
		"Python", "JavaScript", "React", "Node.js", "SQL", "HTML", "CSS",
		"Git", "Java", "C++", "MongoDB", "Express.js", "REST APIs", "Docker",
		"Linux",
	},
	"business": {
		"Microsoft Excel", "Market Research", "Business Analysis",
		"Project Management", "Digital Marketing", "Financial Analysis",
		"Presentation Skills", "CRM Tools", "Data Analysis", "SEO",
	},
	"creative": {
		"Adobe Photoshop", "Figma", "UI/UX Design", "Content Writing",
		"Video Editing", "Canva", "Illustration", "Branding", "Typography",
		"Storyboarding",
	},
	"soft": {
		"Communication", "Teamwork", "Problem Solving", "Time Management",
		"Adaptability", "Leadership", "Critical Thinking", "Creativity",
	},
}

// Category triggers, checked in priority order: technical wins over business,
// business over creative, anything else falls through to soft skills.
var categoryTriggers = []struct {
	category string
	keywords []string
}{
	{"technical", []string{"computer", "software", "it", "information", "technology", "engineering", "data", "web", "developer"}},
	{"business", []string{"business", "commerce", "management", "marketing", "finance", "economics", "mba"}},
	{"creative", []string{"design", "arts", "media", "creative", "fashion", "animation"}},
}

var levelBonusSkills = map[string][]string{
	LevelStudent: {"Eagerness to Learn", "Academic Writing", "Research Skills"},
	LevelFresher: {"Quick Learning", "Attention to Detail", "Willingness to Grow"},
}

const (
	categoryPrefixSize = 10
	softPrefixSize     = 6
	recommendCap       = 20
)

func categoryFor(field string) string {
	lower := strings.ToLower(field)
	for _, t := range categoryTriggers {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				return t.category
			}
		}
	}
	return "soft"
}

// RecommendSkills builds a ranked suggestion list for the given field and
// experience level. Entries already present in existing are removed
// (case-sensitive exact match), order is first-seen, output is capped at 20.
// Deterministic for identical inputs.
func RecommendSkills(field, experienceLevel string, existing []string) []string {
	category := skillTaxonomy[categoryFor(field)]
	picked := make([]string, 0, recommendCap)
	picked = append(picked, prefix(category, categoryPrefixSize)...)
	picked = append(picked, prefix(skillTaxonomy["soft"], softPrefixSize)...)
	picked = append(picked, levelBonusSkills[experienceLevel]...)

	have := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		have[s] = struct{}{}
	}
	out := make([]string, 0, recommendCap)
	seen := make(map[string]struct{}, len(picked))
	for _, s := range picked {
		if _, ok := have[s]; ok {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == recommendCap {
			break
		}
	}
	return out
}

func prefix(list []string, n int) []string {
	if len(list) < n {
		return list
	}
	return list[:n]
}

// TotalSkills reports the taxonomy size across all categories.
func TotalSkills() int {
	n := 0
	for _, list := range skillTaxonomy {
		n += len(list)
	}
	return n
}

// DetectSkills scans free text for taxonomy entries, matching whole-word
// normalized phrases and their common aliases. Used to pre-fill the skill
// list when a profile is seeded from an existing resume.
func DetectSkills(text string) []string {
	normalized := nlp.Normalize(text)
	if normalized == "" {
		return []string{}
	}
	out := []string{}
	for _, category := range []string{"technical", "business", "creative", "soft"} {
		for _, skill := range skillTaxonomy[category] {
			for _, variant := range nlp.SkillVariants(skill) {
				if nlp.ContainsPhrase(normalized, variant) {
					out = append(out, skill)
					break
				}
			}
		}
	}
	return out
}
