package nlp

// SkillVariants returns normalized variants (synonyms/aliases) of a skill for
// matching against free text. Intentionally small; extend as needed.
func SkillVariants(skill string) []string {
	base := Normalize(skill)
	if base == "" {
		return []string{}
	}
	var out []string
	seen := map[string]struct{}{}
	add := func(s string) {
		s = Normalize(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	// "C++" normalizes to a bare "c", which would match any standalone "c"
	// in text. Match only its unambiguous spellings.
	if base == "c" {
		add("cpp")
		add("c plus plus")
		return out
	}

	add(base)

	switch base {
	case "javascript":
		add("js")
	case "js":
		add("javascript")
	case "node js":
		add("nodejs")
	case "nodejs":
		add("node js")
	case "express js":
		add("expressjs")
	case "cpp":
		add("c plus plus")
	case "rest apis":
		add("rest api")
	case "microsoft excel":
		add("excel")
	case "ui ux design":
		add("ui ux")
	case "adobe photoshop":
		add("photoshop")
	case "postgres":
		add("postgresql")
	case "postgresql":
		add("postgres")
	}

	return out
}
