package resume

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Greedy: first "{" to last "}", newlines included.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractDocument attempts to recover a structured resume from raw model
// output. It tries, in order: the whole text as JSON, the largest
// brace-delimited substring, and the text trimmed to its outermost braces.
// Best effort only: any parse failure means (nil, false), never a panic.
func ExtractDocument(text string) (*ResumeDocument, bool) {
	if doc, ok := tryParseDocument(text); ok {
		return doc, true
	}
	if m := jsonObjectPattern.FindString(text); m != "" {
		if doc, ok := tryParseDocument(m); ok {
			return doc, true
		}
	}
	if i := strings.Index(text, "{"); i >= 0 {
		if j := strings.LastIndex(text, "}"); j > i {
			if doc, ok := tryParseDocument(text[i : j+1]); ok {
				return doc, true
			}
		}
	}
	return nil, false
}

func tryParseDocument(s string) (*ResumeDocument, bool) {
	var doc ResumeDocument
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &doc); err != nil {
		return nil, false
	}
	// An all-empty object is the usual shape of a garbage reply; treat it as
	// no result so the caller falls back.
	if strings.TrimSpace(doc.FullName) == "" &&
		strings.TrimSpace(doc.Summary) == "" &&
		len(doc.Skills) == 0 && len(doc.Education) == 0 && len(doc.Projects) == 0 {
		return nil, false
	}
	return &doc, true
}
