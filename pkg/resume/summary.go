package resume

import "strings"

// summaryWordFloor is the minimum summary length in whitespace-delimited words.
const summaryWordFloor = 50

// Appended one at a time, in order, until the floor is met. Together they
// exceed the floor, so even an empty summary ends up long enough.
var fillerSentences = []string{
	"Committed to continuous learning and professional development in the field.",
	"Known for a strong work ethic and the ability to adapt quickly to new challenges.",
	"Brings effective communication and collaboration skills to every team.",
	"Focused on delivering quality results within agreed deadlines.",
	"Eager to contribute meaningfully and grow with every opportunity.",
	"Passionate about applying knowledge to solve real-world problems.",
}

// EnsureMinWords pads a summary up to the word floor with filler sentences.
// A summary that already meets the floor is returned unchanged, which makes
// the function idempotent.
func EnsureMinWords(summary string, floor int) string {
	if countWords(summary) >= floor {
		return summary
	}
	out := strings.TrimSpace(summary)
	for _, sentence := range fillerSentences {
		if countWords(out) >= floor {
			break
		}
		if out == "" {
			out = sentence
		} else {
			out = out + " " + sentence
		}
	}
	return out
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
