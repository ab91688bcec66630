package resume

import "testing"

func TestClassifyEmptyIsMixed(t *testing.T) {
	if got := Classify(""); got != ContentMixed {
		t.Errorf("Classify(\"\") = %q, want %q", got, ContentMixed)
	}
}

func TestClassifyEducation(t *testing.T) {
	// One education keyword, no experience keywords.
	if got := Classify("I have a degree"); got != ContentEducation {
		t.Errorf("expected %q, got %q", ContentEducation, got)
	}
}

func TestClassifyExperience(t *testing.T) {
	if got := Classify("worked at a product company as a developer"); got != ContentExperience {
		t.Errorf("expected %q, got %q", ContentExperience, got)
	}
}

func TestClassifyTieIsMixed(t *testing.T) {
	// "university" is education-indicative, "work" is experience-indicative.
	if got := Classify("university work"); got != ContentMixed {
		t.Errorf("expected %q, got %q", ContentMixed, got)
	}
}

func TestClassifyKeywordCountsOnce(t *testing.T) {
	// Repeating one education keyword must not outscore several distinct
	// experience keywords.
	if got := Classify("college college college at a company doing client work"); got != ContentExperience {
		t.Errorf("expected %q, got %q", ContentExperience, got)
	}
}

func TestInferTitleFromBackground(t *testing.T) {
	got := InferTitle("I love programming and building things", "", LevelStudent)
	if got != "Computer Science Student" {
		t.Errorf("expected Computer Science Student, got %q", got)
	}
}

func TestInferTitleRuleOrder(t *testing.T) {
	// "software" must win over "engineering": the computer rule is checked
	// before the engineering rule.
	got := InferTitle("software engineering background", "", LevelExperienced)
	if got != "Software Developer" {
		t.Errorf("expected Software Developer, got %q", got)
	}
}

func TestInferTitleFromField(t *testing.T) {
	got := InferTitle("", "Mechanical Engineering", LevelExperienced)
	if got != "Engineer" {
		t.Errorf("expected Engineer, got %q", got)
	}
}

func TestInferTitleLevelDefaults(t *testing.T) {
	cases := []struct {
		level string
		want  string
	}{
		{LevelStudent, "Student"},
		{LevelFresher, "Entry Level Professional"},
		{LevelExperienced, "Experienced Professional"},
		{"", "Professional"},
		{"Unknown", "Professional"},
	}
	for _, tc := range cases {
		if got := InferTitle("", "", tc.level); got != tc.want {
			t.Errorf("level %q: expected %q, got %q", tc.level, tc.want, got)
		}
	}
}
