package resume

import (
	"reflect"
	"testing"
)

func TestRecommendSkillsDeterministic(t *testing.T) {
	a := RecommendSkills("Computer Science", LevelStudent, []string{"Python"})
	b := RecommendSkills("Computer Science", LevelStudent, []string{"Python"})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two identical calls diverged:\n%v\n%v", a, b)
	}
}

func TestRecommendSkillsShape(t *testing.T) {
	existing := []string{"Python", "Communication"}
	got := RecommendSkills("Computer Science", LevelStudent, existing)

	if len(got) > 20 {
		t.Errorf("expected at most 20 skills, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, s := range got {
		if seen[s] {
			t.Errorf("duplicate skill %q", s)
		}
		seen[s] = true
	}
	for _, e := range existing {
		if seen[e] {
			t.Errorf("existing skill %q must not be recommended", e)
		}
	}
}

func TestRecommendSkillsCategoryPriority(t *testing.T) {
	// "computer" triggers the technical category even though the field
	// also mentions management.
	got := RecommendSkills("Computer Science Management", "", nil)
	if len(got) == 0 || got[0] != "Python" {
		t.Errorf("expected technical category first (Python), got %v", got)
	}

	got = RecommendSkills("Business Management", "", nil)
	if len(got) == 0 || got[0] != "Microsoft Excel" {
		t.Errorf("expected business category first (Microsoft Excel), got %v", got)
	}

	got = RecommendSkills("Fashion Design", "", nil)
	if len(got) == 0 || got[0] != "Adobe Photoshop" {
		t.Errorf("expected creative category first (Adobe Photoshop), got %v", got)
	}
}

func TestRecommendSkillsUnknownFieldFallsBackToSoft(t *testing.T) {
	got := RecommendSkills("", "", nil)
	if len(got) == 0 || got[0] != "Communication" {
		t.Errorf("expected soft skills for unknown field, got %v", got)
	}
}

func TestRecommendSkillsLevelBonus(t *testing.T) {
	got := RecommendSkills("Computer Science", LevelFresher, nil)
	found := false
	for _, s := range got {
		if s == "Quick Learning" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Fresher bonus skill in %v", got)
	}
}

func TestDetectSkills(t *testing.T) {
	got := DetectSkills("Built several apps with JavaScript, Node.js and SQL on Linux.")
	want := map[string]bool{"JavaScript": false, "Node.js": false, "SQL": false, "Linux": false}
	for _, s := range got {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for s, ok := range want {
		if !ok {
			t.Errorf("expected %q to be detected, got %v", s, got)
		}
	}

	if got := DetectSkills(""); len(got) != 0 {
		t.Errorf("expected no skills for empty text, got %v", got)
	}
}

func TestDetectSkillsCPlusPlus(t *testing.T) {
	for _, s := range DetectSkills("Scored a grade C in math class.") {
		if s == "C++" {
			t.Error("a standalone c must not be reported as C++")
		}
	}
	found := false
	for _, s := range DetectSkills("Three years of CPP development.") {
		if s == "C++" {
			found = true
		}
	}
	if !found {
		t.Error("expected C++ to be detected from cpp")
	}
}
