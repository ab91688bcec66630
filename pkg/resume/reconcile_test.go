package resume

import "testing"

func TestReconcileIdentityPrecedence(t *testing.T) {
	parsed := &ResumeDocument{
		FullName: "Wrong Name",
		Email:    "model@example.com",
		Skills:   []string{"X"},
	}
	in := ProfileInput{FullName: "Asha Verma"}
	doc := Reconcile(parsed, in, BuildHints(in))

	if doc.FullName != "Asha Verma" {
		t.Errorf("caller name must win, got %q", doc.FullName)
	}
	// The caller supplied no email, so the model value survives.
	if doc.Email != "model@example.com" {
		t.Errorf("expected model email, got %q", doc.Email)
	}
}

func TestReconcilePlaceholders(t *testing.T) {
	doc := Reconcile(&ResumeDocument{Skills: []string{"X"}}, ProfileInput{}, BuildHints(ProfileInput{}))
	if doc.FullName != placeholderName {
		t.Errorf("expected %q, got %q", placeholderName, doc.FullName)
	}
	if doc.Email != placeholderEmail {
		t.Errorf("expected %q, got %q", placeholderEmail, doc.Email)
	}
	if doc.Location != placeholderLocation {
		t.Errorf("expected %q, got %q", placeholderLocation, doc.Location)
	}
	if doc.Phone != "" {
		t.Errorf("phone placeholder is empty, got %q", doc.Phone)
	}
}

func TestReconcileBackfillsSkills(t *testing.T) {
	parsed := &ResumeDocument{FullName: "A", Skills: []string{"X"}}
	in := ProfileInput{Specialization: "Computer Science"}
	doc := Reconcile(parsed, in, BuildHints(in))

	if len(doc.Skills) < skillFloor {
		t.Errorf("expected at least %d skills, got %d: %v", skillFloor, len(doc.Skills), doc.Skills)
	}
	if doc.Skills[0] != "X" {
		t.Errorf("model-supplied skills must stay first, got %v", doc.Skills)
	}
	if len(doc.Skills) > skillCap {
		t.Errorf("skills exceed cap: %d", len(doc.Skills))
	}
}

func TestReconcileDefaults(t *testing.T) {
	parsed := &ResumeDocument{FullName: "A", Skills: []string{"X"}}
	in := ProfileInput{ExperienceLevel: LevelFresher}
	doc := Reconcile(parsed, in, BuildHints(in))

	if doc.JobTitle != "Entry Level Professional" {
		t.Errorf("expected inferred title, got %q", doc.JobTitle)
	}
	if len(doc.Languages) != 2 || doc.Languages[0].Language != "English" || doc.Languages[1].Language != "Hindi" {
		t.Errorf("expected default language pair, got %v", doc.Languages)
	}
	if countWords(doc.Summary) < summaryWordFloor {
		t.Errorf("summary below floor: %d words", countWords(doc.Summary))
	}
}

func TestReconcileKeepsParsedLanguagesAndTitle(t *testing.T) {
	parsed := &ResumeDocument{
		FullName:  "A",
		JobTitle:  "Staff Engineer",
		Skills:    []string{"X"},
		Languages: []Language{{Language: "Tamil", Proficiency: "Native"}},
	}
	doc := Reconcile(parsed, ProfileInput{}, BuildHints(ProfileInput{}))
	if doc.JobTitle != "Staff Engineer" {
		t.Errorf("parsed title must be kept, got %q", doc.JobTitle)
	}
	if len(doc.Languages) != 1 || doc.Languages[0].Language != "Tamil" {
		t.Errorf("parsed languages must be kept, got %v", doc.Languages)
	}
}

func TestReconcileNormalizesNilSections(t *testing.T) {
	doc := Reconcile(&ResumeDocument{FullName: "A", Skills: []string{"X"}}, ProfileInput{}, BuildHints(ProfileInput{}))
	if doc.Education == nil || doc.Projects == nil || doc.WorkExperience == nil ||
		doc.Internships == nil || doc.ExtraCurricular == nil ||
		doc.Certifications == nil || doc.Achievements == nil {
		t.Error("optional sections must be empty slices, not nil")
	}
}
