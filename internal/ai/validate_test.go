package ai

import (
	"errors"
	"testing"

	careersieErrors "careersie/internal/errors"
)

func TestValidateParsedJob(t *testing.T) {
	valid := `{
		"role": "Backend Engineer",
		"seniority": "senior",
		"hard_skills": ["go", "postgresql"],
		"soft_skills": ["communication"],
		"tools": ["docker"],
		"responsibilities": ["build services"],
		"requirements": ["5+ years experience"],
		"keywords": ["go", "backend"],
		"nice_to_have": ["kubernetes"]
	}`

	parsed, err := validateParsedJob([]byte(valid))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Role != "Backend Engineer" {
		t.Errorf("Role = %q, want Backend Engineer", parsed.Role)
	}
	if parsed.Seniority != "senior" {
		t.Errorf("Seniority = %q, want senior", parsed.Seniority)
	}
	if len(parsed.HardSkills) != 2 {
		t.Errorf("HardSkills = %v, want 2 entries", parsed.HardSkills)
	}
}

func TestValidateParsedJobMissingField(t *testing.T) {
	// keywords is absent entirely
	missing := `{
		"role": "Backend Engineer",
		"seniority": "senior",
		"hard_skills": [],
		"soft_skills": [],
		"tools": [],
		"responsibilities": [],
		"requirements": [],
		"nice_to_have": []
	}`

	_, err := validateParsedJob([]byte(missing))
	if err == nil {
		t.Fatal("expected error for missing field")
	}

	var appErr *careersieErrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != careersieErrors.ErrCodeSchemaInvalid {
		t.Errorf("error code = %q, want %q", appErr.Code, careersieErrors.ErrCodeSchemaInvalid)
	}
}

func TestValidateParsedJobNullField(t *testing.T) {
	nullField := `{
		"role": "Backend Engineer",
		"seniority": "senior",
		"hard_skills": null,
		"soft_skills": [],
		"tools": [],
		"responsibilities": [],
		"requirements": [],
		"keywords": [],
		"nice_to_have": []
	}`

	_, err := validateParsedJob([]byte(nullField))
	if err == nil {
		t.Fatal("expected error for null field")
	}

	var appErr *careersieErrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != careersieErrors.ErrCodeSchemaInvalid {
		t.Errorf("error code = %q, want %q", appErr.Code, careersieErrors.ErrCodeSchemaInvalid)
	}
}

func TestValidateParsedJobMalformedJSON(t *testing.T) {
	_, err := validateParsedJob([]byte(`this is not json`))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}

	var appErr *careersieErrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != careersieErrors.ErrCodeSchemaInvalid {
		t.Errorf("error code = %q, want %q", appErr.Code, careersieErrors.ErrCodeSchemaInvalid)
	}
}
