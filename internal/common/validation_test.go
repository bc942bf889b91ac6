package common

import (
	"slices"
	"testing"

	"careersie/internal/types"
)

func TestValidateOutputFormat(t *testing.T) {
	supported := []string{"json", "text", "markdown"}

	tests := []struct {
		name      string
		format    string
		supported []string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid json format",
			format:    "json",
			supported: supported,
			wantErr:   false,
		},
		{
			name:      "valid text format",
			format:    "text",
			supported: supported,
			wantErr:   false,
		},
		{
			name:      "valid markdown format",
			format:    "markdown",
			supported: supported,
			wantErr:   false,
		},
		{
			name:      "unsupported format",
			format:    "xml",
			supported: supported,
			wantErr:   true,
			errMsg:    "unsupported output format 'xml'. Supported formats: [json text markdown]",
		},
		{
			name:      "empty format",
			format:    "",
			supported: supported,
			wantErr:   true,
			errMsg:    "unsupported output format ''. Supported formats: [json text markdown]",
		},
		{
			name:      "no restrictions configured",
			format:    "anything",
			supported: nil,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supported)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ValidateOutputFormat(%q) expected error, got nil", tt.format)
				}
				if err.Error() != tt.errMsg {
					t.Errorf("ValidateOutputFormat(%q) error = %q, want %q", tt.format, err.Error(), tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("ValidateOutputFormat(%q) unexpected error: %v", tt.format, err)
			}
		})
	}
}

func TestGetSupportedFormats(t *testing.T) {
	supported := []string{"json", "text"}
	got := GetSupportedFormats(supported)
	if !slices.Equal(got, supported) {
		t.Errorf("GetSupportedFormats() = %v, want %v", got, supported)
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid profile", func(t *testing.T) {
		content := `{"hard_skills":["go","sql"],"seniority":"senior"}`
		profile, err := DecodeJSON[types.ProfileData](content, "profile.json")
		if err != nil {
			t.Fatalf("DecodeJSON() unexpected error: %v", err)
		}
		if len(profile.HardSkills) != 2 || profile.HardSkills[0] != "go" {
			t.Errorf("unexpected hard skills: %v", profile.HardSkills)
		}
		if profile.Seniority != "senior" {
			t.Errorf("seniority = %q, want %q", profile.Seniority, "senior")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := DecodeJSON[types.ProfileData]("{not json", "profile.json")
		if err == nil {
			t.Fatal("DecodeJSON() expected error for invalid JSON")
		}
	})
}

func BenchmarkValidateOutputFormat(b *testing.B) {
	supported := []string{"json", "text", "markdown"}
	for b.Loop() {
		_ = ValidateOutputFormat("markdown", supported)
	}
}

func BenchmarkGetSupportedFormats(b *testing.B) {
	supported := []string{"json", "text", "markdown"}
	for b.Loop() {
		_ = GetSupportedFormats(supported)
	}
}
