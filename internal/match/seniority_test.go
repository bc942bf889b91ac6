package match

import "testing"

func TestNormalizeSeniority(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  int
	}{
		{"plain senior", "senior", levelSenior},
		{"senior with title", "Senior Engineer", levelSenior},
		{"sr abbreviation", "Sr. Developer", levelSenior},
		{"junior", "Junior Developer", levelJunior},
		{"jr abbreviation", "jr engineer", levelJunior},
		{"entry level", "entry level", levelJunior},
		{"lead", "Tech Lead", levelLead},
		{"principal", "Principal Engineer", levelPrincipal},
		{"staff collapses with principal", "Staff Engineer", levelPrincipal},
		{"senior staff picks staff bucket", "Senior Staff Engineer", levelPrincipal},
		{"mid", "mid-level", levelMid},
		{"unknown defaults to mid", "Software Engineer", levelMid},
		{"empty defaults to mid", "", levelMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeSeniority(tt.label); got != tt.want {
				t.Errorf("normalizeSeniority(%q) = %d, want %d", tt.label, got, tt.want)
			}
		})
	}
}

func TestSeniorityAlignment(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		job     string
		want    int
	}{
		{"same level", "senior", "senior", 100},
		{"same level different phrasing", "Senior Engineer", "Senior", 100},
		{"one level apart", "mid", "senior", 70},
		{"two levels apart", "junior", "senior", 40},
		{"three levels apart", "junior", "lead", 20},
		{"four levels apart", "junior", "principal", 20},
		{"principal and staff are the same bucket", "Staff Engineer", "Principal Engineer", 100},
		{"both unknown default to mid", "Engineer", "Developer", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := seniorityAlignment(tt.profile, tt.job); got != tt.want {
				t.Errorf("seniorityAlignment(%q, %q) = %d, want %d", tt.profile, tt.job, got, tt.want)
			}
		})
	}
}

func TestSeniorityAlignmentDistanceSymmetric(t *testing.T) {
	labels := []string{"junior", "mid", "senior", "lead", "principal"}
	for _, a := range labels {
		for _, b := range labels {
			if seniorityAlignment(a, b) != seniorityAlignment(b, a) {
				t.Errorf("seniorityAlignment(%q, %q) != seniorityAlignment(%q, %q)", a, b, b, a)
			}
		}
	}
}
