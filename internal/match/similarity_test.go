package match

import (
	"math"
	"testing"
)

func TestJaccardSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want float64
	}{
		{
			name: "identical sets",
			a:    []string{"go", "python"},
			b:    []string{"go", "python"},
			want: 1.0,
		},
		{
			name: "partial overlap",
			a:    []string{"react", "node.js"},
			b:    []string{"react", "redux"},
			want: 1.0 / 3.0,
		},
		{
			name: "no overlap",
			a:    []string{"go"},
			b:    []string{"rust"},
			want: 0,
		},
		{
			name: "both empty",
			a:    nil,
			b:    nil,
			want: 0,
		},
		{
			name: "one side empty",
			a:    []string{"go"},
			b:    nil,
			want: 0,
		},
		{
			name: "case and whitespace normalization",
			a:    []string{"React", "REACT ", " react"},
			b:    []string{"react"},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := jaccardSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("jaccardSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJaccardSimilaritySymmetric(t *testing.T) {
	pairs := [][2][]string{
		{{"react", "node.js"}, {"react", "redux"}},
		{{"go", "rust", "c"}, {"go"}},
		{nil, {"go"}},
		{{"a", "b"}, nil},
	}

	for _, pair := range pairs {
		ab := jaccardSimilarity(pair[0], pair[1])
		ba := jaccardSimilarity(pair[1], pair[0])
		if ab != ba {
			t.Errorf("jaccardSimilarity not symmetric for %v / %v: %v vs %v", pair[0], pair[1], ab, ba)
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want float64
	}{
		{
			name: "identical text",
			a:    []string{"build web services"},
			b:    []string{"build web services"},
			want: 1.0,
		},
		{
			name: "no shared words",
			a:    []string{"design databases"},
			b:    []string{"write frontend code"},
			want: 0,
		},
		{
			name: "both empty",
			a:    nil,
			b:    nil,
			want: 0,
		},
		{
			name: "one side empty",
			a:    []string{"build services"},
			b:    nil,
			want: 0,
		},
		{
			name: "case insensitive",
			a:    []string{"Build SERVICES"},
			b:    []string{"build services"},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarityBounded(t *testing.T) {
	inputs := [][2][]string{
		{{"build web services", "maintain pipelines"}, {"build pipelines"}},
		{{"a a a b"}, {"a b b b"}},
		{{"one two three"}, {"three two one"}},
	}

	for _, pair := range inputs {
		got := cosineSimilarity(pair[0], pair[1])
		if got < 0 || got > 1 {
			t.Errorf("cosineSimilarity(%v, %v) = %v, out of [0,1]", pair[0], pair[1], got)
		}
	}
}

func BenchmarkCosineSimilarity(b *testing.B) {
	a := []string{
		"design and build scalable backend services",
		"maintain ci pipelines and deployment automation",
		"mentor junior engineers on code quality",
	}
	c := []string{
		"build backend services in a cloud environment",
		"own deployment automation end to end",
	}

	for b.Loop() {
		cosineSimilarity(a, c)
	}
}
