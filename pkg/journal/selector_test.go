package journal

import (
	"testing"
)

func TestSelectContext(t *testing.T) {
	tests := []struct {
		name          string
		candidates    []Candidate
		minSimilarity float64
		want          string
	}{
		{
			name:          "no candidates",
			candidates:    nil,
			minSimilarity: 0,
			want:          "",
		},
		{
			name: "top candidate wins",
			candidates: []Candidate{
				{Score: 0.9, Content: "best match"},
				{Score: 0.8, Content: "second"},
				{Score: 0.7, Content: "third"},
			},
			minSimilarity: 0,
			want:          "best match",
		},
		{
			name: "weak match still selected at zero floor",
			candidates: []Candidate{
				{Score: 0.01, Content: "barely related"},
			},
			minSimilarity: 0,
			want:          "barely related",
		},
		{
			name: "floor rejects weak top candidate",
			candidates: []Candidate{
				{Score: 0.3, Content: "weak"},
				{Score: 0.2, Content: "weaker"},
			},
			minSimilarity: 0.5,
			want:          "",
		},
		{
			name: "floor boundary is inclusive",
			candidates: []Candidate{
				{Score: 0.5, Content: "exactly at floor"},
			},
			minSimilarity: 0.5,
			want:          "exactly at floor",
		},
		{
			name: "never re-ranks past the first candidate",
			candidates: []Candidate{
				{Score: 0.4, Content: "first"},
				{Score: 0.9, Content: "should never be picked"},
			},
			minSimilarity: 0.5,
			want:          "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectContext(tt.candidates, tt.minSimilarity)
			if got != tt.want {
				t.Errorf("SelectContext() = %q, want %q", got, tt.want)
			}
		})
	}
}
