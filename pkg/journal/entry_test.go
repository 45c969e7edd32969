package journal

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateMemory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "short string untouched",
			input: "short memory",
			want:  "short memory",
		},
		{
			name:  "exactly at limit untouched",
			input: strings.Repeat("a", RelatedMemoryLimit),
			want:  strings.Repeat("a", RelatedMemoryLimit),
		},
		{
			name:  "over limit trimmed",
			input: strings.Repeat("b", RelatedMemoryLimit+50),
			want:  strings.Repeat("b", RelatedMemoryLimit),
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateMemory(tt.input)
			if got != tt.want {
				t.Errorf("TruncateMemory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateMemoryMultibyte(t *testing.T) {
	// 250 three-byte runes: byte-based slicing would cut mid-character
	input := strings.Repeat("日", RelatedMemoryLimit+50)

	got := TruncateMemory(input)

	if !utf8.ValidString(got) {
		t.Fatal("truncated string is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != RelatedMemoryLimit {
		t.Errorf("rune count = %d, want %d", n, RelatedMemoryLimit)
	}
}

func TestEntryFailed(t *testing.T) {
	ok := &Entry{SummaryAction: "take a break"}
	if ok.Failed() {
		t.Error("entry with summary should not be failed")
	}

	failed := &Entry{Error: "generation timed out"}
	if !failed.Failed() {
		t.Error("entry with error should be failed")
	}
}
