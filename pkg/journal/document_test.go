package journal

import (
	"testing"
)

func TestBuildSessionDocument(t *testing.T) {
	tests := []struct {
		name   string
		events []RawText
		want   string
	}{
		{
			name:   "no events",
			events: nil,
			want:   "",
		},
		{
			name: "single ocr event",
			events: []RawText{
				{Source: "ocr", Text: "TypeError: undefined is not a function"},
			},
			want: "TypeError: undefined is not a function",
		},
		{
			name: "mixed sources keep stored order",
			events: []RawText{
				{Source: "ocr", Text: "error on screen"},
				{Source: "asr", Text: "let me check the logs"},
				{Source: "ocr", Text: "build passed"},
			},
			want: "error on screen\nlet me check the logs\nbuild passed",
		},
		{
			name: "unknown sources skipped",
			events: []RawText{
				{Source: "ocr", Text: "visible text"},
				{Source: "clipboard", Text: "copied text"},
				{Source: "asr", Text: "spoken text"},
			},
			want: "visible text\nspoken text",
		},
		{
			name: "empty text preserved as line",
			events: []RawText{
				{Source: "ocr", Text: ""},
				{Source: "asr", Text: "after blank"},
			},
			want: "\nafter blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSessionDocument(tt.events)
			if got != tt.want {
				t.Errorf("BuildSessionDocument() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildSessionDocumentDeterministic(t *testing.T) {
	events := []RawText{
		{Source: "asr", Text: "first"},
		{Source: "ocr", Text: "second"},
		{Source: "asr", Text: "third"},
	}

	first := BuildSessionDocument(events)
	for i := 0; i < 10; i++ {
		if got := BuildSessionDocument(events); got != first {
			t.Fatalf("run %d produced %q, first run produced %q", i, got, first)
		}
	}
}
