package utils

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		chunkSize  int
		overlap    int
		wantChunks int
	}{
		{
			name:       "short text single chunk",
			text:       "hello world",
			chunkSize:  100,
			overlap:    10,
			wantChunks: 1,
		},
		{
			name:       "empty text single chunk",
			text:       "",
			chunkSize:  100,
			overlap:    10,
			wantChunks: 1,
		},
		{
			name:       "exact fit single chunk",
			text:       strings.Repeat("a", 100),
			chunkSize:  100,
			overlap:    10,
			wantChunks: 1,
		},
		{
			name:       "two chunks with overlap",
			text:       strings.Repeat("a", 150),
			chunkSize:  100,
			overlap:    50,
			wantChunks: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitText(tt.text, tt.chunkSize, tt.overlap)
			if len(got) != tt.wantChunks {
				t.Errorf("chunks = %d, want %d", len(got), tt.wantChunks)
			}
		})
	}
}

func TestSplitTextOverlapContent(t *testing.T) {
	text := strings.Repeat("x", 80) + strings.Repeat("y", 80)
	chunks := SplitText(text, 100, 20)

	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}

	// The tail of chunk N must reappear at the head of chunk N+1
	first := chunks[0]
	second := chunks[1]
	tail := first[len(first)-20:]
	if !strings.HasPrefix(second, tail) {
		t.Errorf("chunk overlap broken: tail %q not prefix of %q", tail, second[:30])
	}
}

func TestSplitTextCoversWholeInput(t *testing.T) {
	text := strings.Repeat("abcdefghij", 50)
	chunks := SplitText(text, 120, 30)

	last := chunks[len(chunks)-1]
	if !strings.HasSuffix(text, last) {
		t.Error("last chunk must end where the input ends")
	}
}

func TestSplitTextOverlapGreaterThanChunkSize(t *testing.T) {
	// Misconfigured overlap must not loop forever
	text := strings.Repeat("z", 500)
	chunks := SplitText(text, 100, 100)

	if len(chunks) != 5 {
		t.Errorf("chunks = %d, want 5 non-overlapping chunks", len(chunks))
	}
}

func TestSplitTextMultibyte(t *testing.T) {
	text := strings.Repeat("日本語テキスト", 100)
	chunks := SplitText(text, 100, 20)

	for i, c := range chunks {
		if !strings.HasPrefix(text, chunks[0]) {
			t.Fatalf("chunk 0 is not a prefix of the input")
		}
		if len([]rune(c)) > 100 {
			t.Errorf("chunk %d has %d runes, want <= 100", i, len([]rune(c)))
		}
	}
}
