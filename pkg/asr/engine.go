package asr

import "context"

// Segment is one transcribed span of audio.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Engine transcribes a recorded audio file. Whisper loading and audio
// preprocessing live in the inference sidecar, not in this backend.
type Engine interface {
	Transcribe(ctx context.Context, audioPath string) ([]Segment, error)
}
