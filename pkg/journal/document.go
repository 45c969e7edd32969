package journal

import "strings"

// RawText is the slice of a stored event the pipeline cares about.
type RawText struct {
	Source string
	Text   string
}

// BuildSessionDocument concatenates OCR and ASR event texts in stored
// order, newline-joined. Events from any other source are skipped.
// Deterministic: the same ordered input always yields the same string.
func BuildSessionDocument(events []RawText) string {
	var texts []string
	for _, e := range events {
		if e.Source == "ocr" || e.Source == "asr" {
			texts = append(texts, e.Text)
		}
	}
	return strings.Join(texts, "\n")
}
