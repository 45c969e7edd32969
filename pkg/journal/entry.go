package journal

// RelatedMemoryLimit caps the related_memory field surfaced to the client.
// Display-only: the prompt always sees the full retrieved context.
const RelatedMemoryLimit = 200

// Entry is the terminal result of one pipeline run for a session.
// Exactly one of SummaryAction or Error is set.
type Entry struct {
	SummaryAction string `json:"summary_action,omitempty"`
	RelatedMemory string `json:"related_memory,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Failed reports whether this entry is the error shape.
func (e *Entry) Failed() bool {
	return e.Error != ""
}

// EntryStore is the poll surface: a keyed store of terminal pipeline
// results. Implementations must tolerate concurrent Get (poll) and Put
// (pipeline completion). A missing key means the session is still
// processing or was never triggered.
type EntryStore interface {
	Get(sessionId string) (*Entry, bool)
	Put(sessionId string, entry *Entry)
	Delete(sessionId string)
}

// TruncateMemory trims a retrieved context down to the display limit.
// Counts runes, not bytes, so multibyte text is never split mid-character.
func TruncateMemory(context string) string {
	runes := []rune(context)
	if len(runes) <= RelatedMemoryLimit {
		return context
	}
	return string(runes[:RelatedMemoryLimit])
}
