package entity

import (
	"time"

	"github.com/google/uuid"
)

// Raw event sources. Only OCR and ASR text participates in the session
// document; other sources stay in storage but never reach the journal.
const (
	EventSourceOCR = "ocr"
	EventSourceASR = "asr"
)

// RawEvent is a single timestamped piece of captured text inside a session.
// Events are immutable once stored; ordering within a session is timestamp
// order.
type RawEvent struct {
	Id        uuid.UUID
	SessionId string
	Source    string
	Timestamp time.Time
	Text      string
	Metadata  map[string]interface{}
	CreatedAt time.Time
}
