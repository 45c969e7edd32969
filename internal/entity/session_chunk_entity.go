package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionChunk is one embedded slice of a processed session document,
// stored in the retrieval index. Chunks for a session are replaced
// wholesale every time the session is reprocessed.
type SessionChunk struct {
	Id             uuid.UUID
	SessionId      string
	Document       string
	EmbeddingValue []float32
	ChunkIndex     int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
