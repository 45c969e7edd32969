package contract

import (
	"context"

	"edge-journal-be/internal/entity"
	"edge-journal-be/internal/repository/specification"
)

// ScoredSessionChunk pairs a retrieval chunk with its cosine similarity
// against the query vector.
type ScoredSessionChunk struct {
	Chunk      *entity.SessionChunk
	Similarity float64
}

type SessionChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.SessionChunk) error
	DeleteBySessionId(ctx context.Context, sessionId string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilarWithScore runs a cosine-distance search over the index,
	// excluding chunks from excludeSessionId and dropping anything below
	// threshold. Results come back best-first.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, excludeSessionId string, threshold float64) ([]*ScoredSessionChunk, error)
}
