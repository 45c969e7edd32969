package service

import (
	"context"
	"fmt"
	"time"

	"edge-journal-be/internal/entity"
	"edge-journal-be/internal/pkg/logger"
	"edge-journal-be/internal/repository/specification"
	"edge-journal-be/internal/repository/unitofwork"
	"edge-journal-be/pkg/embedding"
	"edge-journal-be/pkg/journal"
	"edge-journal-be/pkg/utils"

	"github.com/google/uuid"
)

// Chunking parameters for session documents.
// ChunkSize: 1500 chars (approx 375 tokens), overlap 200 chars.
const (
	chunkSize    = 1500
	chunkOverlap = 200
)

type IIndexerService interface {
	// ProcessSession implements journal.Indexer: it rebuilds the retrieval
	// index entries for one session from its raw OCR/ASR events.
	ProcessSession(ctx context.Context, sessionId string) ([]string, error)
}

type indexerService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	log               logger.ILogger
}

var _ journal.Indexer = (IIndexerService)(nil)

func NewIndexerService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IIndexerService {
	return &indexerService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		log:               log,
	}
}

func (s *indexerService) ProcessSession(ctx context.Context, sessionId string) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	events, err := uow.RawEventRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.BySources{Sources: []string{entity.EventSourceOCR, entity.EventSourceASR}},
		specification.OrderBy{Field: "timestamp", Desc: false},
	)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	texts := make([]journal.RawText, len(events))
	for i, e := range events {
		texts[i] = journal.RawText{Source: e.Source, Text: e.Text}
	}
	document := journal.BuildSessionDocument(texts)

	if document == "" {
		// Nothing to index; clear any stale chunks so retrieval never
		// serves content the session no longer has.
		if err := uow.SessionChunkRepository().DeleteBySessionId(ctx, sessionId); err != nil {
			return nil, fmt.Errorf("clear chunks: %w", err)
		}
		return []string{}, nil
	}

	chunks := utils.SplitText(document, chunkSize, chunkOverlap)
	s.log.Info("indexer", "Session document split", map[string]interface{}{
		"session_id": sessionId,
		"chunks":     len(chunks),
	})

	newChunks := make([]*entity.SessionChunk, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := s.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			return nil, fmt.Errorf("embed chunk %d: %w", i, err)
		}

		newChunks = append(newChunks, &entity.SessionChunk{
			Id:             uuid.New(),
			SessionId:      sessionId,
			Document:       chunk,
			EmbeddingValue: res.Embedding.Values,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	// Replace the session's chunks atomically so a reprocess never leaves
	// a mix of old and new embeddings behind.
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.SessionChunkRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return nil, fmt.Errorf("delete old chunks: %w", err)
	}

	if err := uow.SessionChunkRepository().CreateBulk(ctx, newChunks); err != nil {
		return nil, fmt.Errorf("create chunks: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	ids := make([]string, len(newChunks))
	for i, c := range newChunks {
		ids[i] = c.Id.String()
	}
	return ids, nil
}
