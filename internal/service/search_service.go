package service

import (
	"context"
	"fmt"

	"edge-journal-be/internal/pkg/logger"
	"edge-journal-be/internal/repository/unitofwork"
	"edge-journal-be/pkg/embedding"
	"edge-journal-be/pkg/journal"
)

type ISearchService interface {
	// SearchSimilar implements journal.Searcher: embed the query document
	// and return the best-ranked chunks from other sessions.
	SearchSimilar(ctx context.Context, document string, k int, excludeSessionId string) ([]journal.Candidate, error)
}

type searchService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	log               logger.ILogger
}

var _ journal.Searcher = (ISearchService)(nil)

func NewSearchService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) ISearchService {
	return &searchService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		log:               log,
	}
}

func (s *searchService) SearchSimilar(ctx context.Context, document string, k int, excludeSessionId string) ([]journal.Candidate, error) {
	if document == "" {
		// An empty session has nothing to match against; skip the
		// embedding round-trip and fall through to the no-context prompt.
		return nil, nil
	}

	embeddingRes, err := s.embeddingProvider.Generate(document, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.SessionChunkRepository().SearchSimilarWithScore(
		ctx,
		embeddingRes.Embedding.Values,
		k,
		excludeSessionId,
		0, // ranking happens in the DB; any floor is the selector's call
	)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	candidates := make([]journal.Candidate, len(scored))
	for i, res := range scored {
		candidates[i] = journal.Candidate{
			Score:   res.Similarity,
			Content: res.Chunk.Document,
		}
		s.log.Debug("search", "Retrieval candidate", map[string]interface{}{
			"rank":       i + 1,
			"score":      res.Similarity,
			"session_id": res.Chunk.SessionId,
		})
	}
	return candidates, nil
}
