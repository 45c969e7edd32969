package implementation

import (
	"context"

	"edge-journal-be/internal/entity"
	"edge-journal-be/internal/mapper"
	"edge-journal-be/internal/model"
	"edge-journal-be/internal/repository/contract"
	"edge-journal-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type SessionChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionChunkMapper
}

func NewSessionChunkRepository(db *gorm.DB) contract.SessionChunkRepository {
	return &SessionChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionChunkMapper(),
	}
}

func (r *SessionChunkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SessionChunkRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.SessionChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := make([]*model.SessionChunk, len(chunks))
	for i, e := range chunks {
		models[i] = r.mapper.ToModel(e)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*chunks[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *SessionChunkRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.SessionChunk{}).Error
}

func (r *SessionChunkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionChunk, error) {
	var models []*model.SessionChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SessionChunk, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SessionChunkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.SessionChunk{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns chunks with similarity scores, best first.
// Cosine distance in pgvector is 1 - cosine_similarity, so we select
// 1 - (embedding_value <=> query_vector) as the similarity. The current
// session's own chunks are excluded so retrieval grounds on past sessions.
func (r *SessionChunkRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, excludeSessionId string, threshold float64) ([]*contract.ScoredSessionChunk, error) {
	if limit <= 0 {
		limit = 3
	}

	type result struct {
		model.SessionChunk
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	query := r.db.WithContext(ctx).
		Table("session_chunks").
		Select("session_chunks.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("session_chunks.deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold)

	if excludeSessionId != "" {
		query = query.Where("session_chunks.session_id <> ?", excludeSessionId)
	}

	err := query.
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredSessionChunk, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredSessionChunk{
			Chunk:      r.mapper.ToEntity(&res.SessionChunk),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
