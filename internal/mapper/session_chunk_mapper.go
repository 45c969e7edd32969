package mapper

import (
	"time"

	"edge-journal-be/internal/entity"
	"edge-journal-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type SessionChunkMapper struct{}

func NewSessionChunkMapper() *SessionChunkMapper {
	return &SessionChunkMapper{}
}

func (m *SessionChunkMapper) ToEntity(e *model.SessionChunk) *entity.SessionChunk {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.SessionChunk{
		Id:             e.Id,
		SessionId:      e.SessionId,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *SessionChunkMapper) ToModel(e *entity.SessionChunk) *model.SessionChunk {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.SessionChunk{
		Id:             e.Id,
		SessionId:      e.SessionId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *SessionChunkMapper) ToModels(chunks []*entity.SessionChunk) []*model.SessionChunk {
	models := make([]*model.SessionChunk, len(chunks))
	for i, e := range chunks {
		models[i] = m.ToModel(e)
	}
	return models
}
