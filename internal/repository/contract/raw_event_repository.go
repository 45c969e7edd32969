package contract

import (
	"context"

	"edge-journal-be/internal/entity"
	"edge-journal-be/internal/repository/specification"
)

type RawEventRepository interface {
	Create(ctx context.Context, event *entity.RawEvent) error
	CreateBulk(ctx context.Context, events []*entity.RawEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RawEvent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
