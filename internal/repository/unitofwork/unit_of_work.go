package unitofwork

import (
	"context"

	"edge-journal-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	RawEventRepository() contract.RawEventRepository
	SessionChunkRepository() contract.SessionChunkRepository
}
