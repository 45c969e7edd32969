package service

import (
	"context"
	"time"

	"edge-journal-be/internal/dto"
	"edge-journal-be/internal/entity"
	"edge-journal-be/internal/repository/specification"
	"edge-journal-be/internal/repository/unitofwork"
	"edge-journal-be/pkg/journal"

	"github.com/google/uuid"
)

type IEventService interface {
	Store(ctx context.Context, req *dto.StoreEventRequest) (*dto.StoreEventResponse, error)
	StoreBulk(ctx context.Context, events []*entity.RawEvent) error
	GetContext(ctx context.Context, sessionId string, count int) (*dto.ContextResponse, error)

	// FetchRawEvents implements journal.EventSource for the pipeline.
	FetchRawEvents(ctx context.Context, sessionId string) ([]journal.RawText, error)
}

type eventService struct {
	uowFactory unitofwork.RepositoryFactory
}

var _ journal.EventSource = (IEventService)(nil)

func NewEventService(uowFactory unitofwork.RepositoryFactory) IEventService {
	return &eventService{
		uowFactory: uowFactory,
	}
}

func (s *eventService) Store(ctx context.Context, req *dto.StoreEventRequest) (*dto.StoreEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ts := time.Now()
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}

	event := entity.RawEvent{
		Id:        uuid.New(),
		SessionId: req.SessionId,
		Source:    req.Source,
		Timestamp: ts,
		Text:      req.Text,
		Metadata:  req.Metadata,
		CreatedAt: time.Now(),
	}

	if err := uow.RawEventRepository().Create(ctx, &event); err != nil {
		return nil, err
	}

	return &dto.StoreEventResponse{
		EventId: event.Id.String(),
		Status:  "stored",
	}, nil
}

func (s *eventService) StoreBulk(ctx context.Context, events []*entity.RawEvent) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.RawEventRepository().CreateBulk(ctx, events)
}

func (s *eventService) GetContext(ctx context.Context, sessionId string, count int) (*dto.ContextResponse, error) {
	if count <= 0 {
		count = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	events, err := uow.RawEventRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Pagination{Limit: count},
	)
	if err != nil {
		return nil, err
	}

	// Newest-first from the DB, oldest-first for the client
	context := make([]dto.ContextEventDTO, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		context = append(context, dto.ContextEventDTO{
			Id:        e.Id.String(),
			SessionId: e.SessionId,
			Source:    e.Source,
			Text:      e.Text,
			Metadata:  e.Metadata,
		})
	}

	return &dto.ContextResponse{
		SessionId: sessionId,
		Context:   context,
		Count:     len(context),
	}, nil
}

func (s *eventService) FetchRawEvents(ctx context.Context, sessionId string) ([]journal.RawText, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	events, err := uow.RawEventRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "timestamp", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	texts := make([]journal.RawText, len(events))
	for i, e := range events {
		texts[i] = journal.RawText{
			Source: e.Source,
			Text:   e.Text,
		}
	}
	return texts, nil
}
