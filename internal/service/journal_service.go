package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"edge-journal-be/internal/dto"
	"edge-journal-be/internal/pkg/logger"
	"edge-journal-be/pkg/events"
	"edge-journal-be/pkg/journal"
	natspub "edge-journal-be/pkg/nats"
)

type IJournalService interface {
	// EndSession enqueues a pipeline run for the session and returns
	// immediately with a processing acknowledgement.
	EndSession(ctx context.Context, req *dto.SessionEndRequest) (*dto.SessionEndResponse, error)

	// Poll reports the session's journal state: processing until the
	// pipeline writes its terminal entry, done afterwards.
	Poll(ctx context.Context, sessionId string) (*dto.JournalPollResponse, error)
}

type journalService struct {
	publisherService IPublisherService
	store            journal.EntryStore
	natsPublisher    *natspub.Publisher
	log              logger.ILogger
}

func NewJournalService(
	publisherService IPublisherService,
	store journal.EntryStore,
	natsPublisher *natspub.Publisher,
	log logger.ILogger,
) IJournalService {
	return &journalService{
		publisherService: publisherService,
		store:            store,
		natsPublisher:    natsPublisher,
		log:              log,
	}
}

func (s *journalService) EndSession(ctx context.Context, req *dto.SessionEndRequest) (*dto.SessionEndResponse, error) {
	payload, err := json.Marshal(dto.PublishSessionEndMessage{SessionId: req.SessionId})
	if err != nil {
		return nil, fmt.Errorf("marshal session end message: %w", err)
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		return nil, fmt.Errorf("enqueue session end: %w", err)
	}

	// A re-trigger starts a fresh run, so any previous terminal entry must
	// stop being served. Cleared only once the run is enqueued: a failed
	// enqueue keeps the old entry instead of leaving the session polling
	// "processing" with no run in flight.
	s.store.Delete(req.SessionId)

	s.log.Info("journal", "Session end accepted", map[string]interface{}{
		"session_id": req.SessionId,
	})

	if s.natsPublisher != nil {
		event := events.BaseEvent{
			Type:       events.TypeSessionEnded,
			Data:       map[string]interface{}{"session_id": req.SessionId},
			OccurredAt: time.Now(),
		}
		if err := s.natsPublisher.Publish(ctx, event); err != nil {
			s.log.Warn("journal", "Failed to publish SESSION_ENDED event", map[string]interface{}{
				"session_id": req.SessionId,
				"error":      err.Error(),
			})
		}
	}

	return &dto.SessionEndResponse{
		Status:    "processing",
		SessionId: req.SessionId,
	}, nil
}

func (s *journalService) Poll(ctx context.Context, sessionId string) (*dto.JournalPollResponse, error) {
	entry, found := s.store.Get(sessionId)
	if !found {
		return &dto.JournalPollResponse{
			Status:    "processing",
			SessionId: sessionId,
		}, nil
	}

	return &dto.JournalPollResponse{
		Status:        "done",
		SessionId:     sessionId,
		SummaryAction: entry.SummaryAction,
		RelatedMemory: entry.RelatedMemory,
		Error:         entry.Error,
	}, nil
}
