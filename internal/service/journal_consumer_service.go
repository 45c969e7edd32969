package service

import (
	"context"
	"encoding/json"
	"time"

	"edge-journal-be/internal/dto"
	"edge-journal-be/internal/pkg/logger"
	"edge-journal-be/pkg/events"
	"edge-journal-be/pkg/journal"
	natspub "edge-journal-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IJournalConsumerService interface {
	// StartConsumer subscribes to the session-end topic and drives one
	// pipeline run per message until ctx is cancelled.
	StartConsumer(ctx context.Context) error
}

type journalConsumerService struct {
	topicName     string
	pubSub        *gochannel.GoChannel
	runner        *journal.Runner
	store         journal.EntryStore
	natsPublisher *natspub.Publisher
	log           logger.ILogger
}

func NewJournalConsumerService(
	topicName string,
	pubSub *gochannel.GoChannel,
	runner *journal.Runner,
	store journal.EntryStore,
	natsPublisher *natspub.Publisher,
	log logger.ILogger,
) IJournalConsumerService {
	return &journalConsumerService{
		topicName:     topicName,
		pubSub:        pubSub,
		runner:        runner,
		store:         store,
		natsPublisher: natsPublisher,
		log:           log,
	}
}

func (s *journalConsumerService) StartConsumer(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	s.log.Info("consumer", "Journal consumer started", map[string]interface{}{
		"topic": s.topicName,
	})

	for msg := range messages {
		s.processMessage(ctx, msg)
	}

	s.log.Info("consumer", "Journal consumer stopped", nil)
	return nil
}

func (s *journalConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Ack before running: gochannel delivers the next message only after
	// the ack, and sessions must not queue behind each other's runs.
	defer msg.Ack()

	var payload dto.PublishSessionEndMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.log.Error("consumer", "Failed to unmarshal session end message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	// One goroutine per trigger. The runner's per-session in-flight guard
	// dedupes concurrent triggers for the same session, so a slow
	// generation for one session never delays another session's pipeline.
	go func() {
		s.runner.Run(ctx, payload.SessionId)
		s.publishOutcome(ctx, payload.SessionId)
	}()
}

func (s *journalConsumerService) publishOutcome(ctx context.Context, sessionId string) {
	if s.natsPublisher == nil {
		return
	}

	entry, found := s.store.Get(sessionId)
	if !found {
		// Joined an in-flight run; that run publishes the outcome.
		return
	}

	eventType := events.TypeJournalCompleted
	data := map[string]interface{}{"session_id": sessionId}
	if entry.Failed() {
		eventType = events.TypeJournalFailed
		data["error"] = entry.Error
	}

	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.natsPublisher.Publish(ctx, event); err != nil {
		s.log.Warn("consumer", "Failed to publish journal outcome event", map[string]interface{}{
			"session_id": sessionId,
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}
