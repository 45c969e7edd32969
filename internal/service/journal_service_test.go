package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"edge-journal-be/internal/dto"
	"edge-journal-be/pkg/journal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

type fakeEntryStore struct {
	mu      sync.Mutex
	entries map[string]*journal.Entry
}

func newFakeEntryStore() *fakeEntryStore {
	return &fakeEntryStore{entries: make(map[string]*journal.Entry)}
}

func (f *fakeEntryStore) Get(sessionId string) (*journal.Entry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[sessionId]
	return e, ok
}

func (f *fakeEntryStore) Put(sessionId string, entry *journal.Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[sessionId] = entry
}

func (f *fakeEntryStore) Delete(sessionId string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, sessionId)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestEndSessionEnqueuesRun(t *testing.T) {
	pub := &fakePublisher{}
	store := newFakeEntryStore()
	svc := NewJournalService(pub, store, nil, nopLogger{})

	res, err := svc.EndSession(context.Background(), &dto.SessionEndRequest{SessionId: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "processing", res.Status)
	assert.Equal(t, "abc", res.SessionId)

	require.Len(t, pub.payloads, 1)
	var msg dto.PublishSessionEndMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, "abc", msg.SessionId)
}

func TestEndSessionClearsStaleEntry(t *testing.T) {
	pub := &fakePublisher{}
	store := newFakeEntryStore()
	store.Put("abc", &journal.Entry{SummaryAction: "old summary"})

	svc := NewJournalService(pub, store, nil, nopLogger{})

	_, err := svc.EndSession(context.Background(), &dto.SessionEndRequest{SessionId: "abc"})
	require.NoError(t, err)

	// Poll must go back to processing while the rerun is in flight
	_, found := store.Get("abc")
	assert.False(t, found, "re-trigger must clear the previous terminal entry")
}

func TestEndSessionPublishFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("queue closed")}
	store := newFakeEntryStore()
	store.Put("abc", &journal.Entry{SummaryAction: "previous result"})

	svc := NewJournalService(pub, store, nil, nopLogger{})

	_, err := svc.EndSession(context.Background(), &dto.SessionEndRequest{SessionId: "abc"})
	assert.Error(t, err)

	// No run was enqueued, so the old entry must keep being served rather
	// than leaving the session stuck on "processing"
	got, found := store.Get("abc")
	require.True(t, found, "failed enqueue must not discard the prior entry")
	assert.Equal(t, "previous result", got.SummaryAction)
}

func TestPollStates(t *testing.T) {
	store := newFakeEntryStore()
	svc := NewJournalService(&fakePublisher{}, store, nil, nopLogger{})

	// No entry yet: processing
	res, err := svc.Poll(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "processing", res.Status)
	assert.Equal(t, "abc", res.SessionId)
	assert.Empty(t, res.SummaryAction)
	assert.Empty(t, res.Error)

	// Success entry: done with summary fields
	store.Put("abc", &journal.Entry{SummaryAction: "breathe", RelatedMemory: "handled this before"})
	res, err = svc.Poll(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "done", res.Status)
	assert.Equal(t, "breathe", res.SummaryAction)
	assert.Equal(t, "handled this before", res.RelatedMemory)
	assert.Empty(t, res.Error)

	// Error entry: done with error set
	store.Put("abc", &journal.Entry{Error: "generation timed out"})
	res, err = svc.Poll(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "done", res.Status)
	assert.Equal(t, "generation timed out", res.Error)
	assert.Empty(t, res.SummaryAction)
}
