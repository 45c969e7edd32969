package service

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"edge-journal-be/pkg/journal"
	"edge-journal-be/pkg/llm"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingIndexer struct {
	calls int64
}

func (f *countingIndexer) ProcessSession(ctx context.Context, sessionId string) ([]string, error) {
	atomic.AddInt64(&f.calls, 1)
	return []string{"chunk-1"}, nil
}

type sessionEventSource struct{}

func (sessionEventSource) FetchRawEvents(ctx context.Context, sessionId string) ([]journal.RawText, error) {
	// Tag the document with the session id so the model fake can tell
	// which session it is generating for
	return []journal.RawText{{Source: "ocr", Text: "doc-for-" + sessionId}}, nil
}

type noCandidateSearcher struct{}

func (noCandidateSearcher) SearchSimilar(ctx context.Context, document string, k int, excludeSessionId string) ([]journal.Candidate, error) {
	return nil, nil
}

// gateLLM blocks generation for sessions named in blockOn until release
// is closed; everything else returns instantly.
type gateLLM struct {
	blockOn string
	started chan struct{}
	release chan struct{}
}

func (g *gateLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return "ok", nil
}

func (g *gateLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	if g.blockOn != "" && strings.Contains(prompt, "doc-for-"+g.blockOn) {
		select {
		case g.started <- struct{}{}:
		default:
		}
		select {
		case <-g.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "generated summary", nil
}

func startConsumerHarness(t *testing.T, model llm.LLMProvider, indexer *countingIndexer) (IPublisherService, *fakeEntryStore) {
	t.Helper()

	// Persistent so a publish that races the consumer's subscription is
	// delivered once the subscriber registers instead of being dropped.
	pubSub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NewStdLogger(false, false))
	store := newFakeEntryStore()

	runner := journal.NewRunner(
		indexer,
		sessionEventSource{},
		noCandidateSearcher{},
		model,
		store,
		journal.DefaultConfig(),
		nopLogger{},
	)

	consumer := NewJournalConsumerService("SESSION_END_TEST", pubSub, runner, store, nil, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		_ = consumer.StartConsumer(ctx)
	}()

	return NewPublisherService("SESSION_END_TEST", pubSub), store
}

func endSession(t *testing.T, pub IPublisherService, sessionId string) {
	t.Helper()
	err := pub.Publish(context.Background(), []byte(`{"session_id":"`+sessionId+`"}`))
	require.NoError(t, err)
}

func waitForEntry(t *testing.T, store *fakeEntryStore, sessionId string, timeout time.Duration) *journal.Entry {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if entry, found := store.Get(sessionId); found {
			return entry
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("no entry for %s within %v", sessionId, timeout)
	return nil
}

func TestConsumerRunsSessionsIndependently(t *testing.T) {
	model := &gateLLM{
		blockOn: "session-slow",
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	indexer := &countingIndexer{}
	pub, store := startConsumerHarness(t, model, indexer)

	endSession(t, pub, "session-slow")

	select {
	case <-model.started:
	case <-time.After(2 * time.Second):
		t.Fatal("slow session never reached generation")
	}

	// While session-slow hangs in generation, session-fast must still
	// complete its whole pipeline
	endSession(t, pub, "session-fast")
	fast := waitForEntry(t, store, "session-fast", 2*time.Second)
	assert.False(t, fast.Failed())

	_, found := store.Get("session-slow")
	assert.False(t, found, "blocked session must still be in flight")

	close(model.release)
	slow := waitForEntry(t, store, "session-slow", 2*time.Second)
	assert.False(t, slow.Failed())
}

func TestConsumerJoinsInflightRerunTrigger(t *testing.T) {
	model := &gateLLM{
		blockOn: "session-a",
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	indexer := &countingIndexer{}
	pub, store := startConsumerHarness(t, model, indexer)

	endSession(t, pub, "session-a")

	select {
	case <-model.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first trigger never reached generation")
	}

	// Second trigger while the first run is in flight: it must join the
	// running pipeline, not queue a duplicate
	endSession(t, pub, "session-a")
	time.Sleep(50 * time.Millisecond)

	close(model.release)
	entry := waitForEntry(t, store, "session-a", 2*time.Second)
	assert.False(t, entry.Failed())

	// Give the consumer a moment in case a duplicate was dispatched anyway
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&indexer.calls),
		"re-trigger during a run must not start a second pipeline")
}
