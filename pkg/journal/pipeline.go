package journal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"edge-journal-be/internal/pkg/logger"
	"edge-journal-be/pkg/journal/prompt"
	"edge-journal-be/pkg/llm"
)

// Collaborator interfaces. The pipeline consumes these narrowly so runs
// are testable without a database or a live model.

// Indexer cleans, chunks and embeds a session's events into the
// retrieval index, returning the ids of the derived chunks.
type Indexer interface {
	ProcessSession(ctx context.Context, sessionId string) ([]string, error)
}

// EventSource yields a session's raw events in stored (timestamp) order.
type EventSource interface {
	FetchRawEvents(ctx context.Context, sessionId string) ([]RawText, error)
}

// Searcher returns ranked candidates for a query document, best first,
// excluding the named session's own chunks.
type Searcher interface {
	SearchSimilar(ctx context.Context, document string, k int, excludeSessionId string) ([]Candidate, error)
}

// Config tunes one Runner. Zero MinSimilarity keeps the take-top-1
// behavior regardless of how weak the match is.
type Config struct {
	TopK          int
	MinSimilarity float64
	GenTimeout    time.Duration
}

func DefaultConfig() Config {
	return Config{
		TopK:          3,
		MinSimilarity: 0,
		GenTimeout:    120 * time.Second,
	}
}

// Runner drives the session-end journal pipeline for one session at a
// time per session id. Run never returns an error to its caller: every
// outcome, including a panic, lands in the entry store so the poll
// surface always converges to done.
type Runner struct {
	indexer  Indexer
	events   EventSource
	searcher Searcher
	llm      llm.LLMProvider
	store    EntryStore
	cfg      Config
	log      logger.ILogger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewRunner(
	indexer Indexer,
	events EventSource,
	searcher Searcher,
	llmProvider llm.LLMProvider,
	store EntryStore,
	cfg Config,
	log logger.ILogger,
) *Runner {
	if cfg.TopK <= 0 {
		cfg.TopK = 3
	}
	if cfg.GenTimeout <= 0 {
		cfg.GenTimeout = DefaultConfig().GenTimeout
	}
	return &Runner{
		indexer:  indexer,
		events:   events,
		searcher: searcher,
		llm:      llmProvider,
		store:    store,
		cfg:      cfg,
		log:      log,
		inflight: make(map[string]struct{}),
	}
}

// Run executes the full pipeline for sessionId and writes exactly one
// entry to the store. A second Run for the same session while one is in
// flight joins the existing run: it returns immediately without starting
// a duplicate, and the poll surface keeps reporting "processing" until
// the first run completes.
func (r *Runner) Run(ctx context.Context, sessionId string) {
	if !r.begin(sessionId) {
		r.log.Info("journal", "Pipeline already in flight, joining existing run", map[string]interface{}{
			"session_id": sessionId,
		})
		return
	}
	defer r.end(sessionId)

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("journal", "Pipeline panicked", map[string]interface{}{
				"session_id": sessionId,
				"panic":      fmt.Sprintf("%v", rec),
			})
			r.store.Put(sessionId, &Entry{Error: fmt.Sprintf("journal pipeline panic: %v", rec)})
		}
	}()

	r.log.Info("journal", "Starting journal pipeline", map[string]interface{}{
		"session_id": sessionId,
	})

	entry, err := r.execute(ctx, sessionId)
	if err != nil {
		r.log.Error("journal", "Pipeline failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		r.store.Put(sessionId, &Entry{Error: err.Error()})
		return
	}

	r.store.Put(sessionId, entry)
	r.log.Info("journal", "Journal pipeline completed", map[string]interface{}{
		"session_id": sessionId,
	})
}

func (r *Runner) execute(ctx context.Context, sessionId string) (*Entry, error) {
	// 1. Index the session's events into the retrieval store.
	chunkIds, err := r.indexer.ProcessSession(ctx, sessionId)
	if err != nil {
		return nil, fmt.Errorf("process session: %w", err)
	}
	r.log.Info("journal", "Session processed", map[string]interface{}{
		"session_id": sessionId,
		"chunks":     len(chunkIds),
	})

	// 2. Build the session document from raw OCR/ASR events.
	events, err := r.events.FetchRawEvents(ctx, sessionId)
	if err != nil {
		return nil, fmt.Errorf("fetch raw events: %w", err)
	}
	document := BuildSessionDocument(events)

	// 3. Retrieve ranked candidates from past sessions.
	candidates, err := r.searcher.SearchSimilar(ctx, document, r.cfg.TopK, sessionId)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	// 4. Pick at most one prior experience as grounding context.
	remedyContext := SelectContext(candidates, r.cfg.MinSimilarity)

	// 5. Render the prompt and generate, bounded by the gen timeout so a
	// hung backend terminates this session's run instead of stalling it.
	promptText := prompt.Build(document, remedyContext)

	genCtx, cancel := context.WithTimeout(ctx, r.cfg.GenTimeout)
	defer cancel()

	summary, err := r.llm.Generate(genCtx, promptText)
	if err != nil {
		return nil, fmt.Errorf("generate journal entry: %w", err)
	}

	entry := &Entry{SummaryAction: summary}
	if remedyContext != "" {
		entry.RelatedMemory = TruncateMemory(remedyContext)
	}
	return entry, nil
}

func (r *Runner) begin(sessionId string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, running := r.inflight[sessionId]; running {
		return false
	}
	r.inflight[sessionId] = struct{}{}
	return true
}

func (r *Runner) end(sessionId string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inflight, sessionId)
}
