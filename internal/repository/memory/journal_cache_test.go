package memory

import (
	"testing"
	"time"

	"edge-journal-be/pkg/journal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalCachePutGet(t *testing.T) {
	cache := NewJournalCache(time.Minute)

	_, found := cache.Get("missing")
	assert.False(t, found, "unknown session must report not found")

	entry := &journal.Entry{SummaryAction: "take a walk", RelatedMemory: "walked yesterday, felt better"}
	cache.Put("session-1", entry)

	got, found := cache.Get("session-1")
	require.True(t, found)
	assert.Equal(t, entry, got)
}

func TestJournalCacheOverwrite(t *testing.T) {
	cache := NewJournalCache(time.Minute)

	cache.Put("session-1", &journal.Entry{Error: "llm unavailable"})
	cache.Put("session-1", &journal.Entry{SummaryAction: "retry worked"})

	got, found := cache.Get("session-1")
	require.True(t, found)
	assert.False(t, got.Failed(), "rerun result must replace the error entry")
	assert.Equal(t, "retry worked", got.SummaryAction)
}

func TestJournalCacheDelete(t *testing.T) {
	cache := NewJournalCache(time.Minute)

	cache.Put("session-1", &journal.Entry{SummaryAction: "done"})
	cache.Delete("session-1")

	_, found := cache.Get("session-1")
	assert.False(t, found)
}

func TestJournalCacheTTLExpiry(t *testing.T) {
	cache := NewJournalCache(50 * time.Millisecond)

	cache.Put("session-1", &journal.Entry{SummaryAction: "short lived"})
	time.Sleep(80 * time.Millisecond)

	_, found := cache.Get("session-1")
	assert.False(t, found, "entry must expire after its TTL")
}
