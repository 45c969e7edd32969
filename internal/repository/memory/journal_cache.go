package memory

import (
	"time"

	"edge-journal-be/pkg/journal"

	"github.com/patrickmn/go-cache"
)

// JournalCache is the in-process poll surface for journal results.
// TTL-bounded so entries the frontend never collects don't accumulate
// for the process lifetime.
type JournalCache struct {
	cache *cache.Cache
}

var _ journal.EntryStore = &JournalCache{}

func NewJournalCache(ttl time.Duration) *JournalCache {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	// Purge expired entries at a fraction of the TTL
	c := cache.New(ttl, ttl/4)
	return &JournalCache{
		cache: c,
	}
}

func (r *JournalCache) Put(sessionId string, entry *journal.Entry) {
	r.cache.Set(sessionId, entry, cache.DefaultExpiration)
}

func (r *JournalCache) Get(sessionId string) (*journal.Entry, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*journal.Entry), true
	}
	return nil, false
}

func (r *JournalCache) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}
