package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"edge-journal-be/internal/pkg/logger"
	"edge-journal-be/pkg/journal"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "journal:entry:"

// JournalCache is a Redis-backed poll surface, for deployments where the
// REST process restarts independently of an in-flight frontend poll loop.
type JournalCache struct {
	rdb *redis.Client
	ttl time.Duration
	log logger.ILogger
}

var _ journal.EntryStore = &JournalCache{}

func NewJournalCache(rdb *redis.Client, ttl time.Duration, log logger.ILogger) *JournalCache {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	return &JournalCache{
		rdb: rdb,
		ttl: ttl,
		log: log,
	}
}

func (r *JournalCache) Put(sessionId string, entry *journal.Entry) {
	data, err := json.Marshal(entry)
	if err != nil {
		r.log.Error("journal_cache", "Failed to marshal entry", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return
	}
	if err := r.rdb.Set(context.Background(), keyPrefix+sessionId, data, r.ttl).Err(); err != nil {
		r.log.Error("journal_cache", "Failed to store entry", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}
}

func (r *JournalCache) Get(sessionId string) (*journal.Entry, bool) {
	data, err := r.rdb.Get(context.Background(), keyPrefix+sessionId).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn("journal_cache", "Failed to read entry", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
		}
		return nil, false
	}

	var entry journal.Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		r.log.Error("journal_cache", "Corrupt cache entry", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, false
	}
	return &entry, true
}

func (r *JournalCache) Delete(sessionId string) {
	r.rdb.Del(context.Background(), keyPrefix+sessionId)
}
