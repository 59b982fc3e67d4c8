package service

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/advent/pkg/entity"
)

const previewShardCount = 16

// PreviewKey identifies one proposed-but-unconfirmed selection: same user,
// same calendar day, same mood. A different mood previews independently.
type PreviewKey struct {
	UserID uuid.UUID
	Day    string
	Mood   entity.Mood
}

func NewPreviewKey(uid uuid.UUID, day time.Time, mood entity.Mood) PreviewKey {
	return PreviewKey{
		UserID: uid,
		Day:    day.Format("2006-01-02"),
		Mood:   mood,
	}
}

// PreviewCache holds per-day previewed challenges until they are confirmed.
// Sharded so concurrent requests for unrelated keys don't contend on one
// lock. Owned by the coordinator instance: no globals, dies with it.
// Entries from previous days are never looked up again and simply linger.
type PreviewCache struct {
	shards [previewShardCount]previewShard
}

type previewShard struct {
	mu      sync.RWMutex
	entries map[PreviewKey]entity.Challenge
}

func NewPreviewCache() *PreviewCache {
	cache := &PreviewCache{}
	for i := range cache.shards {
		cache.shards[i].entries = make(map[PreviewKey]entity.Challenge)
	}
	return cache
}

func (pc *PreviewCache) Get(key PreviewKey) (entity.Challenge, bool) {
	shard := pc.shard(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	challenge, ok := shard.entries[key]
	return challenge, ok
}

func (pc *PreviewCache) Put(key PreviewKey, challenge entity.Challenge) {
	shard := pc.shard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	shard.entries[key] = challenge
}

func (pc *PreviewCache) Remove(key PreviewKey) {
	shard := pc.shard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	delete(shard.entries, key)
}

func (pc *PreviewCache) shard(key PreviewKey) *previewShard {
	h := fnv.New32a()
	h.Write(key.UserID[:])
	h.Write([]byte(key.Day))
	h.Write([]byte(key.Mood))
	return &pc.shards[h.Sum32()%previewShardCount]
}
