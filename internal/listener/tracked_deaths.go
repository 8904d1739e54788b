package listener

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TrackedDeaths remembers entities whose death already credited a kill so a
// second observer of the same death cannot credit another one. Entries expire
// after a TTL and the set is bounded; identifiers are not reused while an
// entity is loaded, so an evicted entry is harmless.
//
// Safe for concurrent use.
type TrackedDeaths struct {
	lru *expirable.LRU[uuid.UUID, struct{}]
}

// NewTrackedDeaths creates a set holding at most capacity entries for ttl.
// A ttl of zero keeps entries until evicted or forgotten.
func NewTrackedDeaths(capacity int, ttl time.Duration) *TrackedDeaths {
	return &TrackedDeaths{
		lru: expirable.NewLRU[uuid.UUID, struct{}](capacity, nil, ttl),
	}
}

// Attributed reports whether the entity's death already credited a kill
func (t *TrackedDeaths) Attributed(id uuid.UUID) bool {
	_, ok := t.lru.Peek(id)
	return ok
}

// MarkAttributed records that the entity's death credited a kill
func (t *TrackedDeaths) MarkAttributed(id uuid.UUID) {
	t.lru.Add(id, struct{}{})
}

// Forget drops an entity, e.g. once the host confirms it was removed
func (t *TrackedDeaths) Forget(id uuid.UUID) {
	t.lru.Remove(id)
}

// Len returns the number of remembered deaths
func (t *TrackedDeaths) Len() int {
	return t.lru.Len()
}
