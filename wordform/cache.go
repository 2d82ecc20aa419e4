package wordform

import (
	"context"
	"log"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Alfex4936/wordform/internal/model"
)

// DecompositionStore is the persistent layer of CachedDecomposer
// (*store.DecompositionRepo in production).
type DecompositionStore interface {
	Find(ctx context.Context, word, source string, maxAge time.Duration) ([]model.Segment, error)
	Upsert(ctx context.Context, word, source string, segs []model.Segment) error
}

// CachedDecomposer puts an in-memory TTL cache and an optional store in
// front of a slow Decomposer. Only successful lookups are cached.
type CachedDecomposer struct {
	next   Decomposer
	source string
	mem    *cache.Cache

	store  DecompositionStore
	maxAge time.Duration
}

// NewCachedDecomposer caches next's answers for ttl. source names the
// backend in the store so different backends never mix.
func NewCachedDecomposer(next Decomposer, source string, ttl time.Duration) *CachedDecomposer {
	return &CachedDecomposer{
		next:   next,
		source: source,
		mem:    cache.New(ttl, 2*ttl),
	}
}

// WithStore adds a persistent layer; rows older than maxAge (if > 0) are
// refetched.
func (c *CachedDecomposer) WithStore(s DecompositionStore, maxAge time.Duration) *CachedDecomposer {
	c.store, c.maxAge = s, maxAge
	return c
}

// Decompose implements Decomposer.
func (c *CachedDecomposer) Decompose(ctx context.Context, word string) ([]model.Segment, error) {
	if v, ok := c.mem.Get(word); ok {
		return clone(v.([]model.Segment)), nil
	}
	if c.store != nil {
		if segs, err := c.store.Find(ctx, word, c.source, c.maxAge); err == nil {
			c.mem.Set(word, segs, cache.DefaultExpiration)
			return clone(segs), nil
		}
	}

	segs, err := c.next.Decompose(ctx, word)
	if err != nil {
		return nil, err
	}
	c.mem.Set(word, clone(segs), cache.DefaultExpiration)
	if c.store != nil {
		if err := c.store.Upsert(ctx, word, c.source, segs); err != nil {
			log.Printf("wordform: cache store %q: %v", word, err)
		}
	}
	return segs, nil
}

// Len is the number of words held in memory.
func (c *CachedDecomposer) Len() int { return c.mem.ItemCount() }

func clone(segs []model.Segment) []model.Segment {
	out := make([]model.Segment, len(segs))
	copy(out, segs)
	return out
}
