package content

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type variantKey struct {
	sampleID uuid.UUID
	kind     VariantKind
}

// VariantCache memoizes reformulations of a perfect copy, keyed by the
// exam sample identity and the variant kind. Concurrent requests for the
// same variant share one in-flight generation; failures are never cached,
// so the next request tries again.
type VariantCache struct {
	generate func(ctx context.Context, copy string, kind VariantKind) (string, error)

	mu      sync.Mutex
	done    map[variantKey]string
	pending map[variantKey]chan struct{}
}

// NewVariantCache creates a cache backed by the given generation function,
// typically (*Service).Reformulate.
func NewVariantCache(generate func(ctx context.Context, copy string, kind VariantKind) (string, error)) *VariantCache {
	return &VariantCache{
		generate: generate,
		done:     make(map[variantKey]string),
		pending:  make(map[variantKey]chan struct{}),
	}
}

// GetOrCreate returns the cached variant text, generating it on first use.
// VariantStandard short-circuits to the copy itself. If another goroutine
// is already generating the same variant, the call waits for that result
// instead of issuing a duplicate request.
func (c *VariantCache) GetOrCreate(ctx context.Context, sample ExamSample, kind VariantKind) (string, error) {
	if kind == VariantStandard {
		return sample.PerfectCopy, nil
	}
	key := variantKey{sampleID: sample.ID, kind: kind}

	for {
		c.mu.Lock()
		if text, ok := c.done[key]; ok {
			c.mu.Unlock()
			return text, nil
		}
		if wait, ok := c.pending[key]; ok {
			c.mu.Unlock()
			select {
			case <-wait:
				// Re-check: the flight either cached a result or failed.
				continue
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
		wait := make(chan struct{})
		c.pending[key] = wait
		c.mu.Unlock()

		text, err := c.generate(ctx, sample.PerfectCopy, kind)

		c.mu.Lock()
		delete(c.pending, key)
		if err == nil {
			c.done[key] = text
		}
		c.mu.Unlock()
		close(wait)

		return text, err
	}
}

// Peek returns the cached variant without generating. The standard variant
// is always available.
func (c *VariantCache) Peek(sample ExamSample, kind VariantKind) (string, bool) {
	if kind == VariantStandard {
		return sample.PerfectCopy, true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	text, ok := c.done[variantKey{sampleID: sample.ID, kind: kind}]
	return text, ok
}

// Invalidate drops the cached variants of one sample, e.g. after the
// student regenerates the exam exercise.
func (c *VariantCache) Invalidate(sampleID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.done {
		if key.sampleID == sampleID {
			delete(c.done, key)
		}
	}
}

// Clear drops everything, e.g. when a new sheet replaces the current one.
func (c *VariantCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.done = make(map[variantKey]string)
}
