package content

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
)

func testSample() ExamSample {
	return ExamSample{
		ID:          uuid.New(),
		Instruction: "Calculer BC.",
		PerfectCopy: "D'après le théorème de Pythagore...",
		Tips:        "Citer le théorème.",
	}
}

func TestVariantCacheStandardNeverGenerates(t *testing.T) {
	var calls int32
	cache := NewVariantCache(func(context.Context, string, VariantKind) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "", nil
	})

	sample := testSample()
	text, err := cache.GetOrCreate(t.Context(), sample, VariantStandard)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if text != sample.PerfectCopy {
		t.Errorf("standard variant = %q, want the copy", text)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("standard variant must not generate")
	}
}

func TestVariantCacheMemoizes(t *testing.T) {
	var calls int32
	cache := NewVariantCache(func(_ context.Context, copy string, kind VariantKind) (string, error) {
		atomic.AddInt32(&calls, 1)
		return fmt.Sprintf("%s: %s", kind, copy), nil
	})

	sample := testSample()
	first, err := cache.GetOrCreate(t.Context(), sample, VariantSimple)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := cache.GetOrCreate(t.Context(), sample, VariantSimple)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first != second {
		t.Errorf("cache returned different texts: %q vs %q", first, second)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("generate called %d times, want 1", got)
	}

	// A different kind generates separately.
	if _, err := cache.GetOrCreate(t.Context(), sample, VariantExpert); err != nil {
		t.Fatalf("expert: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("generate called %d times, want 2", got)
	}
}

func TestVariantCacheFailureIsNotCached(t *testing.T) {
	var calls int32
	boom := errors.New("boom")
	cache := NewVariantCache(func(context.Context, string, VariantKind) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "", boom
		}
		return "ok", nil
	})

	sample := testSample()
	if _, err := cache.GetOrCreate(t.Context(), sample, VariantExpert); !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	text, err := cache.GetOrCreate(t.Context(), sample, VariantExpert)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if text != "ok" {
		t.Errorf("retry text = %q, want ok", text)
	}
}

func TestVariantCacheSingleFlight(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	cache := NewVariantCache(func(context.Context, string, VariantKind) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "shared", nil
	})

	sample := testSample()
	const workers = 8
	results := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text, err := cache.GetOrCreate(context.Background(), sample, VariantSimple)
			if err != nil {
				t.Errorf("worker %d: %v", i, err)
				return
			}
			results[i] = text
		}(i)
	}

	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("generate called %d times, want 1", got)
	}
	for i, r := range results {
		if r != "shared" {
			t.Errorf("worker %d got %q", i, r)
		}
	}
}

func TestVariantCacheInvalidate(t *testing.T) {
	var calls int32
	cache := NewVariantCache(func(context.Context, string, VariantKind) (string, error) {
		return fmt.Sprintf("gen-%d", atomic.AddInt32(&calls, 1)), nil
	})

	old := testSample()
	if _, err := cache.GetOrCreate(t.Context(), old, VariantSimple); err != nil {
		t.Fatal(err)
	}

	cache.Invalidate(old.ID)
	if _, ok := cache.Peek(old, VariantSimple); ok {
		t.Error("invalidated variant should be gone")
	}

	// A fresh sample never sees the old sample's variants.
	fresh := testSample()
	if _, ok := cache.Peek(fresh, VariantSimple); ok {
		t.Error("fresh sample should start with no cached variants")
	}
}
