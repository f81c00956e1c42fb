package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type testJob struct {
	id      int
	counter *int64
}

type testResult struct {
	id  int
	err error
}

func (r testResult) GetError() error { return r.err }

func (j testJob) Execute(ctx context.Context) Result {
	atomic.AddInt64(j.counter, 1)
	return testResult{id: j.id}
}

func TestPool_RunsAllJobs(t *testing.T) {
	pool := NewPool(4)
	pool.Start()

	var counter int64
	for i := 0; i < 20; i++ {
		pool.Submit(testJob{id: i, counter: &counter})
	}

	results := pool.Wait()
	if len(results) != 20 {
		t.Errorf("Expected 20 results, got %d", len(results))
	}
	if atomic.LoadInt64(&counter) != 20 {
		t.Errorf("Expected 20 executions, got %d", counter)
	}
}

func TestPool_ZeroWorkersClamped(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	var counter int64
	pool.Submit(testJob{counter: &counter})

	results := pool.Wait()
	if len(results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(results))
	}
}

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow("openai") {
		t.Error("First call should be allowed")
	}
	if !l.Allow("openai") {
		t.Error("Second call within burst should be allowed")
	}
	if l.Allow("openai") {
		t.Error("Third call should exceed burst")
	}

	// Other providers have independent budgets
	if !l.Allow("ollama") {
		t.Error("Different provider should have its own budget")
	}
}

func TestLimiter_Wait(t *testing.T) {
	l := NewLimiter(100, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		if err := l.Wait(ctx, "openai"); err != nil {
			t.Fatalf("Wait failed: %v", err)
		}
	}
}

func TestLimiter_SetProviderRate(t *testing.T) {
	l := NewLimiter(1, 1)
	l.SetProviderRate("ollama", 1000, 10)

	allowed := 0
	for i := 0; i < 10; i++ {
		if l.Allow("ollama") {
			allowed++
		}
	}
	if allowed != 10 {
		t.Errorf("Expected 10 allowed calls after custom rate, got %d", allowed)
	}
}
