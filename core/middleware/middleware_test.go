package middleware

import (
	"runtime"
	"testing"
	"time"
)

func TestMiddlewareCloseStopsCleanup(t *testing.T) {
	before := runtime.NumGoroutine()

	mw := NewMiddleware(nil, 10, 20)
	mw.Close()
	mw.Close() // second call must be a no-op

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= before {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("cleanup goroutine still running: %d goroutines, started with %d",
		runtime.NumGoroutine(), before)
}

func TestRateLimiterEvictsIdleEntries(t *testing.T) {
	mw := NewMiddleware(nil, 10, 20)
	defer mw.Close()

	mw.getOrCreateLimiter("10.0.0.1")
	mw.getOrCreateLimiter("10.0.0.2")

	mw.limiterMu.Lock()
	mw.limiters["10.0.0.1"].lastAccess = time.Now().Add(-time.Hour)
	mw.limiterMu.Unlock()

	mw.evictIdle()

	mw.limiterMu.Lock()
	defer mw.limiterMu.Unlock()
	if _, ok := mw.limiters["10.0.0.1"]; ok {
		t.Error("idle limiter was not evicted")
	}
	if _, ok := mw.limiters["10.0.0.2"]; !ok {
		t.Error("active limiter was evicted")
	}
}
