package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/admin-console/pkg/lifecycle"
)

func TestNew(t *testing.T) {
	lc := lifecycle.New()

	if lc.Context() == nil {
		t.Fatal("Context() returned nil")
	}
	if lc.Ready() {
		t.Error("Ready() = true for new coordinator")
	}

	select {
	case <-lc.Context().Done():
		t.Error("context cancelled before Shutdown")
	default:
	}
}

func TestCoordinator_Startup(t *testing.T) {
	for _, hooks := range []int{0, 1, 4} {
		lc := lifecycle.New()

		var count atomic.Int32
		for range hooks {
			lc.OnStartup(func() {
				time.Sleep(5 * time.Millisecond)
				count.Add(1)
			})
		}

		var checker lifecycle.ReadinessChecker = lc
		lc.WaitForStartup()

		if got := int(count.Load()); got != hooks {
			t.Errorf("hooks run = %d, want %d", got, hooks)
		}
		if !checker.Ready() {
			t.Error("Ready() = false after WaitForStartup")
		}
	}
}

func TestCoordinator_Shutdown(t *testing.T) {
	lc := lifecycle.New()
	ctx := lc.Context()

	var count atomic.Int32
	for range 3 {
		lc.OnShutdown(func() {
			<-lc.Context().Done()
			count.Add(1)
		})
	}

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if count.Load() != 3 {
		t.Errorf("shutdown hooks run = %d, want 3", count.Load())
	}
	if ctx.Err() == nil {
		t.Error("context not cancelled after Shutdown")
	}
}

func TestCoordinator_Shutdown_Timeout(t *testing.T) {
	lc := lifecycle.New()
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(300 * time.Millisecond)
	})

	if err := lc.Shutdown(20 * time.Millisecond); err == nil {
		t.Error("Shutdown() should report timeout")
	}
}

func TestCoordinator_ConcurrentReady(t *testing.T) {
	lc := lifecycle.New()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 100 {
			_ = lc.Ready()
		}
	}()

	lc.WaitForStartup()
	<-done
}
