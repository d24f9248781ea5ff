package navigation_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/admin-console/pkg/navigation"
)

type textView string

func (v textView) Render(w io.Writer, data any) error {
	_, err := io.WriteString(w, string(v))
	return err
}

func TestComponent_LoadMemoizes(t *testing.T) {
	var calls atomic.Int32
	c := navigation.NewComponent("business/duty_staff", func(ctx context.Context) (navigation.View, error) {
		calls.Add(1)
		return textView("duty staff"), nil
	})

	if c.Path() != "/business/duty_staff" {
		t.Errorf("Path() = %q, want /business/duty_staff", c.Path())
	}
	if c.Loaded() {
		t.Error("Loaded() = true before first load")
	}

	for range 3 {
		v, err := c.Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if v.(textView) != "duty staff" {
			t.Errorf("view = %v", v)
		}
	}

	if calls.Load() != 1 {
		t.Errorf("loader calls = %d, want 1", calls.Load())
	}
	if !c.Loaded() {
		t.Error("Loaded() = false after load")
	}
}

func TestComponent_ConcurrentFirstLoadRunsOnce(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	c := navigation.NewComponent("/slow", func(ctx context.Context) (navigation.View, error) {
		calls.Add(1)
		<-release
		return textView("slow"), nil
	})

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Load(context.Background()); err != nil {
				t.Errorf("Load() error = %v", err)
			}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls.Load() != 1 {
		t.Errorf("loader calls = %d, want 1", calls.Load())
	}
}

func TestComponent_FailureNotMemoized(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("template missing")
	c := navigation.NewComponent("/flaky", func(ctx context.Context) (navigation.View, error) {
		if calls.Add(1) == 1 {
			return nil, boom
		}
		return textView("ok"), nil
	})

	if _, err := c.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("first Load() error = %v, want %v", err, boom)
	}
	if c.Loaded() {
		t.Error("failed load should not be memoized")
	}
	if _, err := c.Load(context.Background()); err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("loader calls = %d, want 2", calls.Load())
	}
}

func TestComponent_CanceledCallerDoesNotPoisonLoad(t *testing.T) {
	release := make(chan struct{})
	c := navigation.NewComponent("/page", func(ctx context.Context) (navigation.View, error) {
		<-release
		return textView("page"), ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.Load(ctx)
		done <- err
	}()

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled Load() error = %v, want %v", err, context.Canceled)
	}

	close(release)
	if _, err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load() after cancel error = %v", err)
	}
}

func TestComponent_MarshalJSON(t *testing.T) {
	r := navigation.Route{
		Name:      "duty_staff_data",
		Component: navigation.NewComponent("/business/duty_staff", nil),
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out["component"] != "/business/duty_staff" {
		t.Errorf("component = %v, want /business/duty_staff", out["component"])
	}
}
