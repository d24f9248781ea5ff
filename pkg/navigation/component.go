package navigation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/singleflight"
)

// View is a loaded page component.
type View interface {
	Render(w io.Writer, data any) error
}

// Loader produces a View. It runs at most once successfully per Component.
type Loader func(ctx context.Context) (View, error)

// Component is a lazily loaded view identified by its declared path, such
// as "/business/duty_staff". The loader runs on first use; concurrent
// first uses share one call. A failed load is retried on the next call.
type Component struct {
	path   string
	loader Loader

	mu    sync.RWMutex
	view  View
	group singleflight.Group
}

// NewComponent creates a Component for the declared path.
func NewComponent(path string, loader Loader) *Component {
	return &Component{
		path:   Normalize(path),
		loader: loader,
	}
}

// Path returns the declared component path.
func (c *Component) Path() string {
	return c.path
}

// Loaded reports whether the view has been loaded.
func (c *Component) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view != nil
}

// Load returns the memoized view, invoking the loader on first use.
func (c *Component) Load(ctx context.Context) (View, error) {
	c.mu.RLock()
	view := c.view
	c.mu.RUnlock()
	if view != nil {
		return view, nil
	}

	ch := c.group.DoChan(c.path, func() (any, error) {
		c.mu.RLock()
		if c.view != nil {
			defer c.mu.RUnlock()
			return c.view, nil
		}
		c.mu.RUnlock()

		v, err := c.loader(context.WithoutCancel(ctx))
		if err != nil {
			return nil, fmt.Errorf("load component %s: %w", c.path, err)
		}
		if v == nil {
			return nil, fmt.Errorf("load component %s: loader returned no view", c.path)
		}

		c.mu.Lock()
		c.view = v
		c.mu.Unlock()
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(View), nil
	}
}

func (c *Component) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.path)
}

func (c *Component) MarshalYAML() (any, error) {
	return c.path, nil
}

func (c *Component) String() string {
	return c.path
}
