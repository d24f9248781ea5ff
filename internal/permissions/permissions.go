// Package permissions resolves the set of route names a token may see.
package permissions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/JaimeStill/admin-console/internal/client"
	"github.com/JaimeStill/admin-console/pkg/navigation"
)

// ErrUnauthenticated is returned for an empty token.
var ErrUnauthenticated = errors.New("unauthenticated")

// Source yields the permitted route names for a token.
type Source interface {
	Permissions(ctx context.Context, token string) (navigation.NameSet, error)
}

// MenuFetcher loads the menu tree for the token carried by ctx.
type MenuFetcher interface {
	UserMenu(ctx context.Context) ([]client.MenuEntry, error)
}

// Upstream reads permissions from the upstream user menu.
type Upstream struct {
	fetcher MenuFetcher
	logger  *slog.Logger
	group   singleflight.Group
}

func NewUpstream(fetcher MenuFetcher, logger *slog.Logger) *Upstream {
	return &Upstream{
		fetcher: fetcher,
		logger:  logger.With("system", "permissions"),
	}
}

// Permissions collects every name in the token's menu tree. Concurrent
// lookups for one token share a single upstream call.
func (u *Upstream) Permissions(ctx context.Context, token string) (navigation.NameSet, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	ch := u.group.DoChan(token, func() (any, error) {
		callCtx := client.WithToken(context.WithoutCancel(ctx), token)
		menu, err := u.fetcher.UserMenu(callCtx)
		if err != nil {
			return nil, err
		}
		set := navigation.NewNameSet()
		collect(set, menu)
		u.logger.Debug("permissions loaded", "count", set.Len())
		return set, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			if client.IsUnauthorized(res.Err) {
				return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, res.Err)
			}
			return nil, fmt.Errorf("load permissions: %w", res.Err)
		}
		return res.Val.(navigation.NameSet), nil
	}
}

func collect(set navigation.NameSet, entries []client.MenuEntry) {
	for _, e := range entries {
		if e.Name != "" {
			set.Add(e.Name)
		}
		collect(set, e.Children)
	}
}

// Static grants the same configured names to every authenticated token.
type Static struct {
	names []string
}

func NewStatic(names []string) *Static {
	return &Static{names: names}
}

func (s *Static) Permissions(ctx context.Context, token string) (navigation.NameSet, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	return navigation.NewNameSet(s.names...), nil
}
