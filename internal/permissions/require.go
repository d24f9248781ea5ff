package permissions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/admin-console/internal/client"
	"github.com/JaimeStill/admin-console/pkg/handlers"
	"github.com/JaimeStill/admin-console/pkg/navigation"
)

// ErrNoIdentity is returned when the source cannot name the token's owner.
var ErrNoIdentity = errors.New("caller identity unavailable")

// Identifier names the user a token belongs to.
type Identifier interface {
	Identity(ctx context.Context, token string) (string, error)
}

// InfoFetcher loads the profile for the token carried by ctx.
type InfoFetcher interface {
	UserInfo(ctx context.Context) (*client.UserInfo, error)
}

// Principal is the authenticated caller of a request.
type Principal struct {
	Token string
	Names navigation.NameSet
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the caller stored by Require.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// Token reads the token header first, then the dashboard cookie.
func Token(r *http.Request, header, cookie string) string {
	if t := r.Header.Get(header); t != "" {
		return t
	}
	if c, err := r.Cookie(cookie); err == nil {
		return c.Value
	}
	return ""
}

// MapHTTPStatus maps authentication failures to 401 and upstream failures
// to 502.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated), client.IsUnauthorized(err):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNoIdentity):
		return http.StatusForbidden
	}
	return http.StatusBadGateway
}

// Require rejects requests whose token the source does not accept and
// stores the caller as a Principal on the request context.
func Require(src Source, header, cookie string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := Token(r, header, cookie)

			names, err := src.Permissions(r.Context(), token)
			if err != nil {
				handlers.RespondError(w, logger, MapHTTPStatus(err), err)
				return
			}

			ctx := WithPrincipal(r.Context(), Principal{Token: token, Names: names})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Owner returns a resolver that names the caller of the request in ctx.
func Owner(src Source) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		p, ok := PrincipalFrom(ctx)
		if !ok {
			return "", ErrUnauthenticated
		}
		id, ok := src.(Identifier)
		if !ok {
			return "", ErrNoIdentity
		}
		return id.Identity(ctx, p.Token)
	}
}

// Identity returns the display name of the token's owner when the fetcher
// can load profiles.
func (u *Upstream) Identity(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}
	f, ok := u.fetcher.(InfoFetcher)
	if !ok {
		return "", ErrNoIdentity
	}

	info, err := f.UserInfo(client.WithToken(ctx, token))
	if err != nil {
		if client.IsUnauthorized(err) {
			return "", fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		}
		return "", fmt.Errorf("load identity: %w", err)
	}
	if name := info.DisplayName(); name != "" {
		return name, nil
	}
	return "", ErrNoIdentity
}

// Identity treats the token as the user name. Static permissions are meant
// for development, where tokens are issued by hand.
func (s *Static) Identity(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}
	return token, nil
}
