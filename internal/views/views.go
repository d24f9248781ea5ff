// Package views declares the dashboard route table: the basic routes every
// deployment carries and the business modules registered on top of them.
// Each page is a lazily parsed template paired with an optional fetcher that
// loads its data through the upstream API.
package views

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/JaimeStill/admin-console/internal/client"
	"github.com/JaimeStill/admin-console/pkg/navigation"
	"github.com/JaimeStill/admin-console/pkg/web"
)

// Layout is the template every page renders through.
const Layout = "app.html"

// Caller invokes named upstream operations.
type Caller interface {
	Call(ctx context.Context, op string, input any) (*client.Response, error)
}

// Fetcher loads the data a page renders. q carries the request query.
type Fetcher func(ctx context.Context, c Caller, q url.Values) (any, error)

// Page is a loaded view. It satisfies navigation.View.
type Page struct {
	web.Page
	Title  string
	fetch  Fetcher
	caller Caller
}

// Fetch runs the page fetcher, if any.
func (p *Page) Fetch(ctx context.Context, q url.Values) (any, error) {
	if p.fetch == nil {
		return nil, nil
	}
	return p.fetch(ctx, p.caller, q)
}

// Catalog creates components bound to a template set and an upstream caller.
type Catalog struct {
	templates *web.TemplateSet
	caller    Caller
	logger    *slog.Logger
}

func NewCatalog(templates *web.TemplateSet, caller Caller, logger *slog.Logger) *Catalog {
	return &Catalog{
		templates: templates,
		caller:    caller,
		logger:    logger.With("system", "views"),
	}
}

// Component declares a page at path whose template is parsed on first load.
func (c *Catalog) Component(path, title, template string, fetch Fetcher) *navigation.Component {
	return navigation.NewComponent(path, func(ctx context.Context) (navigation.View, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if c.templates == nil {
			return nil, fmt.Errorf("no templates for %s", path)
		}
		t, err := c.templates.ParseView(template)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("view loaded", "component", path, "template", template)
		return &Page{
			Page:   web.Page{Layout: Layout, Template: t},
			Title:  title,
			fetch:  fetch,
			caller: c.caller,
		}, nil
	})
}

// Column is one rendered table column.
type Column struct {
	Key   string
	Title string
}

// Table is the data of a paged list page.
type Table struct {
	Columns  []Column
	Filters  []string
	Rows     []map[string]any
	Total    int
	Page     int
	PageSize int
	Query    url.Values
}

// PrevPage returns the previous page number, or 0 on the first page.
func (t *Table) PrevPage() int {
	if t.Page > 1 {
		return t.Page - 1
	}
	return 0
}

// NextPage returns the next page number, or 0 on the last page.
func (t *Table) NextPage() int {
	if t.Page*t.PageSize < t.Total {
		return t.Page + 1
	}
	return 0
}

// PageURL returns the query string for page n, keeping the active filters.
func (t *Table) PageURL(n int) string {
	q := url.Values{}
	for k, v := range t.Query {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(n))
	q.Set("page_size", strconv.Itoa(t.PageSize))
	return "?" + q.Encode()
}

const defaultPageSize = 10

// List fetches a paged table through op, forwarding page, page_size and the
// named filters from the request query.
func List(op string, filters []string, columns ...Column) Fetcher {
	return func(ctx context.Context, c Caller, q url.Values) (any, error) {
		return fetchTable(ctx, c, op, q, nil, filters, columns)
	}
}

// Owned is List restricted to the caller's records: internal_staff is fixed
// to the caller's display name.
func Owned(op string, filters []string, columns ...Column) Fetcher {
	return func(ctx context.Context, c Caller, q url.Values) (any, error) {
		info, err := userInfo(ctx, c)
		if err != nil {
			return nil, err
		}
		fixed := url.Values{"internal_staff": {info.DisplayName()}}
		return fetchTable(ctx, c, op, q, fixed, filters, columns)
	}
}

func fetchTable(ctx context.Context, c Caller, op string, q, fixed url.Values, filters []string, columns []Column) (*Table, error) {
	page := positive(q.Get("page"), 1)
	size := positive(q.Get("page_size"), defaultPageSize)

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(size))
	active := url.Values{}
	for _, f := range filters {
		if v := q.Get(f); v != "" {
			params.Set(f, v)
			active.Set(f, v)
		}
	}
	for k, v := range fixed {
		params[k] = v
	}

	resp, err := c.Call(ctx, op, params)
	if err != nil {
		return nil, err
	}

	rows := []map[string]any{}
	if err := resp.Decode(&rows); err != nil {
		return nil, err
	}

	t := &Table{
		Columns:  columns,
		Filters:  filters,
		Rows:     rows,
		Total:    len(rows),
		Page:     page,
		PageSize: size,
		Query:    active,
	}
	if resp.Total != nil {
		t.Total = *resp.Total
	}
	return t, nil
}

// Static returns data without calling upstream.
func Static(data any) Fetcher {
	return func(context.Context, Caller, url.Values) (any, error) {
		return data, nil
	}
}

// UserProfile fetches the caller's profile.
func UserProfile() Fetcher {
	return func(ctx context.Context, c Caller, _ url.Values) (any, error) {
		return userInfo(ctx, c)
	}
}

func userInfo(ctx context.Context, c Caller) (*client.UserInfo, error) {
	resp, err := c.Call(ctx, "getUserInfo", nil)
	if err != nil {
		return nil, err
	}
	var info client.UserInfo
	if err := resp.Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// LoginData carries the page to return to after signing in.
type LoginData struct {
	Redirect string
}

// LoginForm reads the return path from the request query.
func LoginForm() Fetcher {
	return func(_ context.Context, _ Caller, q url.Values) (any, error) {
		return &LoginData{Redirect: q.Get("redirect")}, nil
	}
}

// ErrorData is rendered by the error pages.
type ErrorData struct {
	Code    int
	Message string
}

func positive(s string, fallback int) int {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return fallback
}

// PageTitle returns the title shown in the browser tab.
func (p *Page) PageTitle() string {
	return p.Title
}
