package client

import (
	"context"
	"net/http"
	"net/url"
)

// Resource addresses an upstream collection that follows the list, get,
// create, update and delete URL convention under base.
type Resource struct {
	client *Client
	base   string
}

// Resource returns the collection helpers for base, e.g. "/duty_staff".
func (c *Client) Resource(base string) *Resource {
	return &Resource{client: c, base: base}
}

func (r *Resource) List(ctx context.Context, params any) (*Response, error) {
	return r.client.Do(ctx, Endpoint{Method: http.MethodGet, Path: r.base + "/list"}, params)
}

func (r *Resource) Get(ctx context.Context, id string) (*Response, error) {
	return r.client.Do(ctx, Endpoint{Method: http.MethodGet, Path: r.base + "/get"}, url.Values{"id": {id}})
}

func (r *Resource) Create(ctx context.Context, body any) (*Response, error) {
	return r.client.Do(ctx, Endpoint{Method: http.MethodPost, Path: r.base + "/create"}, body)
}

func (r *Resource) Update(ctx context.Context, body any) (*Response, error) {
	return r.client.Do(ctx, Endpoint{Method: http.MethodPost, Path: r.base + "/update"}, body)
}

func (r *Resource) Delete(ctx context.Context, id string) (*Response, error) {
	return r.client.Do(ctx, Endpoint{Method: http.MethodDelete, Path: r.base + "/delete"}, url.Values{"id": {id}})
}
