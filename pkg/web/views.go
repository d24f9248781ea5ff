// Package web provides infrastructure for serving server-rendered pages with
// Go templates. Layouts are parsed at startup; views are parsed on demand so
// each page pays its parse cost on first navigation only.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

// PageData is passed to every layout. BasePath enables portable URLs in
// templates via {{ .BasePath }}.
type PageData struct {
	Title    string
	BasePath string
	Path     string
	Menu     any
	User     any
	Data     any
	Error    string
}

// TemplateSet holds the parsed layouts and the source of view templates.
type TemplateSet struct {
	layouts  *template.Template
	views    fs.FS
	basePath string
}

// NewTemplateSet parses every layout matching layoutGlob and keeps viewDir
// within viewFS for ParseView.
func NewTemplateSet(layoutFS fs.FS, layoutGlob string, viewFS fs.FS, viewDir, basePath string, funcs template.FuncMap) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(funcs).ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	views, err := fs.Sub(viewFS, viewDir)
	if err != nil {
		return nil, fmt.Errorf("view directory %s: %w", viewDir, err)
	}

	return &TemplateSet{
		layouts:  layouts,
		views:    views,
		basePath: basePath,
	}, nil
}

func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// ParseView clones the layouts and parses the named view into the clone.
func (ts *TemplateSet) ParseView(name string) (*template.Template, error) {
	t, err := ts.layouts.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone layouts for %s: %w", name, err)
	}
	if _, err := t.ParseFS(ts.views, name); err != nil {
		return nil, fmt.Errorf("parse view %s: %w", name, err)
	}
	return t, nil
}

// Page is a parsed view bound to the layout it renders through.
type Page struct {
	Layout   string
	Template *template.Template
}

// Render executes the page layout with data.
func (p *Page) Render(w io.Writer, data any) error {
	return p.Template.ExecuteTemplate(w, p.Layout, data)
}

// RenderHTML writes status and the rendered page as text/html. The page is
// rendered to memory first so template errors still produce a clean 500.
func RenderHTML(w http.ResponseWriter, status int, page interface{ Render(io.Writer, any) error }, data any) error {
	var buf bytes.Buffer
	if err := page.Render(&buf, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}
