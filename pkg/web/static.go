package web

import (
	"bytes"
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/JaimeStill/admin-console/pkg/routes"
)

// PublicFile serves a single file from dir within fsys.
func PublicFile(fsys fs.FS, dir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	}
}

// PublicFileRoutes returns one GET route per named file at the module root.
func PublicFileRoutes(fsys fs.FS, dir string, names ...string) []routes.Route {
	out := make([]routes.Route, len(names))
	for i, name := range names {
		out[i] = routes.Route{
			Method:  "GET",
			Pattern: "/" + name,
			Handler: PublicFile(fsys, dir, name),
		}
	}
	return out
}
