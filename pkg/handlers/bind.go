package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JaimeStill/admin-console/pkg/validation"
)

// Bind decodes a JSON body of at most maxBytes into dst and validates it.
// A maxBytes of zero disables the limit.
func Bind(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	body := r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}

	return validation.Struct(dst)
}
