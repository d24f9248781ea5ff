// Package handlers provides HTTP response utilities for JSON APIs.
// Every body is wrapped in the dashboard envelope {code, msg, data} so the
// browser client and internal/client decode one shape.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/admin-console/pkg/pagination"
)

// CodeOK is the envelope code of a successful response.
const CodeOK = 200

// Envelope is the response body shared by every endpoint. Total, Page and
// PageSize are only set for paginated listings.
type Envelope struct {
	Code     int    `json:"code"`
	Msg      string `json:"msg"`
	Data     any    `json:"data,omitempty"`
	Total    *int   `json:"total,omitempty"`
	Page     *int   `json:"page,omitempty"`
	PageSize *int   `json:"page_size,omitempty"`
}

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondSuccess writes a 200 envelope carrying data. An empty msg becomes "OK".
func RespondSuccess(w http.ResponseWriter, data any, msg string) {
	if msg == "" {
		msg = "OK"
	}
	RespondJSON(w, http.StatusOK, Envelope{Code: CodeOK, Msg: msg, Data: data})
}

// RespondPage writes a 200 envelope for a page of results.
func RespondPage[T any](w http.ResponseWriter, result *pagination.PageResult[T]) {
	RespondJSON(w, http.StatusOK, Envelope{
		Code:     CodeOK,
		Msg:      "OK",
		Data:     result.Data,
		Total:    &result.Total,
		Page:     &result.Page,
		PageSize: &result.PageSize,
	})
}

// RespondError logs the error and writes an envelope whose code mirrors the
// HTTP status.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	RespondJSON(w, status, Envelope{Code: status, Msg: err.Error()})
}
