package http

import (
	nethttp "net/http"

	"github.com/eidsvold/fpl-motw/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/report", handler.Report)
	mux.HandleFunc("/report/", handler.Report)
	return mux
}
