package handlers

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/eidsvold/fpl-motw/internal/providers"
	"github.com/eidsvold/fpl-motw/internal/report"
)

// Handler wires HTTP routes to the report service.
type Handler struct {
	svc      *report.Service
	logger   *slog.Logger
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(svc *report.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// reportRequest is the decoded and validated download request.
type reportRequest struct {
	LeagueID int `validate:"required,gt=0"`
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeDetail(w, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Report serves the manager-of-the-week CSV for one league. The league id
// arrives as the path segment after /report/ or, for the query form, as
// ?league=.
func (h *Handler) Report(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}

	req, err := h.decodeRequest(r)
	if err != nil {
		writeDetail(w, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	file, err := h.svc.GenerateReport(r.Context(), req.LeagueID)
	if err != nil {
		status, detail := mapError(err)
		writeDetail(w, status, detail, h.logger)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")
	w.WriteHeader(nethttp.StatusOK)
	if _, err := w.Write(file.Data); err != nil && h.logger != nil {
		h.logger.Error("failed to write report body", "err", err)
	}
}

func (h *Handler) decodeRequest(r *nethttp.Request) (reportRequest, error) {
	raw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/report"), "/")
	if raw == "" {
		raw = r.URL.Query().Get("league")
	}
	if raw == "" {
		return reportRequest{}, errors.New("missing league id")
	}

	leagueID, err := strconv.Atoi(raw)
	if err != nil {
		return reportRequest{}, errors.Newf("league id %q is not an integer", raw)
	}

	req := reportRequest{LeagueID: leagueID}
	if err := h.validate.Struct(req); err != nil {
		return reportRequest{}, errors.Newf("league id must be a positive integer, got %d", leagueID)
	}
	return req, nil
}

// mapError translates pipeline failure kinds to response statuses. Detail
// messages are our own; provider error bodies never reach the client.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, report.ErrInvalidInput):
		return nethttp.StatusBadRequest, "league id must be a positive integer"
	case errors.Is(err, providers.ErrNotFound):
		return nethttp.StatusNotFound, "league not found"
	case errors.Is(err, report.ErrTimeout):
		return nethttp.StatusGatewayTimeout, "report generation timed out"
	case errors.Is(err, providers.ErrProviderDataInvalid):
		return nethttp.StatusBadGateway, "upstream returned invalid league data"
	case errors.Is(err, providers.ErrProviderUnavailable):
		return nethttp.StatusBadGateway, "upstream provider unavailable"
	default:
		return nethttp.StatusInternalServerError, "internal error"
	}
}
