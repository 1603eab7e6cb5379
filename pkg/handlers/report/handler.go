package report

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/clientlens/reportgen/pkg/adapters"
	"github.com/clientlens/reportgen/pkg/models/api"
	"github.com/clientlens/reportgen/pkg/models/domain"
	reportsvc "github.com/clientlens/reportgen/pkg/services/report"
	"github.com/clientlens/reportgen/pkg/services/registry"
)

type Handler struct {
	service reportsvc.Service
	catalog registry.Registry
}

func NewHandler(service reportsvc.Service, catalog registry.Registry) *Handler {
	return &Handler{
		service: service,
		catalog: catalog,
	}
}

// GenerateReport accepts a report request and streams the rendered
// PDF back. Validation failures map to 400, render failures to 502;
// both carry the engine's structured error body.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var apiReq api.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
		writeError(w, http.StatusBadRequest, string(domain.ErrKindValidation), "invalid request body")
		return
	}

	req, err := adapters.MapReportRequestApiToDomain(apiReq)
	if err != nil {
		writeError(w, http.StatusBadRequest, string(domain.ErrKindValidation), err.Error())
		return
	}

	result := h.service.Generate(ctx, req)
	if !result.Success {
		status := http.StatusBadRequest
		if result.ErrorKind != domain.ErrKindValidation {
			status = http.StatusBadGateway
		}
		writeError(w, status, string(result.ErrorKind), result.Message)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Document)))
	w.Header().Set("X-Report-Id", result.ID)
	if _, err := w.Write(result.Document); err != nil {
		logger.Error().
			Err(err).
			Str("report_id", result.ID).
			Msg("failed to write report document")
	}
}

// ListMetrics returns the predefined metric catalog
func (h *Handler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	metrics := make([]api.Metric, 0)
	for _, id := range h.catalog.IDs() {
		d, ok := h.catalog.Lookup(id)
		if !ok {
			continue
		}
		metrics = append(metrics, adapters.MapMetricDescriptorDomainToApi(d))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(metrics); err != nil {
		logger.Error().Err(err).Msg("failed to encode metric catalog")
	}
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Success:   false,
		ErrorKind: kind,
		Message:   message,
	})
}
