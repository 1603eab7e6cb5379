package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clientlens/reportgen/pkg/models/domain"
	"github.com/clientlens/reportgen/pkg/services/assemble"
	"github.com/clientlens/reportgen/pkg/services/classify"
	"github.com/clientlens/reportgen/pkg/services/layout"
	"github.com/clientlens/reportgen/pkg/services/registry"
	"github.com/clientlens/reportgen/pkg/services/resolve"
)

const defaultRenderTimeout = 30 * time.Second

// Renderer is the external document-rendering boundary. It consumes
// the assembled page sequence and produces the final byte buffer.
type Renderer interface {
	Render(ctx context.Context, pages []domain.PageDescription, branding domain.Branding) ([]byte, error)
}

// Service runs the full composition pipeline for one report request:
// validate -> resolve -> classify -> plan -> assemble -> render.
// Requests are independent; the only shared state is the read-only
// predefined catalog.
type Service interface {
	Generate(ctx context.Context, req domain.ReportRequest) domain.ReportResult
}

// Config holds service tuning
type Config struct {
	RenderTimeout time.Duration
}

type service struct {
	resolver      resolve.Resolver
	renderer      Renderer
	renderTimeout time.Duration
}

// NewService creates a report service over the given predefined
// catalog and renderer
func NewService(catalog registry.Registry, renderer Renderer, cfg Config) Service {
	timeout := cfg.RenderTimeout
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}
	return &service{
		resolver:      resolve.NewResolver(catalog),
		renderer:      renderer,
		renderTimeout: timeout,
	}
}

func (s *service) Generate(ctx context.Context, req domain.ReportRequest) domain.ReportResult {
	logger := zerolog.Ctx(ctx)
	id := uuid.NewString()

	if err := validate(req); err != nil {
		return domain.ReportResult{
			ID:        id,
			ErrorKind: domain.ErrKindValidation,
			Message:   err.Error(),
		}
	}

	ids := req.SelectedMetricIDs
	if len(ids) == 0 {
		ids = defaultMetricIDs(req.Variant)
	}

	resolved := s.resolver.Resolve(ctx, ids, req.Data, req.CustomMetrics)
	set := classify.Build(resolved)
	plan := layout.Plan(len(set.Simple), req.Variant, len(set.Complex), assemble.PerformanceDetailPages(req))
	pages := assemble.Assemble(req, set, plan, assemble.Insights(req))

	logger.Info().
		Str("report_id", id).
		Str("variant", string(req.Variant)).
		Int("metrics", len(resolved)).
		Int("pages", len(pages)).
		Msg("report assembled")

	document, err := s.render(ctx, pages, req.Branding)
	if err != nil {
		kind := domain.ErrKindRenderFailure
		if errors.Is(err, context.DeadlineExceeded) {
			kind = domain.ErrKindRenderTimeout
		}
		logger.Error().Err(err).Str("report_id", id).Msg("render failed")
		return domain.ReportResult{
			ID:        id,
			ErrorKind: kind,
			Message:   fmt.Sprintf("render failed: %v", err),
			Plan:      plan,
		}
	}

	return domain.ReportResult{
		ID:       id,
		Success:  true,
		Document: document,
		Plan:     plan,
	}
}

// render invokes the external renderer under a deadline. The renderer
// is not retried; retry policy belongs to upstream collaborators.
func (s *service) render(ctx context.Context, pages []domain.PageDescription, branding domain.Branding) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.renderTimeout)
	defer cancel()

	type outcome struct {
		document []byte
		err      error
	}

	done := make(chan outcome, 1)
	go func() {
		document, err := s.renderer.Render(ctx, pages, branding)
		done <- outcome{document: document, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-done:
		return out.document, out.err
	}
}

func validate(req domain.ReportRequest) error {
	if req.ClientName == "" {
		return fmt.Errorf("client name is required")
	}
	if req.DateRange.Start.IsZero() || req.DateRange.End.IsZero() {
		return fmt.Errorf("date range is required")
	}
	if req.DateRange.End.Before(req.DateRange.Start) {
		return fmt.Errorf("date range end precedes start")
	}
	if req.Branding.CompanyName == "" {
		return fmt.Errorf("branding company name is required")
	}
	switch req.Variant {
	case domain.VariantExecutive, domain.VariantStandard:
	case domain.VariantCustom:
		if len(req.SelectedMetricIDs) == 0 {
			return fmt.Errorf("custom reports require at least one selected metric")
		}
	default:
		return fmt.Errorf("unknown report variant %q", req.Variant)
	}
	return nil
}

// defaultMetricIDs supplies the metric selection for variants that
// allow omitting one
func defaultMetricIDs(variant domain.Variant) []string {
	if variant == domain.VariantExecutive {
		return []string{
			"users", "sessions", "bounceRate",
			"conversions", "totalClicks", "avgCTR",
		}
	}
	return []string{
		"users", "newUsers", "sessions", "bounceRate",
		"avgSessionDuration", "pagesPerSession", "conversions", "organicTraffic",
		"totalClicks", "totalImpressions", "avgCTR", "avgPosition",
		"performanceScore", "firstContentfulPaint", "largestContentfulPaint",
		"deviceBreakdown", "topPages", "topQueries",
	}
}
