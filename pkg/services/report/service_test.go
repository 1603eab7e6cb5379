package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientlens/reportgen/pkg/models/domain"
	"github.com/clientlens/reportgen/pkg/services/registry"
)

type stubRenderer struct {
	delay time.Duration
	err   error
	pages []domain.PageDescription
}

func (s *stubRenderer) Render(
	ctx context.Context,
	pages []domain.PageDescription,
	branding domain.Branding,
) ([]byte, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	s.pages = pages
	return []byte("%PDF-stub"), nil
}

func validRequest(variant domain.Variant) domain.ReportRequest {
	return domain.ReportRequest{
		Variant:    variant,
		ClientName: "example.com",
		DateRange: domain.DateRange{
			Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		},
		Branding: domain.Branding{CompanyName: "Acme Digital"},
		Data: domain.DataBundle{
			Traffic: &domain.TrafficData{Users: 1000, Sessions: 1272},
		},
	}
}

func newTestService(r Renderer, timeout time.Duration) Service {
	return NewService(registry.NewPredefined(), r, Config{RenderTimeout: timeout})
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.ReportRequest)
		message string
	}{
		{
			name:    "missing client name",
			mutate:  func(r *domain.ReportRequest) { r.ClientName = "" },
			message: "client name",
		},
		{
			name:    "missing date range",
			mutate:  func(r *domain.ReportRequest) { r.DateRange = domain.DateRange{} },
			message: "date range",
		},
		{
			name: "inverted date range",
			mutate: func(r *domain.ReportRequest) {
				r.DateRange.Start, r.DateRange.End = r.DateRange.End, r.DateRange.Start
			},
			message: "precedes",
		},
		{
			name:    "missing company name",
			mutate:  func(r *domain.ReportRequest) { r.Branding.CompanyName = "" },
			message: "company name",
		},
		{
			name: "custom variant needs a selection",
			mutate: func(r *domain.ReportRequest) {
				r.Variant = domain.VariantCustom
				r.SelectedMetricIDs = nil
			},
			message: "at least one selected metric",
		},
		{
			name:    "unknown variant",
			mutate:  func(r *domain.ReportRequest) { r.Variant = "quarterly" },
			message: "unknown report variant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := &stubRenderer{}
			svc := newTestService(renderer, 0)

			req := validRequest(domain.VariantStandard)
			tt.mutate(&req)

			result := svc.Generate(context.Background(), req)

			assert.False(t, result.Success)
			assert.Equal(t, domain.ErrKindValidation, result.ErrorKind)
			assert.Contains(t, result.Message, tt.message)
			assert.Nil(t, renderer.pages, "validation failures must abort before any work")
		})
	}
}

func TestGenerateSuccess(t *testing.T) {
	renderer := &stubRenderer{}
	svc := newTestService(renderer, 0)

	result := svc.Generate(context.Background(), validRequest(domain.VariantExecutive))

	require.True(t, result.Success)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, []byte("%PDF-stub"), result.Document)
	assert.NotEmpty(t, renderer.pages)
	assert.Equal(t, domain.PageCover, renderer.pages[0].Kind)
}

func TestGenerateNineMetricRoundTrip(t *testing.T) {
	renderer := &stubRenderer{}
	svc := newTestService(renderer, 0)

	req := validRequest(domain.VariantCustom)
	req.Data.Search = &domain.SearchData{TotalClicks: 500}
	req.SelectedMetricIDs = []string{
		"users", "sessions", "bounceRate", "conversions", "avgSessionDuration",
		"pagesPerSession", "newUsers", "organicTraffic", "totalClicks",
	}

	result := svc.Generate(context.Background(), req)

	require.True(t, result.Success)
	assert.Equal(t, 3, result.Plan.ColumnsPerPage)
	assert.Equal(t, 2, result.Plan.ContentPages)
}

func TestGenerateRenderTimeout(t *testing.T) {
	renderer := &stubRenderer{delay: 200 * time.Millisecond}
	svc := newTestService(renderer, 20*time.Millisecond)

	result := svc.Generate(context.Background(), validRequest(domain.VariantExecutive))

	assert.False(t, result.Success)
	assert.Equal(t, domain.ErrKindRenderTimeout, result.ErrorKind)
}

func TestGenerateRenderFailure(t *testing.T) {
	renderer := &stubRenderer{err: fmt.Errorf("font table corrupt")}
	svc := newTestService(renderer, 0)

	result := svc.Generate(context.Background(), validRequest(domain.VariantExecutive))

	assert.False(t, result.Success)
	assert.Equal(t, domain.ErrKindRenderFailure, result.ErrorKind)
	assert.Contains(t, result.Message, "font table corrupt")
}

func TestGenerateUnknownMetricIsRecoverable(t *testing.T) {
	renderer := &stubRenderer{}
	svc := newTestService(renderer, 0)

	req := validRequest(domain.VariantCustom)
	req.SelectedMetricIDs = []string{"users", "noSuchMetric"}

	result := svc.Generate(context.Background(), req)

	require.True(t, result.Success, "unknown ids are skipped, never fatal")
}

func TestGenerateDefaultSelectionPerVariant(t *testing.T) {
	renderer := &stubRenderer{}
	svc := newTestService(renderer, 0)

	req := validRequest(domain.VariantExecutive)
	req.SelectedMetricIDs = nil

	result := svc.Generate(context.Background(), req)

	require.True(t, result.Success)
	// executive default carries six metrics: grid stays at 3 columns
	assert.Equal(t, 3, result.Plan.ColumnsPerPage)
}
