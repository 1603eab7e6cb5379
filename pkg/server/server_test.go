package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clientlens/reportgen/pkg/models/api"
	"github.com/clientlens/reportgen/pkg/models/domain"
	"github.com/clientlens/reportgen/pkg/services/registry"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) Generate(ctx context.Context, req domain.ReportRequest) domain.ReportResult {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.ReportResult)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	mockService := new(mockReportService)
	mockService.On("Generate", mock.Anything, mock.MatchedBy(func(req domain.ReportRequest) bool {
		return req.ClientName == "example.com" && req.Variant == domain.VariantExecutive
	})).Return(domain.ReportResult{
		ID:       "r-1",
		Success:  true,
		Document: []byte("%PDF-1.4 stub"),
	})

	webAPI := NewWebAPI(logger, Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Reports: mockService,
			Catalog: registry.NewPredefined(),
		},
	})
	testServer := httptest.NewServer(webAPI.Router())
	defer testServer.Close()

	t.Run("GenerateReport", func(t *testing.T) {
		body, err := json.Marshal(api.ReportRequest{
			Variant:    "executive",
			ClientName: "example.com",
			DateRange:  api.DateRange{Start: "2025-07-01", End: "2025-07-31"},
			Branding:   api.Branding{CompanyName: "Acme Digital"},
		})
		require.NoError(t, err)

		resp, err := http.Post(testServer.URL+"/api/v1/reports", "application/json", bytes.NewReader(body))
		require.NoError(t, err, "Failed to send request")
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Equal(t, "r-1", resp.Header.Get("X-Report-Id"))

		doc, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.NotEmpty(t, doc)

		mockService.AssertExpectations(t)
	})

	t.Run("ListMetrics", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/metrics")
		require.NoError(t, err, "Failed to send request")
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var metrics []api.Metric
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&metrics))
		assert.NotEmpty(t, metrics)
	})
}
