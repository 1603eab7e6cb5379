package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientlens/reportgen/pkg/models/domain"
	"github.com/clientlens/reportgen/pkg/services/registry"
)

func trafficBundle(t domain.TrafficData) domain.DataBundle {
	return domain.DataBundle{Traffic: &t}
}

func TestResolveZeroIsNotMissing(t *testing.T) {
	r := NewResolver(registry.NewPredefined())

	resolved := r.Resolve(context.Background(), []string{"users"},
		trafficBundle(domain.TrafficData{Users: 0}), nil)

	require.Len(t, resolved, 1)
	assert.Equal(t, "0", resolved[0].Formatted)
	assert.False(t, resolved[0].Missing)
}

func TestResolveAbsentSourceYieldsSentinel(t *testing.T) {
	r := NewResolver(registry.NewPredefined())

	// search data never supplied
	resolved := r.Resolve(context.Background(), []string{"totalClicks"},
		trafficBundle(domain.TrafficData{Sessions: 100}), nil)

	require.Len(t, resolved, 1)
	assert.Equal(t, "N/A", resolved[0].Formatted)
	assert.True(t, resolved[0].Missing)
}

func TestResolveUnknownIDSkippedNotFatal(t *testing.T) {
	r := NewResolver(registry.NewPredefined())

	resolved := r.Resolve(context.Background(),
		[]string{"users", "noSuchMetric", "sessions"},
		trafficBundle(domain.TrafficData{Users: 10, Sessions: 20}), nil)

	require.Len(t, resolved, 2)
	assert.Equal(t, "users", resolved[0].Descriptor.ID)
	assert.Equal(t, "sessions", resolved[1].Descriptor.ID)
}

func TestResolveFormatsByUnitKind(t *testing.T) {
	r := NewResolver(registry.NewPredefined())
	bundle := trafficBundle(domain.TrafficData{
		Sessions:           1272,
		BounceRate:         55.6,
		AvgSessionDuration: 185,
		PagesPerSession:    2.47,
	})

	tests := []struct {
		id       string
		expected string
	}{
		{id: "sessions", expected: "1272"},
		{id: "bounceRate", expected: "55.6%"},
		{id: "avgSessionDuration", expected: "3:05"},
		{id: "pagesPerSession", expected: "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			resolved := r.Resolve(context.Background(), []string{tt.id}, bundle, nil)
			require.Len(t, resolved, 1)
			assert.Equal(t, tt.expected, resolved[0].Formatted)
		})
	}
}

func TestResolveBounceRateFractionConvention(t *testing.T) {
	r := NewResolver(registry.NewPredefined())

	resolved := r.Resolve(context.Background(), []string{"bounceRate"},
		trafficBundle(domain.TrafficData{BounceRate: 0.556}), nil)

	require.Len(t, resolved, 1)
	assert.Equal(t, "55.6%", resolved[0].Formatted)
}

func TestResolveStructuredMetricIsComplex(t *testing.T) {
	r := NewResolver(registry.NewPredefined())

	resolved := r.Resolve(context.Background(), []string{"deviceBreakdown"},
		trafficBundle(domain.TrafficData{
			DeviceBreakdown: map[string]float64{"desktop": 707, "mobile": 561, "tablet": 4},
		}), nil)

	require.Len(t, resolved, 1)
	assert.True(t, resolved[0].Complex)
	require.Len(t, resolved[0].Entries, 3)
	// ordered by session count, largest first
	assert.Equal(t, "desktop", resolved[0].Entries[0].Label)
	assert.Equal(t, "tablet", resolved[0].Entries[2].Label)
}

func TestResolveCustomMetric(t *testing.T) {
	r := NewResolver(registry.NewPredefined())
	custom := []domain.MetricDescriptor{
		registry.CustomDescriptor("newsletterSignups", "Newsletter Signups", domain.UnitCount, "newsletter_signups"),
	}

	bundle := trafficBundle(domain.TrafficData{
		Custom: map[string]float64{"newsletter_signups": 318},
	})

	resolved := r.Resolve(context.Background(), []string{"newsletterSignups"}, bundle, custom)

	require.Len(t, resolved, 1)
	assert.Equal(t, "318", resolved[0].Formatted)
	assert.Equal(t, domain.SourceCustom, resolved[0].Descriptor.Source)
}

func TestResolvePredefinedShadowsCustom(t *testing.T) {
	r := NewResolver(registry.NewPredefined())

	// a custom descriptor reusing a reserved id must not replace it
	custom := []domain.MetricDescriptor{
		registry.CustomDescriptor("users", "Hijacked Users", domain.UnitCount, "whatever"),
	}

	resolved := r.Resolve(context.Background(), []string{"users"},
		trafficBundle(domain.TrafficData{Users: 42}), custom)

	require.Len(t, resolved, 1)
	assert.Equal(t, "Users", resolved[0].Descriptor.Label)
	assert.Equal(t, "42", resolved[0].Formatted)
}

func TestResolveCustomFallsBackToBundleMap(t *testing.T) {
	r := NewResolver(registry.NewPredefined())
	custom := []domain.MetricDescriptor{
		registry.CustomDescriptor("adSpend", "Ad Spend", domain.UnitDecimal, "ad_spend"),
	}

	bundle := domain.DataBundle{Custom: map[string]float64{"ad_spend": 1250.5}}

	resolved := r.Resolve(context.Background(), []string{"adSpend"}, bundle, custom)

	require.Len(t, resolved, 1)
	assert.Equal(t, "1250.5", resolved[0].Formatted)
}
