package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientlens/reportgen/pkg/models/domain"
)

func TestBounceRateBands(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		tone     domain.Tone
		contains string
	}{
		{name: "excellent", rate: 15, tone: domain.TonePositive, contains: "excellent"},
		{name: "good", rate: 35, tone: domain.TonePositive, contains: "good"},
		{name: "average warns", rate: 55, tone: domain.ToneWarning, contains: "average"},
		{name: "high is negative", rate: 75, tone: domain.ToneNegative, contains: "high"},
		{name: "fraction convention", rate: 0.55, tone: domain.ToneWarning, contains: "55.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bounceRateInsight(tt.rate)
			assert.Equal(t, tt.tone, got.Tone)
			assert.Contains(t, got.Body, tt.contains)
		})
	}
}

func TestCTRBands(t *testing.T) {
	high := ctrInsight(4.2)
	assert.Equal(t, domain.TonePositive, high.Tone)

	low := ctrInsight(1.8)
	assert.Equal(t, domain.ToneNeutral, low.Tone)
	assert.Contains(t, low.Body, "titles")
}

func TestSynthesizeCoversSuppliedSources(t *testing.T) {
	bundle := domain.DataBundle{
		Traffic: &domain.TrafficData{BounceRate: 42},
		Search:  &domain.SearchData{AvgCTR: 3.5},
	}

	insights := Synthesize(bundle)

	require.Len(t, insights, 2)
	assert.Equal(t, "Engagement", insights[0].Title)
	assert.Equal(t, "Search Visibility", insights[1].Title)
}

func TestSynthesizeEmptyBundle(t *testing.T) {
	assert.Empty(t, Synthesize(domain.DataBundle{}))
}

func TestPerformanceScoreBands(t *testing.T) {
	assert.Equal(t, domain.TonePositive, performanceInsight(95).Tone)
	assert.Equal(t, domain.ToneWarning, performanceInsight(60).Tone)
	assert.Equal(t, domain.ToneNegative, performanceInsight(30).Tone)
}
