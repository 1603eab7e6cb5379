package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clientlens/reportgen/pkg/models/domain"
)

func TestColumns(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected int
	}{
		{name: "zero metrics", count: 0, expected: 2},
		{name: "one metric", count: 1, expected: 2},
		{name: "two metrics", count: 2, expected: 2},
		{name: "three metrics", count: 3, expected: 3},
		{name: "four metrics pair up", count: 4, expected: 2},
		{name: "five metrics", count: 5, expected: 3},
		{name: "nine metrics", count: 9, expected: 3},
		{name: "ten metrics", count: 10, expected: 4},
		{name: "many metrics", count: 25, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Columns(tt.count))
		})
	}
}

func TestColumnsDipAtFour(t *testing.T) {
	// the drop from 3 columns at n=3 to 2 at n=4 is intentional
	assert.Equal(t, 3, Columns(3))
	assert.Equal(t, 2, Columns(4))
	assert.Equal(t, 3, Columns(5))
}

func TestPlanContentPages(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected int
	}{
		{name: "empty selection still plans one page", count: 0, expected: 1},
		{name: "one page exactly full", count: 8, expected: 1},
		{name: "nine metrics spill to a second page", count: 9, expected: 2},
		{name: "seventeen metrics need three pages", count: 17, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Plan(tt.count, domain.VariantStandard, 0, 0)
			assert.Equal(t, tt.expected, plan.ContentPages)
		})
	}
}

func TestPlanTotalNeverBelowVariantMinimum(t *testing.T) {
	for _, variant := range []domain.Variant{
		domain.VariantExecutive,
		domain.VariantStandard,
		domain.VariantCustom,
	} {
		minimum := 4
		if variant == domain.VariantStandard {
			minimum = 5
		}
		for n := 0; n <= 40; n++ {
			plan := Plan(n, variant, 0, 0)
			assert.GreaterOrEqual(t, plan.TotalPages, minimum,
				"variant %s with %d metrics", variant, n)
		}
	}
}

func TestPlanComplexMetricsAddDedicatedPages(t *testing.T) {
	base := Plan(9, domain.VariantStandard, 0, 0)
	withTables := Plan(9, domain.VariantStandard, 3, 0)

	assert.Equal(t, base.TotalPages+3, withTables.TotalPages)
	assert.Equal(t, 3, withTables.ComplexPages)
}

func TestPlanDetailPagesCountTowardTotal(t *testing.T) {
	base := Plan(9, domain.VariantStandard, 0, 0)
	withDetail := Plan(9, domain.VariantStandard, 0, 1)

	assert.Equal(t, base.TotalPages+1, withDetail.TotalPages)
}

func TestPlanNineMetricRoundTrip(t *testing.T) {
	plan := Plan(9, domain.VariantCustom, 0, 0)

	assert.Equal(t, 3, plan.ColumnsPerPage)
	assert.Equal(t, 2, plan.ContentPages)
	assert.Equal(t, 8, plan.MetricsPerPage)
}
