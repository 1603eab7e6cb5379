package layout

import "github.com/clientlens/reportgen/pkg/models/domain"

// MetricsPerPage is the card capacity of one metric-grid page
const MetricsPerPage = 8

// Plan computes the page plan for a report deterministically from the
// simple-metric count, the variant, the complex-metric count and the
// number of detail pages the assembler will add (the page-speed
// section, placeholder included). The plan is the single source of
// truth for page numbering; no template carries its own total.
func Plan(simpleCount int, variant domain.Variant, complexCount, detailCount int) domain.PagePlan {
	content := (simpleCount + MetricsPerPage - 1) / MetricsPerPage
	if content < 1 {
		// an empty selection still produces a complete document
		content = 1
	}

	total := content + surroundingPages(variant) + complexCount + detailCount
	if minimum := minimumPages(variant); total < minimum {
		total = minimum
	}

	return domain.PagePlan{
		TotalPages:     total,
		ContentPages:   content,
		ComplexPages:   complexCount,
		ColumnsPerPage: Columns(simpleCount),
		MetricsPerPage: MetricsPerPage,
	}
}

// Columns maps a metric count to a grid column count. The dip at
// exactly four metrics is intentional: two paired rows read better
// than a single 4-across row.
func Columns(simpleCount int) int {
	switch {
	case simpleCount <= 2:
		return 2
	case simpleCount == 3:
		return 3
	case simpleCount == 4:
		return 2
	case simpleCount <= 9:
		return 3
	default:
		return 4
	}
}

// surroundingPages counts the fixed pages that exist regardless of
// metric count: cover, overview, recommendations and contact for the
// standard variant; the executive and custom variants fold the
// overview into the summary grid.
func surroundingPages(variant domain.Variant) int {
	if variant == domain.VariantStandard {
		return 4
	}
	return 3
}

func minimumPages(variant domain.Variant) int {
	if variant == domain.VariantStandard {
		return 5
	}
	return 4
}
