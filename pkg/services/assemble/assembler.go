package assemble

import (
	"fmt"

	"github.com/clientlens/reportgen/pkg/models/domain"
	"github.com/clientlens/reportgen/pkg/services/classify"
	"github.com/clientlens/reportgen/pkg/services/insight"
	"github.com/clientlens/reportgen/pkg/services/resolve"
)

// Assemble orders the report's pages for one request:
//
//	Cover -> Overview -> per-source detail -> complex tables ->
//	performance detail -> Recommendations -> Contact
//
// A per-source page appears only when that source contributed at least
// one simple metric. The performance section is skipped entirely when
// its data is absent, except in the standard variant, which emits an
// explicit "data unavailable" placeholder instead.
func Assemble(
	req domain.ReportRequest,
	set domain.ResolvedMetricSet,
	plan domain.PagePlan,
	insights []domain.Insight,
) []domain.PageDescription {
	var pages []domain.PageDescription

	pages = append(pages, coverPage(req))

	if req.Variant == domain.VariantStandard {
		pages = append(pages, domain.PageDescription{
			Kind:      domain.PageNarrative,
			Title:     "Overview",
			Narrative: &domain.NarrativePage{Insights: insights},
		})
	}

	pages = append(pages, sourcePages(set, plan)...)

	for _, m := range set.Complex {
		pages = append(pages, tablePage(m))
	}

	if page, ok := performancePage(req, set); ok {
		pages = append(pages, page)
	}

	pages = append(pages, domain.PageDescription{
		Kind:      domain.PageNarrative,
		Title:     "Recommendations",
		Narrative: &domain.NarrativePage{Insights: recommendations(insights)},
	})

	pages = append(pages, domain.PageDescription{
		Kind:  domain.PageContact,
		Title: "Get in Touch",
		Contact: &domain.ContactPage{
			CompanyName: req.Branding.CompanyName,
			ContactInfo: req.Branding.ContactInfo,
		},
	})

	stamp(pages, plan)
	return pages
}

// Insights returns the narrative for a request: caller-supplied
// insights take precedence, otherwise they are synthesized from the
// data bundle.
func Insights(req domain.ReportRequest) []domain.Insight {
	if len(req.Insights) > 0 {
		return req.Insights
	}
	return insight.Synthesize(req.Data)
}

func coverPage(req domain.ReportRequest) domain.PageDescription {
	subtitle := "Analytics Report"
	switch req.Variant {
	case domain.VariantExecutive:
		subtitle = "Executive Summary"
	case domain.VariantCustom:
		subtitle = "Custom Analytics Report"
	}

	return domain.PageDescription{
		Kind:  domain.PageCover,
		Title: req.ClientName,
		Cover: &domain.CoverPage{
			ClientName:  req.ClientName,
			CompanyName: req.Branding.CompanyName,
			Period:      req.DateRange,
			Subtitle:    subtitle,
		},
	}
}

// sourcePages emits metric-grid pages per data source, chunked at the
// plan's page capacity, in fixed source order
func sourcePages(set domain.ResolvedMetricSet, plan domain.PagePlan) []domain.PageDescription {
	var pages []domain.PageDescription

	for _, source := range classify.SourceOrder {
		metrics := set.BySource[source]
		if len(metrics) == 0 {
			continue
		}
		for start := 0; start < len(metrics); start += plan.MetricsPerPage {
			end := start + plan.MetricsPerPage
			if end > len(metrics) {
				end = len(metrics)
			}
			pages = append(pages, domain.PageDescription{
				Kind:  domain.PageMetricGrid,
				Title: sourceTitle(source),
				Grid: &domain.MetricGridPage{
					Source:  source,
					Columns: plan.ColumnsPerPage,
					Metrics: metrics[start:end],
				},
			})
		}
	}

	return pages
}

func sourceTitle(source domain.SourceKind) string {
	switch source {
	case domain.SourceTraffic:
		return "Website Traffic"
	case domain.SourceSearch:
		return "Search Performance"
	case domain.SourcePerformance:
		return "Site Performance"
	default:
		return "Custom Metrics"
	}
}

// tablePage renders one complex metric as a table with a share-of-total
// column. Shares are computed here, from the raw values; raw counts are
// never presented as percentages.
func tablePage(m domain.ResolvedMetric) domain.PageDescription {
	labelHeader, valueHeader := tableHeaders(m.Descriptor.ID)

	var total float64
	for _, e := range m.Entries {
		total += e.Value
	}

	rows := make([][]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		share := "-"
		if total > 0 {
			share = fmt.Sprintf("%.1f%%", e.Value/total*100)
		}
		rows = append(rows, []string{
			e.Label,
			resolve.FormatCount(e.Value),
			share,
		})
	}

	return domain.PageDescription{
		Kind:  domain.PageDataTable,
		Title: m.Descriptor.Label,
		Table: &domain.DataTablePage{
			Metric:  m,
			Headers: []string{labelHeader, valueHeader, "Share"},
			Rows:    rows,
		},
	}
}

func tableHeaders(metricID string) (string, string) {
	switch metricID {
	case "deviceBreakdown":
		return "Device", "Sessions"
	case "topPages":
		return "Page", "Sessions"
	case "topQueries":
		return "Query", "Clicks"
	default:
		return "Name", "Value"
	}
}

// PerformanceDetailPages reports how many page-speed detail pages
// Assemble will emit for the request, so the planner can count them
// toward the total before assembly runs.
func PerformanceDetailPages(req domain.ReportRequest) int {
	if req.Data.Performance == nil && req.Variant != domain.VariantStandard {
		return 0
	}
	return 1
}

// performancePage emits the page-speed detail section. Absent data
// skips the section, except in the standard variant which substitutes
// an explicit placeholder.
func performancePage(req domain.ReportRequest, set domain.ResolvedMetricSet) (domain.PageDescription, bool) {
	if PerformanceDetailPages(req) == 0 {
		return domain.PageDescription{}, false
	}
	if req.Data.Performance == nil {
		return domain.PageDescription{
			Kind:  domain.PageNarrative,
			Title: "Page Speed",
			Narrative: &domain.NarrativePage{Insights: []domain.Insight{{
				Title: "Page Speed",
				Body:  "Page speed data was not available for this reporting period.",
				Tone:  domain.ToneNeutral,
			}}},
		}, true
	}

	p := req.Data.Performance
	vitals := []domain.Insight{
		{Title: "Performance Score", Body: fmt.Sprintf("%.0f / 100", p.PerformanceScore), Tone: scoreTone(p.PerformanceScore)},
		{Title: "First Contentful Paint", Body: fmt.Sprintf("%.1fs", p.FirstContentfulPaint), Tone: domain.ToneNeutral},
		{Title: "Largest Contentful Paint", Body: fmt.Sprintf("%.1fs", p.LargestContentfulPaint), Tone: domain.ToneNeutral},
		{Title: "Cumulative Layout Shift", Body: fmt.Sprintf("%.2f", p.CumulativeLayoutShift), Tone: domain.ToneNeutral},
		{Title: "Time to Interactive", Body: fmt.Sprintf("%.1fs", p.TimeToInteractive), Tone: domain.ToneNeutral},
		{Title: "Speed Index", Body: fmt.Sprintf("%.1fs", p.SpeedIndex), Tone: domain.ToneNeutral},
	}

	return domain.PageDescription{
		Kind:      domain.PageNarrative,
		Title:     "Page Speed",
		Narrative: &domain.NarrativePage{Insights: vitals},
	}, true
}

func scoreTone(score float64) domain.Tone {
	switch {
	case score >= 90:
		return domain.TonePositive
	case score >= 50:
		return domain.ToneWarning
	default:
		return domain.ToneNegative
	}
}

// recommendations filters the narrative down to actionable items; a
// report with nothing to fix still gets a closing note
func recommendations(insights []domain.Insight) []domain.Insight {
	var out []domain.Insight
	for _, i := range insights {
		if i.Tone == domain.TonePositive {
			continue
		}
		out = append(out, i)
	}
	if len(out) == 0 {
		out = append(out, domain.Insight{
			Title: "Keep It Up",
			Body:  "All tracked indicators are in healthy ranges. Maintain the current content and optimization cadence.",
			Tone:  domain.TonePositive,
		})
	}
	return out
}

// stamp numbers every page from a single total. The plan's figure is
// used when it matches the assembled sequence; otherwise the physical
// count wins so no page ever declares a total another page contradicts.
func stamp(pages []domain.PageDescription, plan domain.PagePlan) {
	total := plan.TotalPages
	if total != len(pages) {
		total = len(pages)
	}
	for i := range pages {
		pages[i].PageNumber = i + 1
		pages[i].TotalPages = total
	}
}
