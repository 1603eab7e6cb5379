package adapters

import (
	"fmt"
	"time"

	"github.com/clientlens/reportgen/pkg/models/api"
	"github.com/clientlens/reportgen/pkg/models/domain"
	"github.com/clientlens/reportgen/pkg/services/registry"
)

const dateLayout = "2006-01-02"

// MapReportRequestApiToDomain converts the wire representation into
// the engine's request. Date parsing is the only failure mode; bad
// unit or tone strings degrade to sensible defaults.
func MapReportRequestApiToDomain(req api.ReportRequest) (domain.ReportRequest, error) {
	start, err := time.Parse(dateLayout, req.DateRange.Start)
	if err != nil {
		return domain.ReportRequest{}, fmt.Errorf("invalid start date %q: %w", req.DateRange.Start, err)
	}
	end, err := time.Parse(dateLayout, req.DateRange.End)
	if err != nil {
		return domain.ReportRequest{}, fmt.Errorf("invalid end date %q: %w", req.DateRange.End, err)
	}

	custom := make([]domain.MetricDescriptor, 0, len(req.CustomMetrics))
	for _, m := range req.CustomMetrics {
		custom = append(custom, registry.CustomDescriptor(m.ID, m.Label, mapUnit(m.Unit), m.Field))
	}

	insights := make([]domain.Insight, 0, len(req.Insights))
	for _, i := range req.Insights {
		insights = append(insights, domain.Insight{
			Title: i.Title,
			Body:  i.Body,
			Tone:  mapTone(i.Tone),
		})
	}

	return domain.ReportRequest{
		Variant:           domain.Variant(req.Variant),
		ClientName:        req.ClientName,
		DateRange:         domain.DateRange{Start: start, End: end},
		Branding:          mapBranding(req.Branding),
		SelectedMetricIDs: req.SelectedMetricIDs,
		Data:              mapBundle(req),
		CustomMetrics:     custom,
		Insights:          insights,
	}, nil
}

// MapMetricDescriptorDomainToApi converts one catalog entry for the
// metrics listing
func MapMetricDescriptorDomainToApi(d domain.MetricDescriptor) api.Metric {
	return api.Metric{
		ID:     d.ID,
		Label:  d.Label,
		Source: string(d.Source),
		Unit:   string(d.Unit),
	}
}

func mapBranding(b api.Branding) domain.Branding {
	return domain.Branding{
		CompanyName:  b.CompanyName,
		PrimaryColor: b.PrimaryColor,
		ContactInfo:  b.ContactInfo,
	}
}

func mapBundle(req api.ReportRequest) domain.DataBundle {
	bundle := domain.DataBundle{Custom: req.CustomData}

	if t := req.TrafficData; t != nil {
		pages := make([]domain.PageStat, 0, len(t.TopPages))
		for _, p := range t.TopPages {
			pages = append(pages, domain.PageStat{Path: p.Path, Sessions: p.Sessions})
		}
		bundle.Traffic = &domain.TrafficData{
			Users:              t.Users,
			NewUsers:           t.NewUsers,
			Sessions:           t.Sessions,
			BounceRate:         t.BounceRate,
			AvgSessionDuration: t.AvgSessionDuration,
			PagesPerSession:    t.PagesPerSession,
			Conversions:        t.Conversions,
			OrganicTraffic:     t.OrganicTraffic,
			DeviceBreakdown:    t.DeviceBreakdown,
			TopPages:           pages,
			Custom:             t.Custom,
		}
	}

	if s := req.SearchData; s != nil {
		queries := make([]domain.QueryStat, 0, len(s.TopQueries))
		for _, q := range s.TopQueries {
			queries = append(queries, domain.QueryStat{
				Query:       q.Query,
				Clicks:      q.Clicks,
				Impressions: q.Impressions,
				Position:    q.Position,
			})
		}
		bundle.Search = &domain.SearchData{
			TotalClicks:      s.TotalClicks,
			TotalImpressions: s.TotalImpressions,
			AvgCTR:           s.AvgCTR,
			AvgPosition:      s.AvgPosition,
			TopQueries:       queries,
		}
	}

	if p := req.PerformanceData; p != nil {
		bundle.Performance = &domain.PerformanceData{
			PerformanceScore:       p.PerformanceScore,
			FirstContentfulPaint:   p.FirstContentfulPaint,
			LargestContentfulPaint: p.LargestContentfulPaint,
			CumulativeLayoutShift:  p.CumulativeLayoutShift,
			TimeToInteractive:      p.TimeToInteractive,
			SpeedIndex:             p.SpeedIndex,
		}
	}

	return bundle
}

func mapUnit(unit string) domain.UnitKind {
	switch domain.UnitKind(unit) {
	case domain.UnitPercentage, domain.UnitDuration, domain.UnitDecimal:
		return domain.UnitKind(unit)
	default:
		return domain.UnitCount
	}
}

func mapTone(tone string) domain.Tone {
	switch domain.Tone(tone) {
	case domain.TonePositive, domain.ToneWarning, domain.ToneNegative:
		return domain.Tone(tone)
	default:
		return domain.ToneNeutral
	}
}
