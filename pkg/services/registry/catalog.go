package registry

import (
	"sort"

	"github.com/clientlens/reportgen/pkg/models/domain"
)

// trafficNumber builds an accessor for a scalar traffic field
func trafficNumber(get func(t *domain.TrafficData) float64) domain.Accessor {
	return func(b domain.DataBundle) (domain.MetricValue, bool) {
		if b.Traffic == nil {
			return domain.MetricValue{}, false
		}
		return domain.MetricValue{Number: get(b.Traffic)}, true
	}
}

func searchNumber(get func(s *domain.SearchData) float64) domain.Accessor {
	return func(b domain.DataBundle) (domain.MetricValue, bool) {
		if b.Search == nil {
			return domain.MetricValue{}, false
		}
		return domain.MetricValue{Number: get(b.Search)}, true
	}
}

func performanceNumber(get func(p *domain.PerformanceData) float64) domain.Accessor {
	return func(b domain.DataBundle) (domain.MetricValue, bool) {
		if b.Performance == nil {
			return domain.MetricValue{}, false
		}
		return domain.MetricValue{Number: get(b.Performance)}, true
	}
}

// deviceEntries flattens the device map into entries ordered by
// session count, largest first. Ties break on label so output is
// deterministic.
func deviceEntries(devices map[string]float64) []domain.BreakdownEntry {
	entries := make([]domain.BreakdownEntry, 0, len(devices))
	for label, value := range devices {
		entries = append(entries, domain.BreakdownEntry{Label: label, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}

func predefinedCatalog() []domain.MetricDescriptor {
	return []domain.MetricDescriptor{
		// traffic
		{
			ID: "users", Source: domain.SourceTraffic, Unit: domain.UnitCount,
			Label:  "Users",
			Access: trafficNumber(func(t *domain.TrafficData) float64 { return t.Users }),
		},
		{
			ID: "newUsers", Source: domain.SourceTraffic, Unit: domain.UnitCount,
			Label:  "New Users",
			Access: trafficNumber(func(t *domain.TrafficData) float64 { return t.NewUsers }),
		},
		{
			ID: "sessions", Source: domain.SourceTraffic, Unit: domain.UnitCount,
			Label:  "Sessions",
			Access: trafficNumber(func(t *domain.TrafficData) float64 { return t.Sessions }),
		},
		{
			ID: "bounceRate", Source: domain.SourceTraffic, Unit: domain.UnitPercentage,
			Label:  "Bounce Rate",
			Access: trafficNumber(func(t *domain.TrafficData) float64 { return t.BounceRate }),
		},
		{
			ID: "avgSessionDuration", Source: domain.SourceTraffic, Unit: domain.UnitDuration,
			Label:  "Avg. Session Duration",
			Access: trafficNumber(func(t *domain.TrafficData) float64 { return t.AvgSessionDuration }),
		},
		{
			ID: "pagesPerSession", Source: domain.SourceTraffic, Unit: domain.UnitDecimal,
			Label:  "Pages / Session",
			Access: trafficNumber(func(t *domain.TrafficData) float64 { return t.PagesPerSession }),
		},
		{
			ID: "conversions", Source: domain.SourceTraffic, Unit: domain.UnitCount,
			Label:  "Conversions",
			Access: trafficNumber(func(t *domain.TrafficData) float64 { return t.Conversions }),
		},
		{
			ID: "organicTraffic", Source: domain.SourceTraffic, Unit: domain.UnitCount,
			Label:  "Organic Traffic",
			Access: trafficNumber(func(t *domain.TrafficData) float64 { return t.OrganicTraffic }),
		},
		{
			ID: "deviceBreakdown", Source: domain.SourceTraffic, Unit: domain.UnitStructured,
			Label: "Sessions by Device",
			Access: func(b domain.DataBundle) (domain.MetricValue, bool) {
				if b.Traffic == nil {
					return domain.MetricValue{}, false
				}
				return domain.MetricValue{Entries: deviceEntries(b.Traffic.DeviceBreakdown)}, true
			},
		},
		{
			ID: "topPages", Source: domain.SourceTraffic, Unit: domain.UnitStructured,
			Label: "Top Pages",
			Access: func(b domain.DataBundle) (domain.MetricValue, bool) {
				if b.Traffic == nil {
					return domain.MetricValue{}, false
				}
				entries := make([]domain.BreakdownEntry, 0, len(b.Traffic.TopPages))
				for _, p := range b.Traffic.TopPages {
					entries = append(entries, domain.BreakdownEntry{Label: p.Path, Value: p.Sessions})
				}
				return domain.MetricValue{Entries: entries}, true
			},
		},

		// search
		{
			ID: "totalClicks", Source: domain.SourceSearch, Unit: domain.UnitCount,
			Label:  "Total Clicks",
			Access: searchNumber(func(s *domain.SearchData) float64 { return s.TotalClicks }),
		},
		{
			ID: "totalImpressions", Source: domain.SourceSearch, Unit: domain.UnitCount,
			Label:  "Total Impressions",
			Access: searchNumber(func(s *domain.SearchData) float64 { return s.TotalImpressions }),
		},
		{
			ID: "avgCTR", Source: domain.SourceSearch, Unit: domain.UnitPercentage,
			Label:  "Avg. CTR",
			Access: searchNumber(func(s *domain.SearchData) float64 { return s.AvgCTR }),
		},
		{
			ID: "avgPosition", Source: domain.SourceSearch, Unit: domain.UnitDecimal,
			Label:  "Avg. Position",
			Access: searchNumber(func(s *domain.SearchData) float64 { return s.AvgPosition }),
		},
		{
			ID: "topQueries", Source: domain.SourceSearch, Unit: domain.UnitStructured,
			Label: "Top Search Queries",
			Access: func(b domain.DataBundle) (domain.MetricValue, bool) {
				if b.Search == nil {
					return domain.MetricValue{}, false
				}
				entries := make([]domain.BreakdownEntry, 0, len(b.Search.TopQueries))
				for _, q := range b.Search.TopQueries {
					entries = append(entries, domain.BreakdownEntry{Label: q.Query, Value: q.Clicks})
				}
				return domain.MetricValue{Entries: entries}, true
			},
		},

		// performance
		{
			ID: "performanceScore", Source: domain.SourcePerformance, Unit: domain.UnitCount,
			Label:  "Performance Score",
			Access: performanceNumber(func(p *domain.PerformanceData) float64 { return p.PerformanceScore }),
		},
		{
			ID: "firstContentfulPaint", Source: domain.SourcePerformance, Unit: domain.UnitDecimal,
			Label:  "First Contentful Paint (s)",
			Access: performanceNumber(func(p *domain.PerformanceData) float64 { return p.FirstContentfulPaint }),
		},
		{
			ID: "largestContentfulPaint", Source: domain.SourcePerformance, Unit: domain.UnitDecimal,
			Label:  "Largest Contentful Paint (s)",
			Access: performanceNumber(func(p *domain.PerformanceData) float64 { return p.LargestContentfulPaint }),
		},
		{
			ID: "cumulativeLayoutShift", Source: domain.SourcePerformance, Unit: domain.UnitDecimal,
			Label:  "Cumulative Layout Shift",
			Access: performanceNumber(func(p *domain.PerformanceData) float64 { return p.CumulativeLayoutShift }),
		},
		{
			ID: "timeToInteractive", Source: domain.SourcePerformance, Unit: domain.UnitDecimal,
			Label:  "Time to Interactive (s)",
			Access: performanceNumber(func(p *domain.PerformanceData) float64 { return p.TimeToInteractive }),
		},
		{
			ID: "speedIndex", Source: domain.SourcePerformance, Unit: domain.UnitDecimal,
			Label:  "Speed Index (s)",
			Access: performanceNumber(func(p *domain.PerformanceData) float64 { return p.SpeedIndex }),
		},
	}
}

// CustomDescriptor builds a descriptor for a caller-defined metric
// resolved against the traffic source by field name, falling back to
// the bundle-level custom value map.
func CustomDescriptor(id, label string, unit domain.UnitKind, field string) domain.MetricDescriptor {
	return domain.MetricDescriptor{
		ID:     id,
		Source: domain.SourceCustom,
		Unit:   unit,
		Label:  label,
		Access: func(b domain.DataBundle) (domain.MetricValue, bool) {
			if b.Traffic != nil {
				if v, ok := b.Traffic.Custom[field]; ok {
					return domain.MetricValue{Number: v}, true
				}
			}
			if v, ok := b.Custom[field]; ok {
				return domain.MetricValue{Number: v}, true
			}
			return domain.MetricValue{}, false
		},
	}
}
