package classify

import "github.com/clientlens/reportgen/pkg/models/domain"

// Build partitions resolved metrics into the set consumed by the
// layout planner and assembler. Structured metrics are complex and
// never reach the card grid; everything else is simple. Order within
// each partition follows the request order.
func Build(resolved []domain.ResolvedMetric) domain.ResolvedMetricSet {
	set := domain.ResolvedMetricSet{
		All:      resolved,
		BySource: make(map[domain.SourceKind][]domain.ResolvedMetric),
	}

	for _, m := range resolved {
		if m.Complex {
			set.Complex = append(set.Complex, m)
			continue
		}
		set.Simple = append(set.Simple, m)
		set.BySource[m.Descriptor.Source] = append(set.BySource[m.Descriptor.Source], m)
	}

	return set
}

// SourceOrder is the fixed section order for per-source detail pages
var SourceOrder = []domain.SourceKind{
	domain.SourceTraffic,
	domain.SourceSearch,
	domain.SourcePerformance,
	domain.SourceCustom,
}
