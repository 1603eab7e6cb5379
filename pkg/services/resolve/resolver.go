package resolve

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clientlens/reportgen/pkg/models/domain"
	"github.com/clientlens/reportgen/pkg/services/registry"
)

// Resolver turns requested metric ids into resolved metrics drawn
// from a data bundle
type Resolver interface {
	// Resolve looks up each id (predefined catalog first, then the
	// request-scoped custom descriptors), extracts its value and
	// formats it. Unknown ids are logged and skipped, never fatal.
	Resolve(
		ctx context.Context,
		ids []string,
		bundle domain.DataBundle,
		custom []domain.MetricDescriptor,
	) []domain.ResolvedMetric
}

type resolver struct {
	predefined registry.Registry
}

// NewResolver creates a resolver backed by the given predefined
// catalog. The catalog is shared read-only across requests.
func NewResolver(predefined registry.Registry) Resolver {
	return &resolver{predefined: predefined}
}

func (r *resolver) Resolve(
	ctx context.Context,
	ids []string,
	bundle domain.DataBundle,
	custom []domain.MetricDescriptor,
) []domain.ResolvedMetric {
	logger := zerolog.Ctx(ctx)

	customByID := make(map[string]domain.MetricDescriptor, len(custom))
	for _, d := range custom {
		customByID[d.ID] = d
	}

	resolved := make([]domain.ResolvedMetric, 0, len(ids))
	for _, id := range ids {
		// predefined ids are reserved; custom descriptors only apply
		// when no predefined entry matches
		descriptor, ok := r.predefined.Lookup(id)
		if !ok {
			descriptor, ok = customByID[id]
		}
		if !ok {
			logger.Warn().Str("metric", id).Msg("unknown metric, skipping")
			continue
		}

		resolved = append(resolved, resolveOne(descriptor, bundle))
	}
	return resolved
}

func resolveOne(descriptor domain.MetricDescriptor, bundle domain.DataBundle) domain.ResolvedMetric {
	value, ok := descriptor.Access(bundle)
	structured := descriptor.Unit == domain.UnitStructured

	m := domain.ResolvedMetric{
		Descriptor: descriptor,
		Complex:    structured,
	}

	if !ok {
		m.Missing = true
		m.Formatted = MissingSentinel
		return m
	}

	if structured {
		m.Entries = value.Entries
		m.Formatted = fmt.Sprintf("%d entries", len(value.Entries))
		return m
	}

	m.Number = value.Number
	m.Formatted = FormatNumber(descriptor.Unit, value.Number)
	return m
}
