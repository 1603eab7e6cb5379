package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/clientlens/reportgen/pkg/models/domain"
)

// Registry manages metric descriptors keyed by id
type Registry interface {
	// Register adds or replaces a descriptor; last write wins
	Register(descriptor domain.MetricDescriptor) error
	// Lookup returns the descriptor for id, if registered
	Lookup(id string) (domain.MetricDescriptor, bool)
	// IDs returns the registered metric ids in sorted order
	IDs() []string
}

type metricRegistry struct {
	mu          sync.RWMutex
	descriptors map[string]domain.MetricDescriptor
}

// NewRegistry creates an empty registry
func NewRegistry() Registry {
	return &metricRegistry{
		descriptors: make(map[string]domain.MetricDescriptor),
	}
}

// NewPredefined creates a registry pre-loaded with the predefined
// metric catalog. Built once at startup and shared read-only across
// report requests.
func NewPredefined() Registry {
	r := NewRegistry()
	for _, d := range predefinedCatalog() {
		// catalog descriptors are statically valid
		_ = r.Register(d)
	}
	return r
}

func (r *metricRegistry) Register(descriptor domain.MetricDescriptor) error {
	if descriptor.ID == "" {
		return fmt.Errorf("metric id cannot be empty")
	}
	if descriptor.Access == nil {
		return fmt.Errorf("metric %q has no accessor", descriptor.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.descriptors[descriptor.ID] = descriptor
	return nil
}

func (r *metricRegistry) Lookup(id string) (domain.MetricDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descriptors[id]
	return d, ok
}

func (r *metricRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.descriptors))
	for id := range r.descriptors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
