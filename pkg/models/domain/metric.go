package domain

// SourceKind identifies the data source a metric is drawn from
type SourceKind string

const (
	SourceTraffic     SourceKind = "traffic"
	SourceSearch      SourceKind = "search"
	SourcePerformance SourceKind = "performance"
	SourceCustom      SourceKind = "custom"
)

// UnitKind drives how a raw metric value is formatted for display
type UnitKind string

const (
	UnitCount      UnitKind = "count"
	UnitPercentage UnitKind = "percentage"
	UnitDuration   UnitKind = "duration"
	UnitDecimal    UnitKind = "decimal"
	UnitStructured UnitKind = "structured"
)

// BreakdownEntry is one row of a structured metric value,
// e.g. sessions per device category or per landing page
type BreakdownEntry struct {
	Label string
	Value float64
}

// MetricValue is the raw result of a metric accessor. For scalar unit
// kinds Number carries the value; for UnitStructured Entries does.
type MetricValue struct {
	Number  float64
	Entries []BreakdownEntry
}

// Accessor extracts a metric's raw value from a data bundle. The bool
// reports whether the owning data source was supplied at all - a zero
// value with ok=true is a real zero, not a missing value.
type Accessor func(bundle DataBundle) (MetricValue, bool)

// MetricDescriptor describes a single metric: where its value comes
// from, how it is labeled and how it is formatted. Descriptors are
// immutable once registered.
type MetricDescriptor struct {
	ID     string
	Source SourceKind
	Unit   UnitKind
	Label  string
	Access Accessor
}

// ResolvedMetric is the outcome of resolving one requested metric id
// against a data bundle. Never mutated after creation.
type ResolvedMetric struct {
	Descriptor MetricDescriptor
	Number     float64
	Entries    []BreakdownEntry
	Formatted  string
	Missing    bool
	Complex    bool
}

// ResolvedMetricSet partitions resolved metrics for layout: Simple
// metrics render as grid cards, Complex ones as dedicated table pages.
// Invariant: no structured metric ever appears in Simple.
type ResolvedMetricSet struct {
	All      []ResolvedMetric
	Simple   []ResolvedMetric
	Complex  []ResolvedMetric
	BySource map[SourceKind][]ResolvedMetric
}
