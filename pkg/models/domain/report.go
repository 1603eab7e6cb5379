package domain

import "time"

// Variant selects one of the three report shapes
type Variant string

const (
	VariantExecutive Variant = "executive"
	VariantStandard  Variant = "standard"
	VariantCustom    Variant = "custom"
)

// DateRange is the reporting period
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Branding carries the client-facing theme threaded through the whole
// pipeline; there are no module-level style globals.
type Branding struct {
	CompanyName  string
	PrimaryColor string // hex, e.g. "#1E3A5F"
	ContactInfo  string
}

// Tone colors a narrative insight
type Tone string

const (
	TonePositive Tone = "positive"
	ToneWarning  Tone = "warning"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// Insight is one templated narrative sentence. Caller-supplied
// insights take precedence over synthesized ones.
type Insight struct {
	Title string
	Body  string
	Tone  Tone
}

// ReportRequest is everything the engine needs to compose one report.
// Data bundles are pre-fetched by upstream collaborators.
type ReportRequest struct {
	Variant           Variant
	ClientName        string
	DateRange         DateRange
	Branding          Branding
	SelectedMetricIDs []string
	Data              DataBundle
	CustomMetrics     []MetricDescriptor
	Insights          []Insight
}

// ErrorKind classifies a failed report request
type ErrorKind string

const (
	ErrKindValidation    ErrorKind = "validation"
	ErrKindRenderTimeout ErrorKind = "render_timeout"
	ErrKindRenderFailure ErrorKind = "render_failure"
)

// ReportResult is the structured outcome of a report request. Failures
// are values, never panics: the caller inspects Success and ErrorKind.
type ReportResult struct {
	ID        string
	Success   bool
	ErrorKind ErrorKind
	Message   string
	Document  []byte
	Plan      PagePlan
}
