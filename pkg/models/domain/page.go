package domain

// PagePlan is the single source of truth for pagination. Every page
// description stamps its number and total from here; templates never
// carry their own totals.
type PagePlan struct {
	TotalPages     int
	ContentPages   int
	ComplexPages   int
	ColumnsPerPage int
	MetricsPerPage int
}

// PageKind tags a PageDescription variant
type PageKind string

const (
	PageCover      PageKind = "cover"
	PageMetricGrid PageKind = "metric_grid"
	PageDataTable  PageKind = "data_table"
	PageNarrative  PageKind = "narrative"
	PageContact    PageKind = "contact"
)

// PageDescription is one renderable page. Exactly one payload pointer
// is set, matching Kind. Created by the assembler, consumed once by
// the renderer, never persisted.
type PageDescription struct {
	Kind       PageKind
	Title      string
	PageNumber int
	TotalPages int

	Cover     *CoverPage
	Grid      *MetricGridPage
	Table     *DataTablePage
	Narrative *NarrativePage
	Contact   *ContactPage
}

// CoverPage opens the document
type CoverPage struct {
	ClientName  string
	CompanyName string
	Period      DateRange
	Subtitle    string
}

// MetricGridPage renders simple metrics as cards in a column grid
type MetricGridPage struct {
	Source  SourceKind
	Columns int
	Metrics []ResolvedMetric
}

// DataTablePage renders one complex metric as a table
type DataTablePage struct {
	Metric  ResolvedMetric
	Headers []string
	Rows    [][]string
}

// NarrativePage holds templated narrative sections (overview,
// insights, recommendations, placeholders)
type NarrativePage struct {
	Insights []Insight
}

// ContactPage closes every report
type ContactPage struct {
	CompanyName string
	ContactInfo string
}
