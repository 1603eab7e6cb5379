package api

// ReportRequest is the HTTP/file representation of a report request.
// Data bundles are optional; absent sources degrade to N/A values or
// placeholder sections rather than failing the request.
type ReportRequest struct {
	Variant           string             `json:"variant" mapstructure:"variant"`
	ClientName        string             `json:"clientName" mapstructure:"clientName"`
	DateRange         DateRange          `json:"dateRange" mapstructure:"dateRange"`
	Branding          Branding           `json:"branding" mapstructure:"branding"`
	SelectedMetricIDs []string           `json:"selectedMetricIds,omitempty" mapstructure:"selectedMetricIds"`
	TrafficData       *TrafficData       `json:"trafficData,omitempty" mapstructure:"trafficData"`
	SearchData        *SearchData        `json:"searchData,omitempty" mapstructure:"searchData"`
	PerformanceData   *PerformanceData   `json:"performanceData,omitempty" mapstructure:"performanceData"`
	CustomData        map[string]float64 `json:"customData,omitempty" mapstructure:"customData"`
	CustomMetrics     []CustomMetric     `json:"customMetricDescriptors,omitempty" mapstructure:"customMetricDescriptors"`
	Insights          []Insight          `json:"insights,omitempty" mapstructure:"insights"`
}

// DateRange carries dates as "2006-01-02" strings
type DateRange struct {
	Start string `json:"start" mapstructure:"start"`
	End   string `json:"end" mapstructure:"end"`
}

type Branding struct {
	CompanyName  string `json:"companyName" mapstructure:"companyName"`
	PrimaryColor string `json:"primaryColor,omitempty" mapstructure:"primaryColor"`
	ContactInfo  string `json:"contactInfo,omitempty" mapstructure:"contactInfo"`
}

// CustomMetric is a caller-defined metric descriptor resolved against
// the traffic source by field name
type CustomMetric struct {
	ID    string `json:"id" mapstructure:"id"`
	Label string `json:"label" mapstructure:"label"`
	Unit  string `json:"unit,omitempty" mapstructure:"unit"`
	Field string `json:"field" mapstructure:"field"`
}

type Insight struct {
	Title string `json:"title" mapstructure:"title"`
	Body  string `json:"body" mapstructure:"body"`
	Tone  string `json:"tone,omitempty" mapstructure:"tone"`
}

type TrafficData struct {
	Users              float64            `json:"users" mapstructure:"users"`
	NewUsers           float64            `json:"newUsers" mapstructure:"newUsers"`
	Sessions           float64            `json:"sessions" mapstructure:"sessions"`
	BounceRate         float64            `json:"bounceRate" mapstructure:"bounceRate"`
	AvgSessionDuration float64            `json:"avgSessionDuration" mapstructure:"avgSessionDuration"`
	PagesPerSession    float64            `json:"pagesPerSession" mapstructure:"pagesPerSession"`
	Conversions        float64            `json:"conversions" mapstructure:"conversions"`
	OrganicTraffic     float64            `json:"organicTraffic" mapstructure:"organicTraffic"`
	DeviceBreakdown    map[string]float64 `json:"deviceBreakdown,omitempty" mapstructure:"deviceBreakdown"`
	TopPages           []PageStat         `json:"topPages,omitempty" mapstructure:"topPages"`
	Custom             map[string]float64 `json:"custom,omitempty" mapstructure:"custom"`
}

type PageStat struct {
	Path     string  `json:"path" mapstructure:"path"`
	Sessions float64 `json:"sessions" mapstructure:"sessions"`
}

type SearchData struct {
	TotalClicks      float64     `json:"totalClicks" mapstructure:"totalClicks"`
	TotalImpressions float64     `json:"totalImpressions" mapstructure:"totalImpressions"`
	AvgCTR           float64     `json:"avgCTR" mapstructure:"avgCTR"`
	AvgPosition      float64     `json:"avgPosition" mapstructure:"avgPosition"`
	TopQueries       []QueryStat `json:"topQueries,omitempty" mapstructure:"topQueries"`
}

type QueryStat struct {
	Query       string  `json:"query" mapstructure:"query"`
	Clicks      float64 `json:"clicks" mapstructure:"clicks"`
	Impressions float64 `json:"impressions" mapstructure:"impressions"`
	Position    float64 `json:"position" mapstructure:"position"`
}

type PerformanceData struct {
	PerformanceScore       float64 `json:"performanceScore" mapstructure:"performanceScore"`
	FirstContentfulPaint   float64 `json:"firstContentfulPaint" mapstructure:"firstContentfulPaint"`
	LargestContentfulPaint float64 `json:"largestContentfulPaint" mapstructure:"largestContentfulPaint"`
	CumulativeLayoutShift  float64 `json:"cumulativeLayoutShift" mapstructure:"cumulativeLayoutShift"`
	TimeToInteractive      float64 `json:"timeToInteractive" mapstructure:"timeToInteractive"`
	SpeedIndex             float64 `json:"speedIndex" mapstructure:"speedIndex"`
}

// ErrorResponse mirrors the engine's structured failure result
type ErrorResponse struct {
	Success   bool   `json:"success"`
	ErrorKind string `json:"errorKind"`
	Message   string `json:"message"`
}

// Metric describes one catalog entry in the metrics listing
type Metric struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Source string `json:"source"`
	Unit   string `json:"unit"`
}
