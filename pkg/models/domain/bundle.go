package domain

// DataBundle is the union of fetched analytics data for one report.
// Every sub-bundle is optional; a nil pointer means the source was not
// supplied and its metrics resolve to the N/A sentinel. The bundle is
// owned by the caller and read-only to the engine.
type DataBundle struct {
	Traffic     *TrafficData
	Search      *SearchData
	Performance *PerformanceData
	Custom      map[string]float64
}

// TrafficData holds session/user/engagement metrics from a
// web-analytics source. BounceRate may arrive either as a fraction or
// as percentage points depending on the upstream provider.
type TrafficData struct {
	Users              float64
	NewUsers           float64
	Sessions           float64
	BounceRate         float64
	AvgSessionDuration float64 // seconds
	PagesPerSession    float64
	Conversions        float64
	OrganicTraffic     float64
	DeviceBreakdown    map[string]float64
	TopPages           []PageStat
	Custom             map[string]float64
}

// PageStat is a per-page traffic entry
type PageStat struct {
	Path     string
	Sessions float64
}

// SearchData holds click/impression/ranking metrics from a
// search-console-style source
type SearchData struct {
	TotalClicks      float64
	TotalImpressions float64
	AvgCTR           float64
	AvgPosition      float64
	TopQueries       []QueryStat
}

// QueryStat is a per-query search performance entry
type QueryStat struct {
	Query       string
	Clicks      float64
	Impressions float64
	Position    float64
}

// PerformanceData holds page-speed and Core Web Vitals metrics
type PerformanceData struct {
	PerformanceScore       float64
	FirstContentfulPaint   float64 // seconds
	LargestContentfulPaint float64 // seconds
	CumulativeLayoutShift  float64
	TimeToInteractive      float64 // seconds
	SpeedIndex             float64 // seconds
}
