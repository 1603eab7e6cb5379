package insight

import (
	"fmt"

	"github.com/clientlens/reportgen/pkg/models/domain"
)

// Synthesize produces templated narrative insights from fixed numeric
// bands. It is a pure function of the data bundle; when the caller
// supplies its own insights the assembler uses those instead and this
// is never invoked.
func Synthesize(bundle domain.DataBundle) []domain.Insight {
	var insights []domain.Insight

	if bundle.Traffic != nil {
		insights = append(insights, bounceRateInsight(bundle.Traffic.BounceRate))
	}
	if bundle.Search != nil {
		insights = append(insights, ctrInsight(bundle.Search.AvgCTR))
	}
	if bundle.Performance != nil {
		insights = append(insights, performanceInsight(bundle.Performance.PerformanceScore))
	}

	return insights
}

// percentagePoints tolerates both upstream conventions: values above 1
// are already points, values at or below 1 are fractions
func percentagePoints(value float64) float64 {
	if value > 1 {
		return value
	}
	return value * 100
}

func bounceRateInsight(rate float64) domain.Insight {
	points := percentagePoints(rate)

	switch {
	case points < 20:
		return domain.Insight{
			Title: "Engagement",
			Body:  fmt.Sprintf("Bounce rate of %.1f%% indicates excellent engagement.", points),
			Tone:  domain.TonePositive,
		}
	case points < 40:
		return domain.Insight{
			Title: "Engagement",
			Body:  fmt.Sprintf("Bounce rate of %.1f%% indicates good engagement.", points),
			Tone:  domain.TonePositive,
		}
	case points < 60:
		return domain.Insight{
			Title: "Engagement",
			Body: fmt.Sprintf(
				"Bounce rate of %.1f%% is average. Consider improving content relevance on key landing pages.",
				points),
			Tone: domain.ToneWarning,
		}
	default:
		return domain.Insight{
			Title: "Engagement",
			Body: fmt.Sprintf(
				"Bounce rate of %.1f%% is high and suggests a user-experience issue worth investigating.",
				points),
			Tone: domain.ToneNegative,
		}
	}
}

func ctrInsight(ctr float64) domain.Insight {
	points := percentagePoints(ctr)

	if points > 3 {
		return domain.Insight{
			Title: "Search Visibility",
			Body:  fmt.Sprintf("Click-through rate of %.1f%% is above the typical benchmark.", points),
			Tone:  domain.TonePositive,
		}
	}
	return domain.Insight{
		Title: "Search Visibility",
		Body: fmt.Sprintf(
			"Click-through rate of %.1f%% leaves room to grow. Optimizing page titles and meta descriptions usually helps.",
			points),
		Tone: domain.ToneNeutral,
	}
}

func performanceInsight(score float64) domain.Insight {
	switch {
	case score >= 90:
		return domain.Insight{
			Title: "Site Speed",
			Body:  fmt.Sprintf("Performance score of %.0f is excellent.", score),
			Tone:  domain.TonePositive,
		}
	case score >= 50:
		return domain.Insight{
			Title: "Site Speed",
			Body:  fmt.Sprintf("Performance score of %.0f is moderate. Image and script optimization would help.", score),
			Tone:  domain.ToneWarning,
		}
	default:
		return domain.Insight{
			Title: "Site Speed",
			Body:  fmt.Sprintf("Performance score of %.0f is low and likely hurts both rankings and conversions.", score),
			Tone:  domain.ToneNegative,
		}
	}
}
