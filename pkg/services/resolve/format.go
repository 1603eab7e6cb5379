package resolve

import (
	"fmt"
	"math"
	"strconv"

	"github.com/clientlens/reportgen/pkg/models/domain"
)

// MissingSentinel is rendered when a metric's owning data source was
// not supplied. Zero values render as "0"; hiding a metric because its
// value is falsy is a defect.
const MissingSentinel = "N/A"

// FormatNumber formats a scalar metric value according to its unit kind
func FormatNumber(unit domain.UnitKind, value float64) string {
	switch unit {
	case domain.UnitPercentage:
		return FormatPercent(value)
	case domain.UnitDuration:
		return FormatDuration(value)
	case domain.UnitDecimal:
		return fmt.Sprintf("%.1f", value)
	default:
		return FormatCount(value)
	}
}

// FormatPercent normalizes either upstream convention: values above 1
// are taken as percentage points already, values at or below 1 as
// fractions. Both 55.6 and 0.556 display as "55.6%".
func FormatPercent(value float64) string {
	points := value
	if value <= 1 {
		points = value * 100
	}
	return fmt.Sprintf("%.1f%%", points)
}

// FormatDuration renders seconds as minutes:seconds with zero-padded
// seconds, e.g. 185 -> "3:05"
func FormatDuration(seconds float64) string {
	total := int(math.Round(seconds))
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatCount renders a whole number, grouping thousands once values
// reach five digits
func FormatCount(value float64) string {
	n := int64(math.Round(value))
	s := strconv.FormatInt(n, 10)
	if n < 10000 {
		return s
	}
	return groupThousands(s)
}

func groupThousands(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
