package service

import (
	"sort"
	"time"

	"socialpulse/internal/models"
)

// trendLayout is the calendar-day key used for trend coalescing. Days are
// computed in UTC so that repeated updates collapse deterministically
// regardless of the host time zone.
const trendLayout = "2006-01-02"

func trendDayKey(t time.Time) string {
	return t.UTC().Format(trendLayout)
}

// mergeEngagement shallow-merges delta into existing: keys present in the
// delta overwrite, all others stay untouched. Last write wins per field.
func mergeEngagement(existing, delta map[string]int) map[string]int {
	merged := make(map[string]int, len(existing)+len(delta))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range delta {
		merged[k] = v
	}
	return merged
}

// engagementTotal sums the likes/comments/shares triple, treating missing
// keys (or a nil map) as zero.
func engagementTotal(engagement map[string]int) int {
	return engagement["likes"] + engagement["comments"] + engagement["shares"]
}

// engagementTriple normalizes an engagement counter map to the canonical
// triple reported in trend entries.
func engagementTriple(engagement map[string]int) map[string]int {
	return map[string]int{
		"likes":    engagement["likes"],
		"comments": engagement["comments"],
		"shares":   engagement["shares"],
	}
}

// deltaTotal is the trend value recorded for an engagement update: the sum
// of every numeric value in the delta, whatever its key.
func deltaTotal(delta map[string]int) int {
	total := 0
	for _, v := range delta {
		total += v
	}
	return total
}

// upsertTrend overwrites the trend entry for day when one exists and
// appends a new entry otherwise. Multiple updates on the same calendar day
// therefore collapse into a single point.
func upsertTrend(trends []models.TrendPoint, day string, engagement int) []models.TrendPoint {
	for i := range trends {
		if trends[i].Date == day {
			trends[i].Engagement = engagement
			return trends
		}
	}
	return append(trends, models.TrendPoint{Date: day, Engagement: engagement})
}

// topPostsByRate returns the n posts with the highest matched engagement
// rate. The sort is stable so posts with equal rates keep their original
// fetch order; posts without an engagement record rank with rate 0.
func topPostsByRate(posts []*models.Post, rates map[int64]float64, n int) []*models.Post {
	ranked := make([]*models.Post, len(posts))
	copy(ranked, posts)

	sort.SliceStable(ranked, func(i, j int) bool {
		return rates[ranked[i].ID] > rates[ranked[j].ID]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// sampleAudienceInsights takes demographics and best-performing time from
// the first engagement record only. The source system sampled rather than
// aggregated these two fields; the strategy is isolated here so it can be
// changed without touching call sites.
func sampleAudienceInsights(engagements []*models.Engagement) (models.Demographics, *time.Time) {
	if len(engagements) == 0 {
		return models.Demographics{}, nil
	}
	first := engagements[0]
	return first.Analytics.AudienceDemographics, first.Analytics.BestPerformingTime
}
