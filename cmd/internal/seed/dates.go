package seed

import (
	"math/rand"
	"time"
)

// Probabilities layering the three filing-date distributions. These shape
// how realistic the dataset looks over time and are relied on by the
// distribution tests, so treat them as part of the contract.
const (
	peakYearProb   = 0.7
	recentYearProb = 0.5
)

// Relative weights for the last three years of the window when the
// recency branch is taken.
var recentYearWeights = []int{30, 40, 30}

type yearWeight struct {
	year   int
	weight int
}

// dateWeighted produces one filing date within [start, end].
//
// With peak years present, 70% of draws land in a uniformly chosen peak
// year (any month, day 1-28 to dodge month-length edge cases). Of the
// rest, half are biased toward the three most recent window years with
// 30/40/30 weights, capped so the final year never runs past the window
// end. Everything else is uniform across the whole window.
func dateWeighted(r *rand.Rand, start, end time.Time, peakYears []int) time.Time {
	if len(peakYears) > 0 && r.Float64() < peakYearProb {
		year := peakYears[r.Intn(len(peakYears))]
		month := randBetween(r, 1, 12)
		day := randBetween(r, 1, 28)
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if int(d.Month()) != month {
			// Day 28 cap makes this unreachable, but a bad calendar date
			// clamps to the first of the month rather than failing.
			d = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		}
		return d
	}

	if r.Float64() < recentYearProb {
		final := end.Year()
		years := []yearWeight{
			{final - 2, recentYearWeights[0]},
			{final - 1, recentYearWeights[1]},
			{final, recentYearWeights[2]},
		}
		yw, err := WeightedChoice(r, years, func(y yearWeight) int { return y.weight })
		if err != nil {
			// Static positive weights; cannot happen.
			yw = years[len(years)-1]
		}

		maxMonth := 12
		if yw.year == final {
			maxMonth = int(end.Month())
		}
		month := randBetween(r, 1, maxMonth)

		maxDay := 28
		if yw.year == final && month == int(end.Month()) {
			maxDay = end.Day()
		}
		day := randBetween(r, 1, maxDay)
		return time.Date(yw.year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}

	span := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, r.Intn(span+1))
}
