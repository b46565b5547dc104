package scoring

import (
	"fmt"
	"math"
	"sort"
)

// ScoreToPar formats a score relative to par: "E" for even, "+2", "-1".
func ScoreToPar(score, par int) string {
	diff := score - par
	if diff == 0 {
		return "E"
	}
	return fmt.Sprintf("%+d", diff)
}

// ScoreName returns the common name for a hole result ("Birdie", "Eagle",
// "Double Bogey"). Results outside the named range fall back to the signed
// difference.
func ScoreName(score, par int) string {
	switch score - par {
	case -4:
		return "Condor"
	case -3:
		return "Albatross"
	case -2:
		return "Eagle"
	case -1:
		return "Birdie"
	case 0:
		return "Par"
	case 1:
		return "Bogey"
	case 2:
		return "Double Bogey"
	case 3:
		return "Triple Bogey"
	default:
		return ScoreToPar(score, par)
	}
}

// Handicap computes a simplified handicap index from round scores: score
// differentials against course/slope ratings, best 8 of the most recent 20,
// averaged and scaled by 0.96, rounded to one decimal. Missing ratings
// default to 72.0 and 113. Fewer than 5 scores yields 0. This is an
// illustrative formula, not a certified USGA implementation.
func Handicap(scores []int, courseRatings []float64, slopeRatings []int) float64 {
	if len(scores) < 5 {
		return 0
	}

	diffs := make([]float64, len(scores))
	for i, score := range scores {
		rating := 72.0
		if i < len(courseRatings) && courseRatings[i] != 0 {
			rating = courseRatings[i]
		}
		slope := 113
		if i < len(slopeRatings) && slopeRatings[i] != 0 {
			slope = slopeRatings[i]
		}
		diffs[i] = (float64(score) - rating) * 113 / float64(slope)
	}

	sort.Float64s(diffs)
	best := diffs[:min(8, len(diffs))]
	sum := 0.0
	for _, d := range best {
		sum += d
	}
	avg := sum / float64(len(best))
	return math.Round(avg*0.96*10) / 10
}
