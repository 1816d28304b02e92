package model

import "math"

// HalfStarAverage is the mean of the given review ratings rounded to
// the nearest half star: round(mean*2)/2. Ties round half away from
// zero, so a mean of 2.25 becomes 2.5. Returns 0 when there are no
// reviews; callers treat that as "no rating yet", not a real score.
func HalfStarAverage(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	mean := float64(total) / float64(len(reviews))
	return math.Round(mean*2) / 2
}
