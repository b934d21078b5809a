package analytics

import "time"

// monthsBetween is the whole-month distance from t back to ref. Day of
// month is ignored: a record from the 31st and one from the 1st of the
// same month land in the same bucket.
func monthsBetween(ref, t time.Time) int {
	return (ref.Year()-t.Year())*12 + int(ref.Month()) - int(t.Month())
}

// CountByMonth buckets records into a window-month histogram of
// creation counts relative to ref. Index 0 is the oldest month in the
// window, the last index the month containing ref. Records outside the
// window are silently excluded and empty months stay zero.
func CountByMonth[T any](records []T, createdAt func(T) time.Time, ref time.Time, window int) []int {
	buckets := make([]int, window)
	for _, r := range records {
		monthsAgo := monthsBetween(ref, createdAt(r))
		if monthsAgo >= 0 && monthsAgo < window {
			buckets[window-1-monthsAgo]++
		}
	}
	return buckets
}

// SumByMonth is CountByMonth with a numeric field summed per bucket
// instead of counting records.
func SumByMonth[T any](records []T, createdAt func(T) time.Time, value func(T) float64, ref time.Time, window int) []float64 {
	buckets := make([]float64, window)
	for _, r := range records {
		monthsAgo := monthsBetween(ref, createdAt(r))
		if monthsAgo >= 0 && monthsAgo < window {
			buckets[window-1-monthsAgo] += value(r)
		}
	}
	return buckets
}
