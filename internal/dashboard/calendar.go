package dashboard

import (
	"math"
	"time"
)

const isoDate = "2006-01-02"

// startOfDay returns midnight of t's calendar day in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// monthBounds returns the first instant and the last whole second of the
// calendar month offset months away from t.
func monthBounds(t time.Time, offset int) (start, end time.Time) {
	y, m, _ := t.Date()
	start = time.Date(y, m+time.Month(offset), 1, 0, 0, 0, 0, t.Location())
	last := start.AddDate(0, 1, -1)
	end = time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 0, t.Location())
	return start, end
}

// dateKey formats t's calendar day in loc.
func dateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(isoDate)
}

// roundHalfUp rounds x to the given number of decimals, halves toward +Inf.
func roundHalfUp(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(x*p+0.5) / p
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
