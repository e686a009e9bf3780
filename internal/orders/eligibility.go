package orders

import "time"

// ReturnWindow is how long after placement an order may still be returned.
const ReturnWindow = 7 * 24 * time.Hour

// CanReturn reports whether an order placed at placedAt is still inside the
// return window at now. Only elapsed time counts; the order status does not.
func CanReturn(placedAt, now time.Time) bool {
	return now.Sub(placedAt) <= ReturnWindow
}

// ReturnDeadline is the last instant at which CanReturn holds.
func ReturnDeadline(placedAt time.Time) time.Time {
	return placedAt.Add(ReturnWindow)
}
