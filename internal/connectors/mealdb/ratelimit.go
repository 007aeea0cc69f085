package mealdb

import "golang.org/x/time/rate"

const (
	// ProactiveRate caps sustained catalog calls in requests per
	// second. The free tier throttles hard above roughly two per
	// second, so stay under it.
	ProactiveRate = 2.0

	// Burst lets a short typing flurry through without waiting.
	Burst = 3
)

// newLimiter builds the proactive throttle for one client. TheMealDB
// sends no quota headers, so there is nothing to react to; pacing
// outbound calls is the whole strategy.
func newLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(ProactiveRate), Burst)
}
