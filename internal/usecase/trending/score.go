package trending

import (
	"math"
	"time"
)

const (
	weightViews    = 1
	weightLikes    = 2
	weightComments = 3

	freshnessFloor = 0.5
	decayPerDay    = 0.1
)

// Score computes the trending score of an article at the given instant.
// Engagement is weighted by depth (comments > likes > views) and the sum
// decays linearly by 10% per whole day of age, never below 50%. Age is
// truncated to whole days: an article published 23 hours ago is day zero
// and keeps full freshness.
func Score(views, likes, comments int64, publishedAt, now time.Time) float64 {
	daysOld := int64(now.Sub(publishedAt) / (24 * time.Hour))
	freshness := math.Max(freshnessFloor, 1.0-decayPerDay*float64(daysOld))
	engagement := float64(weightViews*views + weightLikes*likes + weightComments*comments)
	return engagement * freshness
}
