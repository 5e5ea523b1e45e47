package scoring

// Product lifecycle statuses.
const (
	StatusMonitoring = "MONITORING"
	StatusViral      = "VIRAL"
	StatusDeclined   = "DECLINED"
)

// Classify maps (score, growth) to a lifecycle status. The rules are evaluated
// in order, first match wins:
//
//  1. score >= 75                                  -> VIRAL
//  2. score < 40 and avg(views,likes,sales) < -10  -> DECLINED
//  3. otherwise                                    -> MONITORING
//
// There is no hysteresis: a product may flip status on every cycle.
func Classify(score float64, g Growth) string {
	if score >= 75 {
		return StatusViral
	}
	avg := (g.Views + g.Likes + g.Sales) / 3
	if score < 40 && avg < -10 {
		return StatusDeclined
	}
	return StatusMonitoring
}
