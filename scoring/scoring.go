package scoring

import (
	"math"

	"github.com/wesleycpo2/spacered-sub000/utils"
)

// Saturation constants: the raw counter value that maps to a sub-score of 100.
const (
	MaxViews    int64 = 1_000_000
	MaxLikes    int64 = 100_000
	MaxComments int64 = 10_000
	MaxShares   int64 = 50_000
	MaxSales    int64 = 5_000
)

// Weights per metric, summing to 1.0.
const (
	WeightViews    = 0.20
	WeightLikes    = 0.25
	WeightComments = 0.15
	WeightShares   = 0.20
	WeightSales    = 0.20
)

// AlertThreshold is the minimum viral score at which a product qualifies for an
// alert round. It is deliberately lower than the VIRAL status threshold (75).
const AlertThreshold = 70.0

// Metrics holds raw engagement counters. Views on TikTok routinely exceed the
// float64 exact-integer range, so everything is int64.
type Metrics struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
	Sales    int64 `json:"sales"`
}

// NormalizeMetric maps a raw counter onto [0,100] with log compression so a
// single runaway metric cannot dominate linearly. Values at or above max
// saturate at 100; zero or negative values map to 0.
func NormalizeMetric(value, max int64) float64 {
	if value <= 0 {
		return 0
	}
	score := math.Log(float64(value)+1) / math.Log(float64(max)+1) * 100
	return math.Min(score, 100)
}

// ViralScore combines the normalized sub-scores into a single 0-100 score,
// rounded to 2 decimal places. Pure function.
func ViralScore(m Metrics) float64 {
	score := NormalizeMetric(m.Views, MaxViews)*WeightViews +
		NormalizeMetric(m.Likes, MaxLikes)*WeightLikes +
		NormalizeMetric(m.Comments, MaxComments)*WeightComments +
		NormalizeMetric(m.Shares, MaxShares)*WeightShares +
		NormalizeMetric(m.Sales, MaxSales)*WeightSales
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return utils.RoundFloat(score, 2)
}
