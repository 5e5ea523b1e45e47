package scoring

import "github.com/wesleycpo2/spacered-sub000/utils"

// Growth holds percent change per metric against the previous snapshot.
type Growth struct {
	Views    float64 `json:"views"`
	Likes    float64 `json:"likes"`
	Comments float64 `json:"comments"`
	Shares   float64 `json:"shares"`
	Sales    float64 `json:"sales"`
}

// ZeroGrowth is the "no history" policy: a product without a prior snapshot
// has 0 growth on every metric, which is not an error.
func ZeroGrowth() Growth {
	return Growth{}
}

// CalculateGrowth computes percent change per metric, rounded to 2 decimals.
// A previous value of 0 yields 100 when the new value is positive (growth from
// nothing) and 0 otherwise, avoiding division by zero.
func CalculateGrowth(prev, curr Metrics) Growth {
	return Growth{
		Views:    growthPercent(prev.Views, curr.Views),
		Likes:    growthPercent(prev.Likes, curr.Likes),
		Comments: growthPercent(prev.Comments, curr.Comments),
		Shares:   growthPercent(prev.Shares, curr.Shares),
		Sales:    growthPercent(prev.Sales, curr.Sales),
	}
}

func growthPercent(old, new int64) float64 {
	if old == 0 {
		if new > 0 {
			return 100
		}
		return 0
	}
	return utils.RoundFloat(float64(new-old)/float64(old)*100, 2)
}
