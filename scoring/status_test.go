package scoring

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		score  float64
		growth Growth
		want   string
	}{
		{"viral at threshold", 75, ZeroGrowth(), StatusViral},
		{"viral high", 98.5, Growth{Views: -50, Likes: -50, Sales: -50}, StatusViral},
		{"monitoring mid score", 55, ZeroGrowth(), StatusMonitoring},
		{"monitoring just below viral", 74.99, ZeroGrowth(), StatusMonitoring},
		{"declined low score falling", 30, Growth{Views: -20, Likes: -30, Sales: -15}, StatusDeclined},
		{"low score but stable", 30, ZeroGrowth(), StatusMonitoring},
		{"low score mixed growth", 30, Growth{Views: -40, Likes: 50, Sales: 10}, StatusMonitoring},
		{"score 40 falling stays monitoring", 40, Growth{Views: -50, Likes: -50, Sales: -50}, StatusMonitoring},
		{"zero everything", 0, ZeroGrowth(), StatusMonitoring},
	}
	for _, tc := range cases {
		if got := Classify(tc.score, tc.growth); got != tc.want {
			t.Errorf("%s: Classify(%f, %+v) = %s, want %s", tc.name, tc.score, tc.growth, got, tc.want)
		}
	}
}

func TestClassifyIgnoresCommentsAndShares(t *testing.T) {
	// Only views, likes and sales feed the decline average.
	g := Growth{Comments: -100, Shares: -100}
	if got := Classify(20, g); got != StatusMonitoring {
		t.Fatalf("comments/shares decline alone should not trigger DECLINED, got %s", got)
	}
}
