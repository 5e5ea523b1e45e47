package scoring

import "testing"

func TestNormalizeMetricBounds(t *testing.T) {
	cases := []struct {
		name  string
		value int64
		max   int64
	}{
		{"zero", 0, MaxViews},
		{"negative", -5, MaxViews},
		{"one", 1, MaxViews},
		{"mid", 50_000, MaxViews},
		{"at max", MaxViews, MaxViews},
		{"above max", MaxViews * 10, MaxViews},
	}
	for _, tc := range cases {
		got := NormalizeMetric(tc.value, tc.max)
		if got < 0 || got > 100 {
			t.Errorf("%s: NormalizeMetric(%d, %d) = %f, out of [0,100]", tc.name, tc.value, tc.max, got)
		}
	}
}

func TestNormalizeMetricZeroAndSaturation(t *testing.T) {
	if got := NormalizeMetric(0, MaxViews); got != 0 {
		t.Fatalf("zero value should normalize to 0, got %f", got)
	}
	if got := NormalizeMetric(-100, MaxViews); got != 0 {
		t.Fatalf("negative value should normalize to 0, got %f", got)
	}
	if got := NormalizeMetric(MaxViews*100, MaxViews); got != 100 {
		t.Fatalf("value far above max should saturate at 100, got %f", got)
	}
}

func TestNormalizeMetricMonotonic(t *testing.T) {
	prev := -1.0
	for _, v := range []int64{1, 10, 100, 10_000, 500_000, 1_000_000} {
		got := NormalizeMetric(v, MaxViews)
		if got <= prev {
			t.Fatalf("NormalizeMetric not increasing at %d: %f <= %f", v, got, prev)
		}
		prev = got
	}
}

func TestViralScoreZeroMetrics(t *testing.T) {
	if got := ViralScore(Metrics{}); got != 0 {
		t.Fatalf("all-zero metrics should score 0, got %f", got)
	}
}

func TestViralScoreSaturated(t *testing.T) {
	m := Metrics{
		Views:    MaxViews * 2,
		Likes:    MaxLikes * 2,
		Comments: MaxComments * 2,
		Shares:   MaxShares * 2,
		Sales:    MaxSales * 2,
	}
	got := ViralScore(m)
	if got != 100 {
		t.Fatalf("fully saturated metrics should score 100, got %f", got)
	}
	if status := Classify(got, ZeroGrowth()); status != StatusViral {
		t.Fatalf("saturated product should classify VIRAL, got %s", status)
	}
}

func TestViralScoreMonotonicInViews(t *testing.T) {
	base := Metrics{Likes: 10_000, Comments: 500, Shares: 1_000, Sales: 200}
	prev := -1.0
	for _, v := range []int64{0, 1_000, 50_000, 500_000, 1_000_000} {
		m := base
		m.Views = v
		got := ViralScore(m)
		if got < prev {
			t.Fatalf("score decreased when views grew to %d: %f < %f", v, got, prev)
		}
		prev = got
	}
}

func TestViralScoreSingleMetricCannotSaturate(t *testing.T) {
	// One runaway metric alone is capped by its weight.
	got := ViralScore(Metrics{Views: MaxViews * 1000})
	if got > WeightViews*100+0.01 {
		t.Fatalf("views alone should cap at %f, got %f", WeightViews*100, got)
	}
}
