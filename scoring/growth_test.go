package scoring

import "testing"

func TestCalculateGrowthBasic(t *testing.T) {
	prev := Metrics{Views: 1000, Likes: 200, Comments: 50, Shares: 10, Sales: 4}
	curr := Metrics{Views: 1500, Likes: 100, Comments: 50, Shares: 20, Sales: 8}
	g := CalculateGrowth(prev, curr)

	if g.Views != 50 {
		t.Errorf("views growth: got %f, want 50", g.Views)
	}
	if g.Likes != -50 {
		t.Errorf("likes growth: got %f, want -50", g.Likes)
	}
	if g.Comments != 0 {
		t.Errorf("comments growth: got %f, want 0", g.Comments)
	}
	if g.Shares != 100 {
		t.Errorf("shares growth: got %f, want 100", g.Shares)
	}
	if g.Sales != 100 {
		t.Errorf("sales growth: got %f, want 100", g.Sales)
	}
}

func TestCalculateGrowthFromZero(t *testing.T) {
	g := CalculateGrowth(Metrics{}, Metrics{Views: 500, Likes: 0})
	if g.Views != 100 {
		t.Errorf("growth from zero to positive should be 100, got %f", g.Views)
	}
	if g.Likes != 0 {
		t.Errorf("zero to zero should be 0, got %f", g.Likes)
	}
}

func TestCalculateGrowthToZero(t *testing.T) {
	g := CalculateGrowth(Metrics{Views: 400}, Metrics{Views: 0})
	if g.Views != -100 {
		t.Errorf("drop to zero should be -100, got %f", g.Views)
	}
}

func TestZeroGrowth(t *testing.T) {
	g := ZeroGrowth()
	if g.Views != 0 || g.Likes != 0 || g.Comments != 0 || g.Shares != 0 || g.Sales != 0 {
		t.Fatalf("ZeroGrowth should be all zeros, got %+v", g)
	}
}
