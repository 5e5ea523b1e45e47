package utils

import "testing"

func TestFormatCount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1_000, "1K"},
		{1_200, "1.2K"},
		{15_500, "15.5K"},
		{1_000_000, "1M"},
		{1_200_000, "1.2M"},
		{2_500_000_000, "2.5B"},
	}
	for _, tc := range cases {
		if got := FormatCount(tc.in); got != tc.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRoundFloat(t *testing.T) {
	if got := RoundFloat(82.4567, 2); got != 82.46 {
		t.Errorf("RoundFloat(82.4567, 2) = %f, want 82.46", got)
	}
	if got := RoundFloat(-10.005, 1); got != -10.0 {
		t.Errorf("RoundFloat(-10.005, 1) = %f, want -10.0", got)
	}
}
