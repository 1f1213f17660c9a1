package utils

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{4.005, 4.0},
		{4.456, 4.46},
		{4.454, 4.45},
		{0, 0},
		{3.999999, 4.0},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(150); got != "150.00" {
		t.Fatalf("FormatMoney(150) = %q", got)
	}
	if got := FormatMoney(4.5); got != "4.50" {
		t.Fatalf("FormatMoney(4.5) = %q", got)
	}
}
