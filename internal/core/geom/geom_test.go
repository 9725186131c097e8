package geom

import (
	"math"
	"testing"
)

func TestNormalizeAngleRange(t *testing.T) {
	inputs := []float64{
		0, 1, math.Pi, TwoPi, -TwoPi, -0.5, -1e-18, 7 * math.Pi, -13.25, 1e6, -1e6,
	}
	for _, in := range inputs {
		got := NormalizeAngle(in)
		if got < 0 || got >= TwoPi {
			t.Errorf("NormalizeAngle(%v) = %v, want within [0, 2π)", in, got)
		}
	}
}

func TestNormalizeAngleIdempotent(t *testing.T) {
	for _, in := range []float64{-3, -0.1, 0.25, 4, 9.5, 100} {
		once := NormalizeAngle(in)
		twice := NormalizeAngle(once)
		if math.Abs(once-twice) > 1e-12 {
			t.Errorf("NormalizeAngle not idempotent for %v: %v then %v", in, once, twice)
		}
	}
}

func TestNormalizeAngleValues(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: -math.Pi / 2, want: 3 * math.Pi / 2},
		{in: TwoPi + 1, want: 1},
		{in: math.Pi, want: math.Pi},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Point{0, 0}, Point{3, 4}); d != 5 {
		t.Fatalf("Distance = %v, want 5", d)
	}
	if d := Distance(Point{2, 2}, Point{2, 2}); d != 0 {
		t.Fatalf("Distance to self = %v, want 0", d)
	}
}

func TestRadians(t *testing.T) {
	if r := Radians(180); math.Abs(r-math.Pi) > 1e-12 {
		t.Fatalf("Radians(180) = %v", r)
	}
}
