package timeutil

import (
	"math"
	"testing"
)

func TestNormalize360(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-10, 350},
		{-370, 350},
	}
	for _, tt := range tests {
		if got := Normalize360(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Normalize360(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalize24(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{23.9, 23.9},
		{24, 0},
		{25.5, 1.5},
		{-1, 23},
	}
	for _, tt := range tests {
		if got := Normalize24(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Normalize24(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrapDeg180(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{179, 179},
		{180, -180},
		{181, -179},
		{-181, 179},
		{359, -1},
		{-359, 1},
	}
	for _, tt := range tests {
		if got := WrapDeg180(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapDeg180(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrapHours12(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{11.5, 11.5},
		{12, -12},
		{13, -11},
		{-13, 11},
		{23.5, -0.5},
	}
	for _, tt := range tests {
		if got := WrapHours12(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapHours12(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampAlt(t *testing.T) {
	if got := ClampAlt(-95); got != -90 {
		t.Errorf("ClampAlt(-95) = %v, want -90", got)
	}
	if got := ClampAlt(95); got != 90 {
		t.Errorf("ClampAlt(95) = %v, want 90", got)
	}
	if got := ClampAlt(45.5); got != 45.5 {
		t.Errorf("ClampAlt(45.5) = %v, want 45.5", got)
	}
}
