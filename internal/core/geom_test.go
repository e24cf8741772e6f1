package core

import "testing"

func TestRectClip(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"inside", NewRect(2, 3, 4, 5), NewRect(2, 3, 4, 5)},
		{"left overhang", NewRect(-3, 0, 5, 2), NewRect(0, 0, 2, 2)},
		{"bottom right overhang", NewRect(8, 8, 5, 5), NewRect(8, 8, 2, 2)},
		{"covers screen", NewRect(-5, -5, 30, 30), NewRect(0, 0, 10, 10)},
		{"off screen", NewRect(12, 0, 3, 3), Rect{}},
		{"touching edge", NewRect(10, 0, 3, 3), Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Clip(10, 10); got != tc.expected {
				t.Errorf("Clip() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{}).Empty() {
		t.Error("zero rect should be empty")
	}
	if NewRect(0, 0, 1, 1).Empty() {
		t.Error("1x1 rect should not be empty")
	}
	if !NewRect(0, 0, 4, -1).Empty() {
		t.Error("negative height should be empty")
	}
}

func TestCentered(t *testing.T) {
	r := Centered(10, 5, 80, 24)
	if r.X != 35 || r.Y != 9 {
		t.Errorf("Centered origin = (%d, %d), expected (35, 9)", r.X, r.Y)
	}
	if r.Right() != 45 || r.Bottom() != 14 {
		t.Errorf("Centered edges = (%d, %d), expected (45, 14)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{-1, -1, 1, -1},
		{2, -1, 1, 1},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := Clamp(1.5, 0.0, 1.0); got != 1.0 {
		t.Errorf("Clamp(1.5, 0, 1) = %f, expected 1", got)
	}
}
