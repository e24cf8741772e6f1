package core

import (
	"math"
	"testing"
	"time"
)

func TestSanitizeDelta(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		expected float64
	}{
		{"normal frame", 1.0 / 60, 1.0 / 60},
		{"zero", 0, 0},
		{"negative", -0.5, 0},
		{"NaN", math.NaN(), 0},
		{"+Inf", math.Inf(1), 0},
		{"-Inf", math.Inf(-1), 0},
		{"backgrounded tab", 12.5, 12.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeDelta(tc.dt); got != tc.expected {
				t.Errorf("SanitizeDelta(%v) = %v, expected %v", tc.dt, got, tc.expected)
			}
		})
	}
}

func TestFixedClock(t *testing.T) {
	c := NewFixedClock(50)
	for i := 0; i < 3; i++ {
		if got := c.Delta(); got != 0.02 {
			t.Fatalf("Delta() = %v, expected 0.02", got)
		}
	}

	if got := NewFixedClock(0).Delta(); got != 1.0/60 {
		t.Errorf("zero tick rate should fall back to 60, got dt=%v", got)
	}
}

func TestMonotonicClock(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	c := &MonotonicClock{now: func() time.Time { return now }, last: base}

	now = base.Add(250 * time.Millisecond)
	if got := c.Delta(); got != 0.25 {
		t.Errorf("Delta() = %v, expected 0.25", got)
	}

	// A clock that goes backwards yields zero rather than a negative step.
	now = base
	if got := c.Delta(); got != 0 {
		t.Errorf("Delta() after backwards step = %v, expected 0", got)
	}
}
