package core

import (
	"testing"
	"time"
)

func TestTickDuration(t *testing.T) {
	testCases := []struct {
		rate     int
		expected time.Duration
	}{
		{0, time.Second / DefaultTickRate},
		{-5, time.Second / DefaultTickRate},
		{10, 100 * time.Millisecond},
		{1000, time.Second / MaxTickRate},
	}
	for _, tc := range testCases {
		got := RuntimeConfig{TickRate: tc.rate}.TickDuration()
		if got != tc.expected {
			t.Errorf("TickDuration(rate=%d) = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}
