package service

import (
	"math"
	"testing"
)

func TestScore_KnownValues(t *testing.T) {
	tests := []struct {
		name       string
		rating     float64
		experience int
		workload   int64
		expected   float64
	}{
		{
			name:       "seasoned painter with moderate rating",
			rating:     4.0,
			experience: 8,
			workload:   0,
			expected:   0.84,
		},
		{
			name:       "higher rating loses to experience edge",
			rating:     4.5,
			experience: 5,
			workload:   0,
			expected:   0.8,
		},
		{
			name:       "perfect painter, idle",
			rating:     5.0,
			experience: 10,
			workload:   0,
			expected:   1.0,
		},
		{
			name:       "perfect painter, saturated workload",
			rating:     5.0,
			experience: 10,
			workload:   10,
			expected:   0.8,
		},
		{
			name:       "experience clamps at ten years",
			rating:     5.0,
			experience: 40,
			workload:   0,
			expected:   1.0,
		},
		{
			name:       "workload clamps past ten bookings",
			rating:     0,
			experience: 0,
			workload:   50,
			expected:   0,
		},
		{
			name:       "zero everything keeps workload bonus",
			rating:     0,
			experience: 0,
			workload:   0,
			expected:   0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.rating, tt.experience, tt.workload)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Score(%v, %d, %d) = %v, expected %v",
					tt.rating, tt.experience, tt.workload, got, tt.expected)
			}
		})
	}
}

func TestScore_MonotonicInRating(t *testing.T) {
	prev := -1.0
	for rating := 0.0; rating <= 5.0; rating += 0.5 {
		got := Score(rating, 5, 3)
		if got < prev {
			t.Fatalf("score decreased when rating rose to %v: %v < %v", rating, got, prev)
		}
		prev = got
	}
}

func TestScore_MonotonicInWorkload(t *testing.T) {
	prev := 2.0
	for workload := int64(0); workload <= 15; workload++ {
		got := Score(4.0, 5, workload)
		if got > prev {
			t.Fatalf("score increased when workload rose to %d: %v > %v", workload, got, prev)
		}
		prev = got
	}
}

func TestScore_Bounded(t *testing.T) {
	inputs := []struct {
		rating     float64
		experience int
		workload   int64
	}{
		{-3, -5, -2},
		{100, 1000, 0},
		{5, 10, 0},
		{0, 0, 1000},
	}
	for _, in := range inputs {
		got := Score(in.rating, in.experience, in.workload)
		if got < 0 || got > 1 {
			t.Errorf("Score(%v, %d, %d) = %v, out of [0, 1]", in.rating, in.experience, in.workload, got)
		}
	}
}
