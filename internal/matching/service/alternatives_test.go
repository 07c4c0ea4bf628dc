package service

import (
	"context"
	"testing"
	"time"

	profileserrors "paintly/internal/profiles/errors"
	"paintly/pkg/model"
)

func TestTemporalDistance(t *testing.T) {
	start := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		slot     model.Slot
		expected time.Duration
	}{
		{
			name:     "containing slot",
			slot:     model.Slot{StartTime: start.Add(-time.Hour), EndTime: end.Add(time.Hour)},
			expected: 0,
		},
		{
			name:     "partial overlap at the front",
			slot:     model.Slot{StartTime: start.Add(-2 * time.Hour), EndTime: start.Add(30 * time.Minute)},
			expected: 0,
		},
		{
			name:     "slot entirely before",
			slot:     model.Slot{StartTime: start.Add(-5 * time.Hour), EndTime: start.Add(-2 * time.Hour)},
			expected: 2 * time.Hour,
		},
		{
			name:     "slot entirely after",
			slot:     model.Slot{StartTime: end.Add(26 * time.Hour), EndTime: end.Add(30 * time.Hour)},
			expected: 26 * time.Hour,
		},
		{
			name:     "slot ending exactly at request start",
			slot:     model.Slot{StartTime: start.Add(-time.Hour), EndTime: start},
			expected: 0,
		},
		{
			name:     "slot starting exactly at request end",
			slot:     model.Slot{StartTime: end, EndTime: end.Add(time.Hour)},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := temporalDistance(tt.slot, start, end)
			if got != tt.expected {
				t.Errorf("temporalDistance = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestFindAlternatives_OrderingAndCap(t *testing.T) {
	painter := &model.PainterProfile{ID: "68b0000000000000000000a1", Name: "Painter", Rating: 4.0, Experience: 5}

	start := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

	// Seven candidates at increasing distances, returned out of order.
	var candidates []*model.Slot
	for i, offset := range []time.Duration{
		96 * time.Hour,
		24 * time.Hour,
		48 * time.Hour,
		0,
		12 * time.Hour,
		120 * time.Hour,
		72 * time.Hour,
	} {
		slot := &model.Slot{
			ID:        "68b00000000000000000000" + string(rune('a'+i)),
			PainterID: painter.ID,
		}
		if offset == 0 {
			slot.StartTime = start.Add(-time.Hour)
			slot.EndTime = end.Add(time.Hour)
		} else {
			slot.StartTime = end.Add(offset)
			slot.EndTime = end.Add(offset + 2*time.Hour)
		}
		candidates = append(candidates, slot)
	}

	slots := &mockSlotRepository{
		findFreeNearFunc: func(ctx context.Context, windowStart, windowEnd time.Time, limit int) ([]*model.Slot, error) {
			if limit != 25 {
				t.Errorf("expected candidate limit 25, got %d", limit)
			}
			return candidates, nil
		},
	}
	painters := &mockPainterRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.PainterProfile, error) {
			return painter, nil
		},
	}

	svc := newTestMatcher(slots, &mockBookingRepository{}, painters, &mockCustomerRepository{}, nil)

	ranked, err := svc.findAlternatives(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ranked) != 5 {
		t.Fatalf("expected 5 alternatives after capping, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Distance < ranked[i-1].Distance {
			t.Errorf("alternatives out of order at %d: %v after %v", i, ranked[i].Distance, ranked[i-1].Distance)
		}
	}
	if ranked[0].Distance != 0 {
		t.Errorf("expected overlapping slot first, got distance %v", ranked[0].Distance)
	}
}

func TestFindAlternatives_TieBreaksOnStartTime(t *testing.T) {
	painter := &model.PainterProfile{ID: "68b0000000000000000000a1", Rating: 4.0, Experience: 5}

	start := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

	// Same distance on both sides of the request: one slot ends 2h before
	// the start, the other begins 2h after the end.
	before := &model.Slot{
		ID:        "68b0000000000000000000e2",
		PainterID: painter.ID,
		StartTime: start.Add(-4 * time.Hour),
		EndTime:   start.Add(-2 * time.Hour),
	}
	after := &model.Slot{
		ID:        "68b0000000000000000000e1",
		PainterID: painter.ID,
		StartTime: end.Add(2 * time.Hour),
		EndTime:   end.Add(4 * time.Hour),
	}

	slots := &mockSlotRepository{
		findFreeNearFunc: func(ctx context.Context, windowStart, windowEnd time.Time, limit int) ([]*model.Slot, error) {
			return []*model.Slot{after, before}, nil
		},
	}
	painters := &mockPainterRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.PainterProfile, error) {
			return painter, nil
		},
	}

	svc := newTestMatcher(slots, &mockBookingRepository{}, painters, &mockCustomerRepository{}, nil)

	ranked, err := svc.findAlternatives(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(ranked))
	}
	if ranked[0].SlotID != before.ID {
		t.Errorf("expected earlier slot first on equal distance, got %s", ranked[0].SlotID)
	}
}

func TestFindAlternatives_SkipsUnresolvablePainters(t *testing.T) {
	painter := &model.PainterProfile{ID: "68b0000000000000000000a1", Rating: 4.0, Experience: 5}

	start := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

	good := &model.Slot{
		ID:        "68b0000000000000000000e1",
		PainterID: painter.ID,
		StartTime: end.Add(time.Hour),
		EndTime:   end.Add(3 * time.Hour),
	}
	orphan := &model.Slot{
		ID:        "68b0000000000000000000e2",
		PainterID: "68b0000000000000000000ff",
		StartTime: end.Add(time.Hour),
		EndTime:   end.Add(3 * time.Hour),
	}

	slots := &mockSlotRepository{
		findFreeNearFunc: func(ctx context.Context, windowStart, windowEnd time.Time, limit int) ([]*model.Slot, error) {
			return []*model.Slot{good, orphan}, nil
		},
	}
	painters := &mockPainterRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.PainterProfile, error) {
			if id == painter.ID {
				return painter, nil
			}
			return nil, profileserrors.ErrPainterNotFound
		},
	}

	svc := newTestMatcher(slots, &mockBookingRepository{}, painters, &mockCustomerRepository{}, nil)

	ranked, err := svc.findAlternatives(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("expected the orphan slot to be skipped, got %d alternatives", len(ranked))
	}
	if ranked[0].SlotID != good.ID {
		t.Errorf("expected slot %s, got %s", good.ID, ranked[0].SlotID)
	}
}
