package service

import (
	"context"
	"sort"
	"time"

	"paintly/pkg/model"
)

// temporalDistance measures how far a slot sits from the requested
// interval. Overlapping slots score zero; otherwise it is the gap
// between the nearer edges.
func temporalDistance(slot model.Slot, start, end time.Time) time.Duration {
	if slot.Overlaps(start, end) {
		return 0
	}
	if !slot.EndTime.After(start) {
		return start.Sub(slot.EndTime)
	}
	return slot.StartTime.Sub(end)
}

// findAlternatives searches a widened window around the requested interval
// and ranks free slots by temporal proximity. Slots whose painter profile
// cannot be resolved are skipped.
func (s *matcherService) findAlternatives(ctx context.Context, start, end time.Time) ([]RankedSlot, error) {
	windowStart := start.Add(-s.cfg.AltSearchBefore)
	windowEnd := end.Add(s.cfg.AltSearchAfter)

	slots, err := s.slots.FindFreeNear(ctx, windowStart, windowEnd, s.cfg.AltCandidateLimit)
	if err != nil {
		return nil, err
	}

	painters := make(map[string]*model.PainterProfile)
	ranked := make([]RankedSlot, 0, len(slots))
	for _, slot := range slots {
		painter, ok := painters[slot.PainterID]
		if !ok {
			painter, err = s.painters.FindByID(ctx, slot.PainterID)
			if err != nil {
				s.cfg.Log.Warn("Skipping alternative with unresolvable painter",
					"slot_id", slot.ID,
					"painter_id", slot.PainterID,
					"error", err)
				painters[slot.PainterID] = nil
				continue
			}
			painters[slot.PainterID] = painter
		}
		if painter == nil {
			continue
		}

		ranked = append(ranked, RankedSlot{
			SlotID:          slot.ID,
			StartTime:       slot.StartTime,
			EndTime:         slot.EndTime,
			Distance:        temporalDistance(*slot, start, end),
			DistanceSeconds: int64(temporalDistance(*slot, start, end) / time.Second),
			Painter:         painter.Summary(),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Distance != ranked[j].Distance {
			return ranked[i].Distance < ranked[j].Distance
		}
		if !ranked[i].StartTime.Equal(ranked[j].StartTime) {
			return ranked[i].StartTime.Before(ranked[j].StartTime)
		}
		return ranked[i].SlotID < ranked[j].SlotID
	})

	if len(ranked) > s.cfg.MaxAlternatives {
		ranked = ranked[:s.cfg.MaxAlternatives]
	}
	return ranked, nil
}
