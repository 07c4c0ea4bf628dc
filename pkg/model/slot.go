package model

import "time"

// Slot is a painter-owned availability window. IsBooked transitions only
// false -> true, exactly once, when the matcher consumes the slot.
type Slot struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	PainterID string    `json:"painter_id" bson:"painter_id" validate:"required,mongodb"`
	StartTime time.Time `json:"start_time" bson:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" bson:"end_time" validate:"required,gtfield=StartTime"`
	IsBooked  bool      `json:"is_booked" bson:"is_booked"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// Contains reports whether the slot's interval fully covers [start, end].
func (s *Slot) Contains(start, end time.Time) bool {
	return !s.StartTime.After(start) && !s.EndTime.Before(end)
}

// Overlaps reports whether the slot's interval intersects [start, end).
func (s *Slot) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && s.EndTime.After(start)
}
