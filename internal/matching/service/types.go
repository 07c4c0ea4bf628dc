package service

import (
	"time"

	"paintly/pkg/model"
)

// MatchOutcome is the tagged result of a booking request: either a
// confirmed booking or a ranked list of alternatives, never both. The
// no-availability case is a successful computation, not an error.
type MatchOutcome struct {
	Booking      *BookingConfirmation
	Alternatives []RankedSlot
}

func (o *MatchOutcome) Matched() bool {
	return o.Booking != nil
}

// BookingConfirmation pairs the committed booking with a denormalized
// painter summary for immediate display.
type BookingConfirmation struct {
	Booking model.Booking        `json:"booking"`
	Painter model.PainterSummary `json:"painter"`
}

// RankedSlot is an alternative suggestion: a free slot near the requested
// interval. Start and end are the slot's own bounds, not the request's.
type RankedSlot struct {
	SlotID          string               `json:"slot_id"`
	StartTime       time.Time            `json:"start_time"`
	EndTime         time.Time            `json:"end_time"`
	Distance        time.Duration        `json:"-"`
	DistanceSeconds int64                `json:"distance_seconds"`
	Painter         model.PainterSummary `json:"painter"`
}
