package model

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ActiveStatuses are the booking states that count toward a painter's
// workload at scoring time.
var ActiveStatuses = []string{StatusConfirmed, StatusPending}

// Booking records a confirmed match. It consumes exactly one slot; the
// booked interval lies within the slot's bounds but need not equal them.
// Bookings are immutable once written.
type Booking struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	CustomerID string    `json:"customer_id" bson:"customer_id" validate:"required,mongodb"`
	PainterID  string    `json:"painter_id" bson:"painter_id" validate:"required,mongodb"`
	SlotID     string    `json:"slot_id" bson:"slot_id" validate:"required,mongodb"`
	StartTime  time.Time `json:"start_time" bson:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" bson:"end_time" validate:"required,gtfield=StartTime"`
	Status     string    `json:"status" bson:"status" validate:"required,oneof=pending confirmed cancelled"`
	Notes      string    `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,max=500"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// BookingRequest is the customer-facing payload for requesting a match.
type BookingRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Notes     string    `json:"notes,omitempty" validate:"omitempty,max=500"`
}
