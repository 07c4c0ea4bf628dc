package service

import (
	"context"
	"errors"
	"time"

	availabilityerrors "paintly/internal/availability/errors"
	availabilityrepo "paintly/internal/availability/repository"
	"paintly/internal/matching/repository"
	profileserrors "paintly/internal/profiles/errors"
	profilesrepo "paintly/internal/profiles/repository"
	"paintly/pkg/config"
	apperrors "paintly/pkg/errors"
	"paintly/pkg/events"
	"paintly/pkg/model"
	"paintly/pkg/sanitizer"
)

// matchAttempts bounds the claim loop: one initial attempt plus one retry
// after losing a booking race.
const matchAttempts = 2

type MatcherService interface {
	RequestBooking(ctx context.Context, customerUserID string, req *model.BookingRequest) (*MatchOutcome, error)
	ListForCustomer(ctx context.Context, customerUserID string) ([]*model.Booking, error)
	ListForPainter(ctx context.Context, painterUserID string) ([]*model.Booking, error)
}

type matcherService struct {
	slots     availabilityrepo.SlotRepository
	bookings  repository.BookingRepository
	painters  profilesrepo.PainterRepository
	customers profilesrepo.CustomerRepository
	publisher events.Publisher
	cfg       *config.Config
}

func NewMatcherService(
	slots availabilityrepo.SlotRepository,
	bookings repository.BookingRepository,
	painters profilesrepo.PainterRepository,
	customers profilesrepo.CustomerRepository,
	publisher events.Publisher,
	cfg *config.Config,
) MatcherService {
	return &matcherService{
		slots:     slots,
		bookings:  bookings,
		painters:  painters,
		customers: customers,
		publisher: publisher,
		cfg:       cfg,
	}
}

// candidate is a slot joined with its painter's profile and current
// workload, ready for scoring.
type candidate struct {
	slot     *model.Slot
	painter  *model.PainterProfile
	workload int64
	score    float64
}

// RequestBooking finds the best free slot containing the requested
// interval and claims it atomically. When no slot qualifies, or the
// claim race is lost twice, it returns ranked alternatives instead.
func (s *matcherService) RequestBooking(ctx context.Context, customerUserID string, req *model.BookingRequest) (*MatchOutcome, error) {
	start := req.StartTime.UTC()
	end := req.EndTime.UTC()
	if !end.After(start) {
		return nil, apperrors.InvalidInput("end_time must be after start_time")
	}

	customer, err := s.customers.FindByUserID(ctx, customerUserID)
	if err != nil {
		if errors.Is(err, profileserrors.ErrCustomerNotFound) {
			return nil, apperrors.NotFoundWithID("customer profile", customerUserID)
		}
		s.cfg.Log.Error("Failed to resolve customer", "user_id", customerUserID, "error", err)
		return nil, apperrors.Internal("Failed to resolve customer profile", err)
	}

	notes := sanitizer.NormalizeNotes(req.Notes)

	for attempt := 1; attempt <= matchAttempts; attempt++ {
		best, err := s.selectBest(ctx, start, end)
		if err != nil {
			return nil, err
		}
		if best == nil {
			break
		}

		booking, err := s.claim(ctx, customer.ID, best, start, end, notes)
		if err != nil {
			if errors.Is(err, availabilityerrors.ErrAlreadyBooked) {
				s.cfg.Log.Info("Lost booking race, reselecting",
					"slot_id", best.slot.ID,
					"attempt", attempt,
				)
				continue
			}
			s.cfg.Log.Error("Booking transaction failed", "slot_id", best.slot.ID, "error", err)
			return nil, apperrors.Internal("Failed to book slot", err)
		}

		s.publishConfirmed(ctx, booking)

		s.cfg.Log.Info("Booking confirmed",
			"booking_id", booking.ID,
			"slot_id", best.slot.ID,
			"painter_id", best.painter.ID,
			"customer_id", customer.ID,
			"score", best.score,
		)
		return &MatchOutcome{Booking: &BookingConfirmation{
			Booking: *booking,
			Painter: best.painter.Summary(),
		}}, nil
	}

	alternatives, err := s.findAlternatives(ctx, start, end)
	if err != nil {
		s.cfg.Log.Error("Alternative search failed", "error", err)
		return nil, apperrors.Internal("Failed to search alternatives", err)
	}

	s.cfg.Log.Info("No availability for requested interval",
		"customer_id", customer.ID,
		"start_time", start,
		"end_time", end,
		"alternatives", len(alternatives),
	)
	return &MatchOutcome{Alternatives: alternatives}, nil
}

// selectBest scores every free slot containing [start, end] and returns
// the highest-scoring candidate, or nil when none exist. Ties go to the
// lowest slot ID so selection is deterministic.
func (s *matcherService) selectBest(ctx context.Context, start, end time.Time) (*candidate, error) {
	slots, err := s.slots.FindFreeContaining(ctx, start, end)
	if err != nil {
		s.cfg.Log.Error("Containment query failed", "error", err)
		return nil, apperrors.Internal("Failed to query availability", err)
	}
	if len(slots) == 0 {
		return nil, nil
	}

	painters := make(map[string]*model.PainterProfile)
	workloads := make(map[string]int64)

	var best *candidate
	for _, slot := range slots {
		painter, ok := painters[slot.PainterID]
		if !ok {
			painter, err = s.painters.FindByID(ctx, slot.PainterID)
			if err != nil {
				if errors.Is(err, profileserrors.ErrPainterNotFound) || errors.Is(err, profileserrors.ErrInvalidID) {
					s.cfg.Log.Warn("Skipping slot with unresolvable painter",
						"slot_id", slot.ID,
						"painter_id", slot.PainterID,
					)
					painters[slot.PainterID] = nil
					continue
				}
				return nil, apperrors.Internal("Failed to load painter profile", err)
			}
			painters[slot.PainterID] = painter

			workload, err := s.bookings.CountActiveByPainter(ctx, slot.PainterID)
			if err != nil {
				return nil, apperrors.Internal("Failed to count painter workload", err)
			}
			workloads[slot.PainterID] = workload
		}
		if painter == nil {
			continue
		}

		c := &candidate{
			slot:     slot,
			painter:  painter,
			workload: workloads[slot.PainterID],
		}
		c.score = Score(painter.Rating, painter.Experience, c.workload)

		if best == nil ||
			c.score > best.score ||
			(c.score == best.score && c.slot.ID < best.slot.ID) {
			best = c
		}
	}

	return best, nil
}

// claim flips the slot and records the booking inside one transaction.
// The conditional update guarantees exactly one request wins a slot even
// under concurrent identical requests.
func (s *matcherService) claim(ctx context.Context, customerID string, best *candidate, start, end time.Time, notes string) (*model.Booking, error) {
	booking := &model.Booking{
		CustomerID: customerID,
		PainterID:  best.painter.ID,
		SlotID:     best.slot.ID,
		StartTime:  start,
		EndTime:    end,
		Status:     model.StatusConfirmed,
		Notes:      notes,
	}

	err := s.slots.ExecuteTransaction(ctx, func(sessCtx context.Context) error {
		if err := s.slots.MarkBooked(sessCtx, best.slot.ID); err != nil {
			return err
		}
		return s.bookings.Create(sessCtx, booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// publishConfirmed emits the audit event after commit. Delivery failure
// is logged, never surfaced; the booking already happened.
func (s *matcherService) publishConfirmed(ctx context.Context, booking *model.Booking) {
	event := events.BookingConfirmed{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		PainterID:  booking.PainterID,
		SlotID:     booking.SlotID,
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishBookingConfirmed(context.WithoutCancel(ctx), event); err != nil {
		s.cfg.Log.Error("Failed to publish booking event", "booking_id", booking.ID, "error", err)
	}
}

func (s *matcherService) ListForCustomer(ctx context.Context, customerUserID string) ([]*model.Booking, error) {
	customer, err := s.customers.FindByUserID(ctx, customerUserID)
	if err != nil {
		if errors.Is(err, profileserrors.ErrCustomerNotFound) {
			return nil, apperrors.NotFoundWithID("customer profile", customerUserID)
		}
		return nil, apperrors.Internal("Failed to resolve customer profile", err)
	}

	bookings, err := s.bookings.FindByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, apperrors.Internal("Failed to list bookings", err)
	}
	return bookings, nil
}

func (s *matcherService) ListForPainter(ctx context.Context, painterUserID string) ([]*model.Booking, error) {
	painter, err := s.painters.FindByUserID(ctx, painterUserID)
	if err != nil {
		if errors.Is(err, profileserrors.ErrPainterNotFound) {
			return nil, apperrors.NotFoundWithID("painter profile", painterUserID)
		}
		return nil, apperrors.Internal("Failed to resolve painter profile", err)
	}

	bookings, err := s.bookings.FindByPainter(ctx, painter.ID)
	if err != nil {
		return nil, apperrors.Internal("Failed to list bookings", err)
	}
	return bookings, nil
}
