package service

import (
	"context"
	"errors"
	"time"

	availabilityerrors "paintly/internal/availability/errors"
	"paintly/internal/availability/repository"
	"paintly/internal/availability/validator"
	profileserrors "paintly/internal/profiles/errors"
	profilesrepo "paintly/internal/profiles/repository"
	"paintly/pkg/config"
	apperrors "paintly/pkg/errors"
	"paintly/pkg/model"
)

type AvailabilityService interface {
	AddSlot(ctx context.Context, painterUserID string, start, end time.Time) (*model.Slot, error)
	ListForPainter(ctx context.Context, painterUserID string) ([]*model.Slot, error)
	RemoveSlot(ctx context.Context, painterUserID, slotID string) error
}

type availabilityService struct {
	slots     repository.SlotRepository
	painters  profilesrepo.PainterRepository
	validator *validator.SlotValidator
	cfg       *config.Config
}

func NewAvailabilityService(
	slots repository.SlotRepository,
	painters profilesrepo.PainterRepository,
	validator *validator.SlotValidator,
	cfg *config.Config,
) AvailabilityService {
	return &availabilityService{
		slots:     slots,
		painters:  painters,
		validator: validator,
		cfg:       cfg,
	}
}

// AddSlot validates only the interval. Overlap with the painter's existing
// slots is permitted; the matcher treats each slot independently.
func (s *availabilityService) AddSlot(ctx context.Context, painterUserID string, start, end time.Time) (*model.Slot, error) {
	if !end.After(start) {
		return nil, apperrors.InvalidInput(availabilityerrors.ErrInvalidRange.Error())
	}

	painter, err := s.resolvePainter(ctx, painterUserID)
	if err != nil {
		return nil, err
	}

	slot := &model.Slot{
		PainterID: painter.ID,
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
	}

	if err := s.validator.Validate(slot); err != nil {
		s.cfg.Log.Warn("Slot validation failed", "painter_id", painter.ID, "error", err)
		return nil, apperrors.Validation("Slot validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.slots.Create(ctx, slot); err != nil {
		s.cfg.Log.Error("Failed to create slot", "painter_id", painter.ID, "error", err)
		return nil, apperrors.Internal("Failed to create availability slot", err)
	}

	s.cfg.Log.Info("Availability slot created",
		"id", slot.ID,
		"painter_id", painter.ID,
		"start_time", slot.StartTime,
		"end_time", slot.EndTime,
	)
	return slot, nil
}

func (s *availabilityService) ListForPainter(ctx context.Context, painterUserID string) ([]*model.Slot, error) {
	painter, err := s.resolvePainter(ctx, painterUserID)
	if err != nil {
		return nil, err
	}

	slots, err := s.slots.FindByPainter(ctx, painter.ID)
	if err != nil {
		s.cfg.Log.Error("Failed to list painter slots", "painter_id", painter.ID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve availability", err)
	}

	return slots, nil
}

// RemoveSlot deletes a free slot owned by the caller. Booked slots are
// immutable history and respond with a conflict.
func (s *availabilityService) RemoveSlot(ctx context.Context, painterUserID, slotID string) error {
	if slotID == "" {
		return apperrors.InvalidInput("Slot ID cannot be empty")
	}

	painter, err := s.resolvePainter(ctx, painterUserID)
	if err != nil {
		return err
	}

	slot, err := s.slots.FindByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, availabilityerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Slot", slotID)
		}
		if errors.Is(err, availabilityerrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid slot ID format")
		}
		return apperrors.Internal("Failed to check slot existence", err)
	}

	if slot.PainterID != painter.ID {
		return apperrors.Forbidden(availabilityerrors.ErrNotOwned.Error())
	}
	if slot.IsBooked {
		return apperrors.Conflict(availabilityerrors.ErrAlreadyBooked.Error())
	}

	if err := s.slots.Delete(ctx, slotID); err != nil {
		if errors.Is(err, availabilityerrors.ErrAlreadyBooked) {
			// Booked between the check above and the delete.
			return apperrors.Conflict(availabilityerrors.ErrAlreadyBooked.Error())
		}
		if errors.Is(err, availabilityerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Slot", slotID)
		}
		s.cfg.Log.Error("Failed to delete slot", "id", slotID, "error", err)
		return apperrors.Internal("Failed to delete availability slot", err)
	}

	s.cfg.Log.Info("Availability slot deleted", "id", slotID, "painter_id", painter.ID)
	return nil
}

func (s *availabilityService) resolvePainter(ctx context.Context, userID string) (*model.PainterProfile, error) {
	painter, err := s.painters.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileserrors.ErrPainterNotFound) {
			return nil, apperrors.NotFoundWithID("Painter profile", userID)
		}
		return nil, apperrors.Internal("Failed to resolve painter profile", err)
	}
	return painter, nil
}
