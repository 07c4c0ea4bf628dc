package service

import (
	"context"
	"errors"

	profileserrors "paintly/internal/profiles/errors"
	"paintly/internal/profiles/repository"
	"paintly/internal/profiles/validator"
	"paintly/pkg/config"
	apperrors "paintly/pkg/errors"
	"paintly/pkg/model"
	"paintly/pkg/sanitizer"
)

type ProfileService interface {
	CreatePainter(ctx context.Context, profile *model.PainterProfile) error
	CreateCustomer(ctx context.Context, profile *model.CustomerProfile) error
	GetPainterByUserID(ctx context.Context, userID string) (*model.PainterProfile, error)
	GetCustomerByUserID(ctx context.Context, userID string) (*model.CustomerProfile, error)
}

type profileService struct {
	painters  repository.PainterRepository
	customers repository.CustomerRepository
	validator *validator.ProfileValidator
	cfg       *config.Config
}

func NewProfileService(
	painters repository.PainterRepository,
	customers repository.CustomerRepository,
	validator *validator.ProfileValidator,
	cfg *config.Config,
) ProfileService {
	return &profileService{
		painters:  painters,
		customers: customers,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *profileService) CreatePainter(ctx context.Context, profile *model.PainterProfile) error {
	profile.Name = sanitizer.NormalizeName(profile.Name)
	profile.Specialties = sanitizer.NormalizeSpecialties(profile.Specialties)

	if err := s.validator.ValidatePainter(profile); err != nil {
		s.cfg.Log.Warn("Painter profile validation failed", "error", err)
		return apperrors.Validation("Painter profile validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.painters.Create(ctx, profile); err != nil {
		if errors.Is(err, profileserrors.ErrAlreadyExists) {
			return apperrors.Conflict("A painter profile already exists for this identity")
		}
		s.cfg.Log.Error("Failed to create painter profile", "user_id", profile.UserID, "error", err)
		return apperrors.Internal("Failed to create painter profile", err)
	}

	s.cfg.Log.Info("Painter profile created", "id", profile.ID, "user_id", profile.UserID)
	return nil
}

func (s *profileService) CreateCustomer(ctx context.Context, profile *model.CustomerProfile) error {
	profile.Name = sanitizer.NormalizeName(profile.Name)

	if err := s.validator.ValidateCustomer(profile); err != nil {
		s.cfg.Log.Warn("Customer profile validation failed", "error", err)
		return apperrors.Validation("Customer profile validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.customers.Create(ctx, profile); err != nil {
		if errors.Is(err, profileserrors.ErrAlreadyExists) {
			return apperrors.Conflict("A customer profile already exists for this identity")
		}
		s.cfg.Log.Error("Failed to create customer profile", "user_id", profile.UserID, "error", err)
		return apperrors.Internal("Failed to create customer profile", err)
	}

	s.cfg.Log.Info("Customer profile created", "id", profile.ID, "user_id", profile.UserID)
	return nil
}

func (s *profileService) GetPainterByUserID(ctx context.Context, userID string) (*model.PainterProfile, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("User ID cannot be empty")
	}

	profile, err := s.painters.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileserrors.ErrPainterNotFound) {
			return nil, apperrors.NotFoundWithID("Painter profile", userID)
		}
		return nil, apperrors.Internal("Failed to retrieve painter profile", err)
	}

	return profile, nil
}

func (s *profileService) GetCustomerByUserID(ctx context.Context, userID string) (*model.CustomerProfile, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("User ID cannot be empty")
	}

	profile, err := s.customers.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileserrors.ErrCustomerNotFound) {
			return nil, apperrors.NotFoundWithID("Customer profile", userID)
		}
		return nil, apperrors.Internal("Failed to retrieve customer profile", err)
	}

	return profile, nil
}
