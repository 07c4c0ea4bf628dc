package validator

import (
	"errors"
	"fmt"
	"strings"

	"paintly/pkg/logger"
	"paintly/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type ProfileValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewProfileValidator(log *logger.Logger) *ProfileValidator {
	v := validator.New()

	if err := v.RegisterValidation("specialties", validateSpecialties); err != nil {
		log.Fatal("Failed to register 'specialties' validator", "error", err)
	}

	return &ProfileValidator{
		validate: v,
		logger:   log,
	}
}

// validateSpecialties accepts up to 20 non-empty, reasonably short labels.
func validateSpecialties(fl validator.FieldLevel) bool {
	labels, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}

	if len(labels) > 20 {
		return false
	}

	for _, label := range labels {
		if label == "" || len(label) > 50 {
			return false
		}
	}
	return true
}

func (v *ProfileValidator) ValidatePainter(profile *model.PainterProfile) error {
	if err := v.validate.Struct(profile); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *ProfileValidator) ValidateCustomer(profile *model.CustomerProfile) error {
	if err := v.validate.Struct(profile); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "e164":
			message = fmt.Sprintf("%s must be in E.164 format (e.g., +12025550123)", err.Field())
		case "specialties":
			message = fmt.Sprintf("%s must be at most 20 non-empty labels of up to 50 characters", err.Field())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
