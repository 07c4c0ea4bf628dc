package handler

import (
	"encoding/json"
	"net/http"

	"paintly/internal/matching/service"
	apperrors "paintly/pkg/errors"
	httputil "paintly/pkg/http"
	"paintly/pkg/logger"
	"paintly/pkg/model"
	"paintly/pkg/principal"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.MatcherService
	log     *logger.Logger
}

func NewBookingHandler(service service.MatcherService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// matchResponse is the booking endpoint's envelope. status is "confirmed"
// with the booking attached, or "no_availability" with alternatives.
type matchResponse struct {
	Status       string                       `json:"status"`
	Booking      *service.BookingConfirmation `json:"booking,omitempty"`
	Alternatives []service.RankedSlot         `json:"alternatives"`
}

// Create handles a booking request. A confirmed match returns 201; zero
// availability is a successful 200 carrying ranked alternatives.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	p, err := principal.Require(r, principal.RoleCustomer)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	outcome, err := h.service.RequestBooking(r.Context(), p.ID, &req)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if outcome.Matched() {
		if err := httputil.WriteJSON(w, http.StatusCreated, matchResponse{
			Status:       "confirmed",
			Booking:      outcome.Booking,
			Alternatives: []service.RankedSlot{},
		}); err != nil {
			h.log.Error("failed to write confirmation response", "handler", "Create", "error", err)
		}
		return
	}

	alternatives := outcome.Alternatives
	if alternatives == nil {
		alternatives = []service.RankedSlot{}
	}
	if err := httputil.WriteJSON(w, http.StatusOK, matchResponse{
		Status:       "no_availability",
		Alternatives: alternatives,
	}); err != nil {
		h.log.Error("failed to write no-availability response", "handler", "Create", "error", err)
	}
}

// List returns the caller's bookings, scoped by role.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	p, err := principal.FromRequest(r)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	var bookings []*model.Booking
	switch p.Role {
	case principal.RoleCustomer:
		bookings, err = h.service.ListForCustomer(r.Context(), p.ID)
	case principal.RolePainter:
		bookings, err = h.service.ListForPainter(r.Context(), p.ID)
	default:
		err = apperrors.Forbidden("Unsupported role for booking listing")
	}
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings", h.List)
}

func (h *BookingHandler) writeError(w http.ResponseWriter, op string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", op, "error", writeErr)
	}
}
