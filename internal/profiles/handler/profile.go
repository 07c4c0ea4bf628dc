package handler

import (
	"encoding/json"
	"net/http"

	"paintly/internal/profiles/service"
	httputil "paintly/pkg/http"
	"paintly/pkg/logger"
	"paintly/pkg/model"
	"paintly/pkg/principal"

	"github.com/julienschmidt/httprouter"
)

type ProfileHandler struct {
	service service.ProfileService
	log     *logger.Logger
}

func NewProfileHandler(service service.ProfileService, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log,
	}
}

// Create registers the caller's profile for their role. The payload shape
// follows the role: painters carry experience/rating/specialties, customers
// carry an address.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	p, err := principal.FromRequest(r)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	switch p.Role {
	case principal.RolePainter:
		var profile model.PainterProfile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			h.writeBadBody(w, "Create")
			return
		}
		profile.ID = ""
		profile.UserID = p.ID

		if err := h.service.CreatePainter(r.Context(), &profile); err != nil {
			h.writeError(w, "Create", err)
			return
		}
		if err := httputil.WriteCreated(w, profile); err != nil {
			h.log.Error("failed to write created response", "handler", "Create", "error", err)
		}

	case principal.RoleCustomer:
		var profile model.CustomerProfile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			h.writeBadBody(w, "Create")
			return
		}
		profile.ID = ""
		profile.UserID = p.ID

		if err := h.service.CreateCustomer(r.Context(), &profile); err != nil {
			h.writeError(w, "Create", err)
			return
		}
		if err := httputil.WriteCreated(w, profile); err != nil {
			h.log.Error("failed to write created response", "handler", "Create", "error", err)
		}
	}
}

func (h *ProfileHandler) GetMine(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	p, err := principal.FromRequest(r)
	if err != nil {
		h.writeError(w, "GetMine", err)
		return
	}

	var data any
	switch p.Role {
	case principal.RolePainter:
		data, err = h.service.GetPainterByUserID(r.Context(), p.ID)
	case principal.RoleCustomer:
		data, err = h.service.GetCustomerByUserID(r.Context(), p.ID)
	}
	if err != nil {
		h.writeError(w, "GetMine", err)
		return
	}

	if err := httputil.WriteSuccess(w, data); err != nil {
		h.log.Error("failed to write success response", "handler", "GetMine", "error", err)
	}
}

func (h *ProfileHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/profiles", h.Create)
	router.GET("/api/v1/profiles/me", h.GetMine)
}

func (h *ProfileHandler) writeError(w http.ResponseWriter, op string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", op, "error", writeErr)
	}
}

func (h *ProfileHandler) writeBadBody(w http.ResponseWriter, op string) {
	if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
		Error: "Invalid request body",
	}); writeErr != nil {
		h.log.Error("failed to write JSON response", "handler", op, "error", writeErr)
	}
}
