package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"paintly/internal/availability/service"
	httputil "paintly/pkg/http"
	"paintly/pkg/logger"
	"paintly/pkg/principal"

	"github.com/julienschmidt/httprouter"
)

type AvailabilityHandler struct {
	service service.AvailabilityService
	log     *logger.Logger
}

func NewAvailabilityHandler(service service.AvailabilityService, log *logger.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log,
	}
}

type addSlotRequest struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func (h *AvailabilityHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	p, err := principal.Require(r, principal.RolePainter)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	var req addSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	slot, err := h.service.AddSlot(r.Context(), p.ID, req.StartTime, req.EndTime)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, slot); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *AvailabilityHandler) ListMine(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	p, err := principal.Require(r, principal.RolePainter)
	if err != nil {
		h.writeError(w, "ListMine", err)
		return
	}

	slots, err := h.service.ListForPainter(r.Context(), p.ID)
	if err != nil {
		h.writeError(w, "ListMine", err)
		return
	}

	if err := httputil.WriteSuccess(w, slots); err != nil {
		h.log.Error("failed to write success response", "handler", "ListMine", "error", err)
	}
}

func (h *AvailabilityHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	p, err := principal.Require(r, principal.RolePainter)
	if err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	if err := h.service.RemoveSlot(r.Context(), p.ID, ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *AvailabilityHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/availability", h.Create)
	router.GET("/api/v1/availability", h.ListMine)
	router.DELETE("/api/v1/availability/:id", h.Delete)
}

func (h *AvailabilityHandler) writeError(w http.ResponseWriter, op string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", op, "error", writeErr)
	}
}
