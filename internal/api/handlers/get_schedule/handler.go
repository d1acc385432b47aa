package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/levkurapov/salon-booking-service/internal/api/handlers"
	"github.com/levkurapov/salon-booking-service/internal/api/middleware"
	"github.com/levkurapov/salon-booking-service/internal/service/schedule"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgMissingTenant         = "отсутствует ID салона"
	msgProfessionalNotFound  = "мастер не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/schedule - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /professionals/{id}/schedule - Missing tenant ID")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), tenantID, professionalID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/schedule - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("GET /professionals/{id}/schedule - Failed: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/schedule - Retrieved %d entries: professional_id=%d",
		len(result.Entries), professionalID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
