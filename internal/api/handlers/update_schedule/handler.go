package update_schedule

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
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgMissingTenant         = "отсутствует ID салона"
	msgProfessionalNotFound  = "мастер не найден"
	msgInvalidEntry          = "некорректная строка расписания"
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

// Handle PUT /api/v1/professionals/{professionalId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/schedule - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	if _, ok := middleware.GetUserID(r.Context()); !ok {
		h.logger.Warn("PUT /professionals/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("PUT /professionals/{id}/schedule - Missing tenant ID")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReplaceSchedule(r.Context(), tenantID, professionalID, req.ToServiceInputs())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrProfessionalNotFound):
			h.logger.Warn("PUT /professionals/{id}/schedule - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, schedule.ErrInvalidEntry), errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id}/schedule - Invalid entry: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidEntry)

		default:
			h.logger.Error("PUT /professionals/{id}/schedule - Failed: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id}/schedule - Schedule replaced: professional_id=%d, entries=%d",
		professionalID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
