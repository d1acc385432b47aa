package get_professional_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/levkurapov/salon-booking-service/internal/api/handlers"
	"github.com/levkurapov/salon-booking-service/internal/api/middleware"
	"github.com/levkurapov/salon-booking-service/internal/calendar"
	"github.com/levkurapov/salon-booking-service/internal/service/appointments"
	"github.com/levkurapov/salon-booking-service/internal/service/appointments/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidDateFrom       = "некорректный параметр dateFrom, ожидается YYYY-MM-DD"
	msgInvalidDateTo         = "некорректный параметр dateTo, ожидается YYYY-MM-DD"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgMissingTenant         = "отсутствует ID салона"
	msgInvalidFilter         = "некорректные параметры фильтра"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/appointments?dateFrom=&dateTo=&status=&includeAll=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/appointments - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	if _, ok := middleware.GetUserID(r.Context()); !ok {
		h.logger.Warn("GET /professionals/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /professionals/{id}/appointments - Missing tenant ID")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	query := r.URL.Query()

	req := &models.GetProfessionalAppointmentsRequest{
		TenantID:       tenantID,
		ProfessionalID: professionalID,
		IncludeAll:     query.Get("includeAll") == "true",
	}

	if raw := query.Get("dateFrom"); raw != "" {
		date, err := calendar.ParseLocalDate(raw)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid dateFrom: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateFrom)
			return
		}
		req.RangeStart = &date
	}

	if raw := query.Get("dateTo"); raw != "" {
		date, err := calendar.ParseLocalDate(raw)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid dateTo: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateTo)
			return
		}
		// Верхняя граница включает весь день dateTo
		_, dayEnd := calendar.DayBounds(date)
		req.RangeEnd = &dayEnd
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetProfessionalAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid filter: professional_id=%d", professionalID)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /professionals/{id}/appointments - Failed: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/appointments - Retrieved %d appointments: professional_id=%d, range=[%s, %s]",
		result.Total, professionalID, formatRange(req.RangeStart), formatRange(req.RangeEnd))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

func formatRange(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}
