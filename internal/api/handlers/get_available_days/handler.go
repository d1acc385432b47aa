package get_available_days

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/levkurapov/salon-booking-service/internal/api/handlers"
	"github.com/levkurapov/salon-booking-service/internal/api/middleware"
	getAvailableDays "github.com/levkurapov/salon-booking-service/internal/usecase/get_available_days"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidServiceID      = "некорректный параметр serviceId"
	msgInvalidYear           = "некорректный параметр year"
	msgInvalidMonth          = "некорректный параметр month"
	msgMissingTenant         = "отсутствует ID салона"
	msgProfessionalNotFound  = "мастер не найден"
	msgServiceNotFound       = "услуга не найдена"
	msgInvalidInput          = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/available-days?serviceId=&year=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-days - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /professionals/{id}/available-days - Missing tenant ID")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	query := r.URL.Query()

	serviceID, err := strconv.ParseInt(query.Get("serviceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-days - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-days - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /professionals/{id}/available-days - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDays.Request{
		TenantID:       tenantID,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Year:           year,
		Month:          time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/available-days - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableDays.ErrServiceNotFound):
			h.logger.Warn("GET /professionals/{id}/available-days - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableDays.ErrInvalidInput), errors.Is(err, getAvailableDays.ErrInvalidDuration):
			h.logger.Warn("GET /professionals/{id}/available-days - Invalid input: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /professionals/{id}/available-days - Failed: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/available-days - Retrieved %d days: professional_id=%d, service_id=%d, %d-%02d",
		len(result.Days), professionalID, serviceID, year, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
