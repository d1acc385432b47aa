package create_appointment

import (
	"errors"
	"net/http"

	"github.com/levkurapov/salon-booking-service/internal/api/handlers"
	"github.com/levkurapov/salon-booking-service/internal/api/middleware"
	createAppointment "github.com/levkurapov/salon-booking-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgMissingTenant        = "отсутствует ID салона"
	msgProfessionalNotFound = "мастер не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgCustomerNotFound     = "клиент не найден"
	msgSlotNotAvailable     = "выбранный слот уже занят"
	msgInvalidDate          = "нельзя записаться на прошедшую дату"
	msgDayNotBookable       = "салон не работает в выбранную дату"
	msgOutsideWorkingHours  = "слот вне рабочих часов мастера"
	msgTooLateToBook        = "время слота уже прошло"
	msgInvalidInput         = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing tenant ID")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID, customerID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: customer_id=%d, professional_id=%d, date=%s, time=%s",
				customerID, req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: customer_id=%d, date=%s", customerID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrDayNotBookable):
			h.logger.Warn("POST /appointments - Day not bookable: customer_id=%d, date=%s", customerID, req.Date)
			handlers.RespondBadRequest(w, msgDayNotBookable)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: professional_id=%d, date=%s, time=%s",
				req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: customer_id=%d, date=%s, time=%s",
				customerID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, professional_id=%d, error=%v",
				customerID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, customer_id=%d, professional_id=%d",
		result.ID, customerID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
