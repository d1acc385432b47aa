package get_available_days

import "time"

// Request модель запроса на получение доступных дней месяца
type Request struct {
	TenantID       int64      // ID тенанта (салона)
	ProfessionalID int64      // ID мастера
	ServiceID      int64      // ID услуги (определяет длительность слота)
	Year           int        // Год
	Month          time.Month // Месяц 1..12
}

// Response модель ответа со списком доступных дней
type Response struct {
	Year           int        // Год, на который запрашивались дни
	Month          time.Month // Месяц
	ProfessionalID int64      // ID мастера
	ServiceID      int64      // ID услуги
	Days           []string   // Доступные даты YYYY-MM-DD по возрастанию
}
