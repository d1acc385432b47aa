package domain

import "time"

// Slot кандидат на бронирование: интервал ровно в длительность услуги
// Вычисляется на лету, в БД не хранится
type Slot struct {
	Start time.Time
	End   time.Time
}
