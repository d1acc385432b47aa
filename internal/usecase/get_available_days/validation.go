package get_available_days

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Year < 2000 || req.Year > 2100 {
		return fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, req.Year)
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be in range 1..12", ErrInvalidInput)
	}

	return nil
}
