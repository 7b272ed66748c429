package crew

import "errors"

var (
	ErrEmployeeIDRequired  = errors.New("employee id is required")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrInvalidShift        = errors.New("invalid shift")
	ErrInvalidPayFrequency = errors.New("pay frequency must be weekly, biweekly or monthly")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidSwap         = errors.New("invalid swap request")
)
