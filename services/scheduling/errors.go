package scheduling

import "errors"

// Validation and conflict errors surfaced to the API layer. Input and
// business-rule errors map to 400, ErrSlotTaken to 409; anything else
// coming out of the service is a store failure and maps to 500.
var (
	ErrInvalidDate  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime  = errors.New("invalid time format, use HH:MM 24h")
	ErrWeekend      = errors.New("bookings are allowed Monday to Friday only")
	ErrOutsideHours = errors.New("time must be between 09:00 and 17:00")
	ErrOffGrid      = errors.New("time must fall on a 30-minute slot boundary")
	ErrSlotTaken    = errors.New("this time slot has already been booked, please choose another")
)

// IsValidationError reports whether err is a client-side input or
// business-rule error rather than a conflict or store failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidTime) ||
		errors.Is(err, ErrWeekend) ||
		errors.Is(err, ErrOutsideHours) ||
		errors.Is(err, ErrOffGrid)
}
