package models

// BookingRequest is the payload accepted by the booking endpoint.
// Date and Time are wall-clock values in the calendar's fixed zone.
type BookingRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Date  string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time  string `json:"time" binding:"required"` // "HH:MM" 24h
	Notes string `json:"notes"`
}
