package models

import "time"

// Booking represents a confirmed appointment record.
type Booking struct {
	ID             string    `bson:"id" json:"id"`                             // Unique booking identifier (UUID)
	Name           string    `bson:"name" json:"name"`                         // Contact name
	Email          string    `bson:"email" json:"email"`                       // Contact email
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`   // Optional contact phone
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`   // Optional free-form notes
	DateLocal      string    `bson:"date_local" json:"date_local"`             // Calendar date in "YYYY-MM-DD", local zone
	StartTimeLocal string    `bson:"start_time_local" json:"start_time_local"` // Slot start in "HH:MM", local zone
	StartUTC       string    `bson:"start_utc" json:"start_utc"`               // Absolute slot start, RFC3339 UTC
	EndUTC         string    `bson:"end_utc" json:"end_utc"`                   // Absolute slot end, RFC3339 UTC
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`             // Timestamp when the booking was created
}
