package models

// AvailabilityResponse lists the open slot start-times for a calendar date.
type AvailabilityResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"` // "HH:MM" entries in the local zone, ascending
}

// BookingResponse confirms a persisted booking back to the caller.
type BookingResponse struct {
	Status   string `json:"status"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}
