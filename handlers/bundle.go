package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handler functions wired into the router.
type HandlerBundle struct {
	GetAvailability gin.HandlerFunc
	CreateBooking   gin.HandlerFunc
}
