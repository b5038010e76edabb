package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vrzone-backend/services"
	"vrzone-backend/utils"
)

// BookingController is the HTTP boundary of the booking flow; everything
// past field extraction lives in the service.
type BookingController struct {
	Service *services.BookingService
}

// CreateBooking handles the reservation form. The form carries either a
// "duration" (time-based pricing) or a "game" choice depending on which
// section of the site it was submitted from.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	selection := c.PostForm("duration")
	if selection == "" {
		selection = c.PostForm("game")
	}

	input := services.SubmitInput{
		Name:      c.PostForm("name"),
		Phone:     c.PostForm("phone"),
		Date:      c.PostForm("date"),
		Time:      c.PostForm("time"),
		Selection: selection,
	}

	booking, err := bc.Service.Submit(input)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.RespondWithError(c, http.StatusBadRequest, verr.Reason)
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save booking. Please try again later.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created! We will contact you soon.",
		"booking": booking,
	})
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
