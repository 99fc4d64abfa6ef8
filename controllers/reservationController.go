package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kusina-app/kusina-api/initializers"
	"github.com/kusina-app/kusina-api/models"
	"gorm.io/gorm"
)

type reservationBody struct {
	Name             string                   `json:"name" binding:"required"`
	Phone            string                   `json:"phone" binding:"required"`
	Address          string                   `json:"address" binding:"required"`
	DeliveryDatetime string                   `json:"deliveryDatetime" binding:"required"`
	Notes            string                   `json:"notes"`
	Items            []models.ReservationItem `json:"items"`
}

// CreateReservation stores a delivery reservation for the signed-in user.
func CreateReservation(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "You must be logged in to make a reservation.")
		return
	}

	var body reservationBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	reservation := models.Reservation{
		UserID:           userId,
		Name:             body.Name,
		Phone:            body.Phone,
		Address:          body.Address,
		DeliveryDatetime: body.DeliveryDatetime,
		Notes:            body.Notes,
		Items:            body.Items,
	}

	if result := initializers.DB.Create(&reservation); result.Error != nil {
		log.Println("Reservation creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error submitting reservation. Please try again.")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":     "Reservation submitted successfully!",
		"reservation": reservation,
	})
}

// GetReservationsAdmin pages through reservations, soonest delivery first.
func GetReservationsAdmin(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var reservations []models.Reservation
	result := initializers.DB.
		Order("delivery_datetime asc").
		Limit(limit).
		Offset(offset).
		Find(&reservations)

	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch reservations", result.Error)
		return
	}

	var count int64
	initializers.DB.Model(&models.Reservation{}).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"reservations": reservations,
		"metadata":     paginationMetadata(page, limit, count),
	})
}

// UpdateReservation edits every reservation field from the dashboard modal.
func UpdateReservation(ctx *gin.Context) {
	reservationId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	var reservation models.Reservation
	if result := initializers.DB.First(&reservation, reservationId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Reservation not found")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch reservation")
		}
		return
	}

	var body reservationBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	reservation.Name = body.Name
	reservation.Phone = body.Phone
	reservation.Address = body.Address
	reservation.DeliveryDatetime = body.DeliveryDatetime
	reservation.Notes = body.Notes
	reservation.Items = body.Items

	if result := initializers.DB.Save(&reservation); result.Error != nil {
		log.Println("Reservation update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update reservation")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"reservation": reservation})
}

func DeleteReservation(ctx *gin.Context) {
	reservationId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	if result := initializers.DB.Delete(&models.Reservation{}, reservationId); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete reservation")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Reservation deleted successfully."})
}
