package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kusina-app/kusina-api/initializers"
	"github.com/kusina-app/kusina-api/models"
)

type statusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type dateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type hourCount struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

// isoDate is the YYYY-MM-DD prefix all chart bucketing keys on.
const isoDate = "2006-01-02"

func countOrdersByStatus(orders []models.PlacedOrder) []statusCount {
	counts := make(map[string]int)
	for _, order := range orders {
		counts[strings.ToLower(order.Status)]++
	}

	return []statusCount{
		{Name: "Pending", Value: counts[models.OrderStatusPending]},
		{Name: "Processing", Value: counts[models.OrderStatusProcessing]},
		{Name: "Completed", Value: counts[models.OrderStatusCompleted]},
		{Name: "Cancelled", Value: counts[models.OrderStatusCancelled]},
	}
}

// countOrdersByDay buckets orders over the trailing 7 calendar days,
// oldest day first.
func countOrdersByDay(orders []models.PlacedOrder, now time.Time) []dateCount {
	buckets := make([]dateCount, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(isoDate)
		count := 0
		for _, order := range orders {
			if order.CreatedAt.Format(isoDate) == date {
				count++
			}
		}
		buckets = append(buckets, dateCount{Date: date, Count: count})
	}
	return buckets
}

func countOrdersByHour(orders []models.PlacedOrder) []hourCount {
	buckets := make([]hourCount, 0, 24)
	for hour := 0; hour < 24; hour++ {
		count := 0
		for _, order := range orders {
			if order.CreatedAt.Hour() == hour {
				count++
			}
		}
		buckets = append(buckets, hourCount{Hour: fmt.Sprintf("%d:00", hour), Count: count})
	}
	return buckets
}

// countReservationsByDay buckets reservations over the next 7 calendar days
// starting today, comparing the raw ISO date prefix of delivery_datetime.
func countReservationsByDay(reservations []models.Reservation, now time.Time) []dateCount {
	buckets := make([]dateCount, 0, 7)
	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, i).Format(isoDate)
		count := 0
		for _, reservation := range reservations {
			prefix, _, _ := strings.Cut(reservation.DeliveryDatetime, "T")
			if prefix == date {
				count++
			}
		}
		buckets = append(buckets, dateCount{Date: date, Count: count})
	}
	return buckets
}

// GetDashboardStats derives the four chart datasets from the current
// orders and reservations.
func GetDashboardStats(ctx *gin.Context) {
	var orders []models.PlacedOrder
	if result := initializers.DB.Find(&orders); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	var reservations []models.Reservation
	if result := initializers.DB.Find(&reservations); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}

	now := time.Now()
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"ordersByStatus":    countOrdersByStatus(orders),
		"ordersByDay":       countOrdersByDay(orders, now),
		"ordersByHour":      countOrdersByHour(orders),
		"reservationsByDay": countReservationsByDay(reservations, now),
	})
}
