package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/kusina-app/kusina-api/models"
	"github.com/stretchr/testify/require"
)

func orderAt(created time.Time, status string) models.PlacedOrder {
	order := models.PlacedOrder{UserID: 1, Status: status}
	order.CreatedAt = created
	return order
}

func TestCountOrdersByStatus(t *testing.T) {
	orders := []models.PlacedOrder{
		{Status: "pending"},
		{Status: "Pending"}, // status match is case-insensitive
		{Status: "completed"},
		{Status: "cancelled"},
	}

	counts := countOrdersByStatus(orders)
	require.Equal(t, []statusCount{
		{Name: "Pending", Value: 2},
		{Name: "Processing", Value: 0},
		{Name: "Completed", Value: 1},
		{Name: "Cancelled", Value: 1},
	}, counts)
}

func TestCountOrdersByDay(t *testing.T) {
	now := time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC)

	orders := []models.PlacedOrder{
		// Time of day never changes the bucket
		orderAt(time.Date(2025, 4, 27, 10, 0, 0, 0, time.UTC), "pending"),
		orderAt(time.Date(2025, 4, 27, 23, 59, 0, 0, time.UTC), "pending"),
		orderAt(time.Date(2025, 4, 30, 0, 0, 1, 0, time.UTC), "pending"),
		// Outside the trailing window
		orderAt(time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC), "pending"),
	}

	buckets := countOrdersByDay(orders, now)
	require.Len(t, buckets, 7)
	require.Equal(t, "2025-04-24", buckets[0].Date)
	require.Equal(t, "2025-04-30", buckets[6].Date)

	byDate := make(map[string]int)
	for _, bucket := range buckets {
		byDate[bucket.Date] = bucket.Count
	}
	require.Equal(t, 2, byDate["2025-04-27"])
	require.Equal(t, 1, byDate["2025-04-30"])
	require.Equal(t, 0, byDate["2025-04-25"])
}

func TestCountOrdersByHour(t *testing.T) {
	orders := []models.PlacedOrder{
		orderAt(time.Date(2025, 4, 27, 10, 15, 0, 0, time.UTC), "pending"),
		orderAt(time.Date(2025, 4, 28, 10, 45, 0, 0, time.UTC), "pending"),
		orderAt(time.Date(2025, 4, 29, 0, 5, 0, 0, time.UTC), "pending"),
	}

	buckets := countOrdersByHour(orders)
	require.Len(t, buckets, 24)
	require.Equal(t, "0:00", buckets[0].Hour)
	require.Equal(t, 1, buckets[0].Count)
	require.Equal(t, "10:00", buckets[10].Hour)
	require.Equal(t, 2, buckets[10].Count)
}

func TestCountReservationsByDay(t *testing.T) {
	now := time.Date(2025, 4, 27, 9, 0, 0, 0, time.UTC)

	reservations := []models.Reservation{
		{DeliveryDatetime: "2025-04-27T00:48:00"},
		{DeliveryDatetime: "2025-04-27T18:30:00"},
		{DeliveryDatetime: "2025-04-29T12:00:00"},
		{DeliveryDatetime: "2025-05-10T12:00:00"}, // beyond the window
		{DeliveryDatetime: "garbage"},             // unparseable, no bucket
	}

	buckets := countReservationsByDay(reservations, now)
	require.Len(t, buckets, 7)
	require.Equal(t, "2025-04-27", buckets[0].Date)
	require.Equal(t, 2, buckets[0].Count)
	require.Equal(t, "2025-04-29", buckets[2].Date)
	require.Equal(t, 1, buckets[2].Count)
	require.Equal(t, "2025-05-03", buckets[6].Date)
	require.Equal(t, 0, buckets[6].Count)
}

func TestGetDashboardStats(t *testing.T) {
	db := setupTestDB(t)

	order := orderAt(time.Now(), models.OrderStatusPending)
	require.NoError(t, db.Create(&order).Error)
	reservation := models.Reservation{
		UserID:           1,
		Name:             "Juan",
		Phone:            "09171234567",
		Address:          "123 Mabini St",
		DeliveryDatetime: time.Now().Format("2006-01-02") + "T18:00:00",
	}
	require.NoError(t, db.Create(&reservation).Error)

	rec, ctx := newJSONContext(t, http.MethodGet, "/admin/dashboard/stats", nil)
	GetDashboardStats(ctx)
	requireStatus(t, rec, http.StatusOK)

	resp := decodeBody(t, rec)
	require.Len(t, resp["ordersByStatus"].([]any), 4)
	require.Len(t, resp["ordersByDay"].([]any), 7)
	require.Len(t, resp["ordersByHour"].([]any), 24)

	reservationBuckets := resp["reservationsByDay"].([]any)
	require.Len(t, reservationBuckets, 7)
	today := reservationBuckets[0].(map[string]any)
	require.Equal(t, float64(1), today["count"])
}
