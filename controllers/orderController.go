package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kusina-app/kusina-api/initializers"
	"github.com/kusina-app/kusina-api/models"
)

type checkoutBody struct {
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	CustomerAddress string `json:"customerAddress" binding:"required"`
	Notes           string `json:"notes"`
}

// Checkout turns the caller's checked cart lines into one placed order and
// then strips those lines out of each cart group.
//
// The cleanup runs as independent update/delete calls after the order row
// is inserted. When any of them fails the handler reports a single
// aggregate error and leaves the order in place; there is no rollback, so a
// partial failure leaves stale cart lines behind. That matches the ordering
// page this replaces.
func Checkout(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body checkoutBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Name, address and phone number are required")
		return
	}

	var groups []models.OrderGroup
	if result := initializers.DB.Where("user_id = ?", userId).Find(&groups); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart groups")
		return
	}

	selected := models.CheckedLines(groups)
	if len(selected) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Please select items to order")
		return
	}

	// The placed order keeps the lines without their selection flags.
	orderLines := make([]models.OrderLine, 0, len(selected))
	for _, line := range selected {
		line.Checked = false
		orderLines = append(orderLines, line)
	}

	order := models.PlacedOrder{
		UserID:          userId,
		CustomerName:    body.CustomerName,
		CustomerPhone:   body.CustomerPhone,
		CustomerAddress: body.CustomerAddress,
		Notes:           body.Notes,
		Orders:          orderLines,
		Status:          models.OrderStatusPending,
	}
	if result := initializers.DB.Create(&order); result.Error != nil {
		log.Println("Order creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to place order")
		return
	}

	failedUpdates := 0
	for _, group := range groups {
		remaining := make([]models.OrderLine, 0, len(group.Orders))
		for _, line := range group.Orders {
			if !line.Checked {
				remaining = append(remaining, line)
			}
		}

		if len(remaining) == len(group.Orders) {
			continue
		}

		var err error
		if len(remaining) == 0 {
			err = initializers.DB.Delete(&group).Error
		} else {
			group.Orders = remaining
			err = initializers.DB.Model(&group).Update("orders", group.Orders).Error
		}
		if err != nil {
			log.Printf("Cart cleanup failed for group %d: %v", group.ID, err)
			failedUpdates++
		}
	}

	if failedUpdates > 0 {
		// The order row already exists; the stale cart lines stay behind.
		sendJSONResponse(ctx, http.StatusInternalServerError, gin.H{
			"message": "Failed to update some order groups",
			"orderId": order.ID,
		})
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order placed successfully!",
		"order":   order,
	})
}

// GetMyOrders returns the caller's placed orders, newest first.
func GetMyOrders(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var orders []models.PlacedOrder
	result := initializers.DB.
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&orders)

	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOrdersAdmin pages through all placed orders for the dashboard.
func GetOrdersAdmin(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var orders []models.PlacedOrder
	result := initializers.DB.
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&orders)

	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	initializers.DB.Model(&models.PlacedOrder{}).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"orders":   orders,
		"metadata": paginationMetadata(page, limit, count),
	})
}

func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if !models.ValidOrderStatus(orderStatusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	result := initializers.DB.Model(&models.PlacedOrder{}).
		Where("id = ?", orderId).
		Update("status", orderStatusData.Status)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully."})
}

func DeleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	if result := initializers.DB.Delete(&models.PlacedOrder{}, orderId); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}

// GetUndeliveredOrders counts orders that still need attention.
func GetUndeliveredOrders(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.PlacedOrder{}).
		Where("status != ?", models.OrderStatusCompleted).
		Count(&count)

	if result.Error != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count undelivered orders"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"undeliveredOrderCount": count})
}
