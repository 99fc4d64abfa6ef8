package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kusina-app/kusina-api/initializers"
	"github.com/kusina-app/kusina-api/models"
	"gorm.io/gorm"
)

// currentUserID pulls the authenticated user's id out of the JWT claims set
// by the auth middleware.
func currentUserID(ctx *gin.Context) (uint, bool) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return 0, false
	}

	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return uint(id), true
}

// sanitizeLines drops entries whose quantity has fallen below 1. The pages
// remove such lines before writing, but the API does not trust that.
func sanitizeLines(lines []models.OrderLine) []models.OrderLine {
	kept := lines[:0]
	for _, line := range lines {
		if line.Quantity >= 1 {
			kept = append(kept, line)
		}
	}
	return kept
}

// CreateOrderGroup persists the page cart as a new order_items row. Each
// submission creates its own row; existing groups are never merged.
func CreateOrderGroup(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		Orders []models.OrderLine `json:"orders" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	lines := sanitizeLines(body.Orders)
	if len(lines) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
		return
	}

	group := models.OrderGroup{
		UserID: userId,
		Orders: lines,
	}
	if result := initializers.DB.Create(&group); result.Error != nil {
		log.Println("Create error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order placed successfully!",
		"id":      group.ID,
	})
}

// GetOrderGroups returns the caller's cart groups, newest first.
func GetOrderGroups(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var groups []models.OrderGroup
	result := initializers.DB.
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&groups)

	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orderGroups": groups})
}

func findOwnedGroup(ctx *gin.Context) (models.OrderGroup, bool) {
	var group models.OrderGroup

	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return group, false
	}

	groupId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart group id")
		return group, false
	}

	result := initializers.DB.Where("user_id = ?", userId).First(&group, groupId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart group not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart group")
		}
		return group, false
	}

	return group, true
}

// UpdateOrderGroup replaces a group's line array. Quantity changes and
// checkbox toggles both arrive as full-array writes. A write that would
// leave the group empty is rejected; the client deletes instead.
func UpdateOrderGroup(ctx *gin.Context) {
	group, ok := findOwnedGroup(ctx)
	if !ok {
		return
	}

	var body struct {
		Orders []models.OrderLine `json:"orders" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	lines := sanitizeLines(body.Orders)
	if len(lines) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cart group cannot be emptied by update, delete it instead")
		return
	}

	group.Orders = lines
	if result := initializers.DB.Model(&group).Update("orders", group.Orders); result.Error != nil {
		log.Println("Update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart group")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orderGroup": group})
}

// DeleteOrderGroup removes one cart group row.
func DeleteOrderGroup(ctx *gin.Context) {
	group, ok := findOwnedGroup(ctx)
	if !ok {
		return
	}

	if result := initializers.DB.Delete(&group); result.Error != nil {
		log.Println("Delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete cart group")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart group deleted."})
}
