package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// PlacedOrder is a finalized customer order with delivery details.
// Only admins change its status.
type PlacedOrder struct {
	gorm.Model
	UserID          uint                           `json:"userId"`
	CustomerName    string                         `json:"customerName"`
	CustomerPhone   string                         `json:"customerPhone"`
	CustomerAddress string                         `json:"customerAddress"`
	Notes           string                         `json:"notes"`
	Orders          datatypes.JSONSlice[OrderLine] `json:"orders"`
	Status          string                         `json:"status"`
}

func (PlacedOrder) TableName() string {
	return "ordered_items"
}

// ValidOrderStatus reports whether status is one of the four known values.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
