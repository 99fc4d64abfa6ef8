package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderLine is one dish entry inside a cart group or a placed order.
// Checked marks a line the customer selected for checkout.
type OrderLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Checked  bool    `json:"checked,omitempty"`
}

// OrderGroup is one persisted cart snapshot. Every submission from the menu
// page creates a new row; groups are never merged.
type OrderGroup struct {
	gorm.Model
	UserID uint                           `json:"userId"`
	Orders datatypes.JSONSlice[OrderLine] `json:"orders"`
}

func (OrderGroup) TableName() string {
	return "order_items"
}

// LineTotal returns quantity * price for a single line.
func (l OrderLine) LineTotal() float64 {
	return float64(l.Quantity) * l.Price
}

// CheckedLines returns the lines marked for checkout across all groups.
func CheckedLines(groups []OrderGroup) []OrderLine {
	var selected []OrderLine
	for _, group := range groups {
		for _, line := range group.Orders {
			if line.Checked {
				selected = append(selected, line)
			}
		}
	}
	return selected
}

// LinesTotal sums quantity * price over the given lines.
func LinesTotal(lines []OrderLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.LineTotal()
	}
	return total
}
