package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReservationItem is one dish entry on a delivery reservation.
type ReservationItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Reservation is a scheduled delivery request. DeliveryDatetime is kept as
// the ISO string the form submits ("2025-04-27T18:30:00") so date bucketing
// and ordering work on the raw value.
type Reservation struct {
	gorm.Model
	UserID           uint                                 `json:"userId"`
	Name             string                               `json:"name"`
	Phone            string                               `json:"phone"`
	Address          string                               `json:"address"`
	DeliveryDatetime string                               `json:"deliveryDatetime"`
	Notes            string                               `json:"notes"`
	Items            datatypes.JSONSlice[ReservationItem] `json:"items"`
}
