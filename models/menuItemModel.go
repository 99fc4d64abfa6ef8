package models

import "gorm.io/gorm"

type MenuItem struct {
	gorm.Model
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	ImageUrl    string  `json:"imageUrl"`
}
