package models

import "gorm.io/gorm"

// AdminAccount gates the back office. Credentials are stored and compared
// as plain text, exactly like the admin_account table this replaces.
type AdminAccount struct {
	gorm.Model
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (AdminAccount) TableName() string {
	return "admin_account"
}
