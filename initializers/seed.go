package initializers

import (
	"log"
	"os"

	"github.com/kusina-app/kusina-api/models"
)

// SeedAdmin makes sure the back-office account from the environment exists.
func SeedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed.")
		return
	}

	var count int64
	DB.Model(&models.AdminAccount{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	admin := models.AdminAccount{Email: email, Password: password}
	if result := DB.Create(&admin); result.Error != nil {
		log.Println("Failed to seed admin account:", result.Error)
		return
	}
	log.Println("Admin account seeded:", email)
}
