package initializers

import (
	"log"

	"github.com/kusina-app/kusina-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.AdminAccount{},
		&models.MenuItem{},
		&models.OrderGroup{},
		&models.PlacedOrder{},
		&models.Reservation{},
	)
	log.Println("Database synced successfully.")
}
