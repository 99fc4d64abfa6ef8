package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kusina-app/kusina-api/controllers"
	"github.com/kusina-app/kusina-api/middlewares"
)

func ReservationRoutes(server *gin.Engine) {
	server.POST("/reservations", middlewares.RequireAuth(), controllers.CreateReservation)
}
