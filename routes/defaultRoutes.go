package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kusina-app/kusina-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
