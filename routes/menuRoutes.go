package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kusina-app/kusina-api/controllers"
)

func MenuRoutes(server *gin.Engine) {
	server.GET("/menu", controllers.GetMenuItems)
	server.GET("/menu/:id", controllers.GetMenuItem)
}
