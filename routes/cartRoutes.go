package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kusina-app/kusina-api/controllers"
	"github.com/kusina-app/kusina-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.POST("", controllers.CreateOrderGroup)
		cart.GET("", controllers.GetOrderGroups)
		cart.PATCH("/:id", controllers.UpdateOrderGroup)
		cart.DELETE("/:id", controllers.DeleteOrderGroup)
	}
}
