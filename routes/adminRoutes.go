package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kusina-app/kusina-api/controllers"
	"github.com/kusina-app/kusina-api/middlewares"
)

func AdminRoutes(server *gin.Engine) {
	server.POST("/admin/login", controllers.AdminLogin)

	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/menu", controllers.GetMenuItemsAdmin)
		admin.POST("/menu", controllers.CreateMenuItem)
		admin.PUT("/menu/:id", controllers.UpdateMenuItem)
		admin.DELETE("/menu/:id", controllers.DeleteMenuItem)

		admin.GET("/orders", controllers.GetOrdersAdmin)
		admin.GET("/orders/undelivered-count", controllers.GetUndeliveredOrders)
		admin.PATCH("/orders/:orderId", controllers.UpdateOrderStatus)
		admin.DELETE("/orders/:orderId", controllers.DeleteOrder)

		admin.GET("/reservations", controllers.GetReservationsAdmin)
		admin.PUT("/reservations/:id", controllers.UpdateReservation)
		admin.DELETE("/reservations/:id", controllers.DeleteReservation)

		admin.GET("/dashboard/stats", controllers.GetDashboardStats)
	}
}
