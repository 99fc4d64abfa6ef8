package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Kusina API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create customer account
- POST "/auth/login" - Access customer account
- POST "/auth/logout" - Sign out
- POST "/auth/verify-email/:activationToken" - Activate customer account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset customer password
- POST "/admin/login" - Back-office sign in

MENU
- GET "/menu" - Browse the menu (search, category filters)
- GET "/menu/:id" - Get a menu item

CART
- POST "/cart" - Save the page cart as a new group
- GET "/cart" - List your cart groups
- PATCH "/cart/:id" - Rewrite a group's lines
- DELETE "/cart/:id" - Remove a group

ORDERS
- POST "/orders" - Place an order from checked cart lines
- GET "/orders" - Your order history

RESERVATIONS
- POST "/reservations" - Make a delivery reservation

ADMIN
- GET "/admin/menu" - Paginated menu table
- POST "/admin/menu" - Add a menu item (multipart, image upload)
- PUT "/admin/menu/:id" - Edit a menu item
- DELETE "/admin/menu/:id" - Delete a menu item
- GET "/admin/orders" - Paginated orders
- PATCH "/admin/orders/:orderId" - Update order status
- DELETE "/admin/orders/:orderId" - Delete an order
- GET "/admin/orders/undelivered-count" - Open order count
- GET "/admin/reservations" - Paginated reservations
- PUT "/admin/reservations/:id" - Edit a reservation
- DELETE "/admin/reservations/:id" - Delete a reservation
- GET "/admin/dashboard/stats" - Chart datasets`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
