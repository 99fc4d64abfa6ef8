package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kusina-app/kusina-api/initializers"
	"github.com/kusina-app/kusina-api/models"
)

func generateAdminJWT(admin models.AdminAccount) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": admin.ID,
		"email":   admin.Email,
		"role":    "admin",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

// AdminLogin matches email and password against the admin_account table.
// Passwords in that table are plain text, so this is a straight equality
// lookup; the matched row is returned verbatim, as the sign-in page expects.
func AdminLogin(ctx *gin.Context) {
	var loginData struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var admins []models.AdminAccount
	result := initializers.DB.
		Where("email = ?", loginData.Email).
		Where("password = ?", loginData.Password).
		Find(&admins)

	if result.Error != nil {
		log.Println("Admin login error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if len(admins) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid email or password")
		return
	}

	tokenString, err := generateAdminJWT(admins[0])
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"admin": admins[0],
		"token": tokenString,
	})
}
