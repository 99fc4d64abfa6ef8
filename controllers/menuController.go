package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kusina-app/kusina-api/initializers"
	"github.com/kusina-app/kusina-api/models"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

func menuImagesBucket() string {
	return os.Getenv("MENU_IMAGES_BUCKET")
}

// getAWSUploader returns a configured S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func getS3Client() (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// uploadMenuImage stores the file under a random key and returns the public URL.
func uploadMenuImage(file *multipart.FileHeader) (string, error) {
	uploader, err := getAWSUploader()
	if err != nil {
		return "", err
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := uuid.NewString() + filepath.Ext(file.Filename)
	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(menuImagesBucket()),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", err
	}

	return result.Location, nil
}

// deleteMenuImage removes the stored object behind imageUrl, best-effort.
// Failures are logged and otherwise ignored.
func deleteMenuImage(imageUrl string) {
	if imageUrl == "" {
		return
	}

	key := imageUrl[strings.LastIndex(imageUrl, "/")+1:]
	if key == "" {
		return
	}

	client, err := getS3Client()
	if err != nil {
		log.Println("Error configuring S3 client for image delete:", err)
		return
	}

	_, err = client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(menuImagesBucket()),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Printf("Error deleting image %s: %v", key, err)
	}
}

// GetMenuItems lists the full menu ordered by category. An optional search
// term matches name, description, or category case-insensitively; an
// optional category narrows to one tab.
func GetMenuItems(ctx *gin.Context) {
	query := initializers.DB.Order("category asc")

	if search := ctx.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var items []models.MenuItem
	if result := query.Find(&items); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch menu items", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"menuItems": items})
}

func GetMenuItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var item models.MenuItem
	result := initializers.DB.First(&item, itemId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// GetMenuItemsAdmin pages through the menu table for the dashboard.
func GetMenuItemsAdmin(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var items []models.MenuItem
	result := initializers.DB.Order("name asc").Limit(limit).Offset(offset).Find(&items)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch menu items", result.Error)
		return
	}

	var count int64
	initializers.DB.Model(&models.MenuItem{}).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"menuItems": items,
		"metadata":  paginationMetadata(page, limit, count),
	})
}

// paginationMetadata computes the dashboard paging block from an exact count.
func paginationMetadata(page, limit int, count int64) gin.H {
	totalPages := math.Ceil(float64(count) / float64(limit))
	return gin.H{
		"total":       count,
		"currentPage": page,
		"limit":       limit,
		"hasPrevPage": page > 1,
		"hasNextPage": int64(page)*int64(limit) < count,
		"totalPages":  int(totalPages),
	}
}

func bindMenuItemForm(ctx *gin.Context) (models.MenuItem, error) {
	price, err := strconv.ParseFloat(ctx.PostForm("price"), 64)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("invalid price: %w", err)
	}

	item := models.MenuItem{
		Name:        ctx.PostForm("name"),
		Description: ctx.PostForm("description"),
		Price:       price,
		Category:    ctx.PostForm("category"),
	}

	if item.Name == "" || item.Description == "" || item.Category == "" {
		return models.MenuItem{}, errors.New("name, description, price and category are required")
	}

	return item, nil
}

// CreateMenuItem adds a dish from a multipart form; an attached image is
// uploaded first and the row stores its public URL.
func CreateMenuItem(ctx *gin.Context) {
	item, err := bindMenuItemForm(ctx)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Please fill in all required fields", err)
		return
	}

	if file, err := ctx.FormFile("image"); err == nil {
		imageUrl, uploadErr := uploadMenuImage(file)
		if uploadErr != nil {
			log.Println("Error uploading menu image:", uploadErr)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", uploadErr)
			return
		}
		item.ImageUrl = imageUrl
	}

	if result := initializers.DB.Create(&item); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create menu item", result.Error)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// UpdateMenuItem edits a dish. A replacement image deletes the previous
// object best-effort before the new upload rewrites the URL.
func UpdateMenuItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var existing models.MenuItem
	if result := initializers.DB.First(&existing, itemId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", result.Error)
		}
		return
	}

	item, err := bindMenuItemForm(ctx)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Please fill in all required fields", err)
		return
	}

	imageUrl := existing.ImageUrl
	if file, err := ctx.FormFile("image"); err == nil {
		deleteMenuImage(existing.ImageUrl)

		imageUrl, err = uploadMenuImage(file)
		if err != nil {
			log.Println("Error uploading menu image:", err)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
			return
		}
	}

	updates := map[string]any{
		"name":        item.Name,
		"description": item.Description,
		"price":       item.Price,
		"category":    item.Category,
		"image_url":   imageUrl,
	}
	if result := initializers.DB.Model(&existing).Updates(updates); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update menu item", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, existing)
}

func DeleteMenuItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var item models.MenuItem
	if result := initializers.DB.First(&item, itemId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", result.Error)
		}
		return
	}

	deleteMenuImage(item.ImageUrl)

	if result := initializers.DB.Delete(&item); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete menu item", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully."})
}
