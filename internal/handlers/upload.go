package handlers

import (
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"oudora_back_end/internal/services"
)

const (
	maxImageSize  = 5 << 20 // 5 MB per file
	maxBatchFiles = 10
)

func validImage(file *multipart.FileHeader) (string, bool) {
	if file.Size > maxImageSize {
		return "Image exceeds the 5MB size limit", false
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "Only image files are allowed", false
	}
	return "", true
}

// UploadImage stores a single product image in MinIO.
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	if msg, ok := validImage(file); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	url, err := services.UploadImage(c.Request.Context(), file)
	if err != nil {
		log.Println("❌ Image upload failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}

// UploadImages stores up to 10 product images in one request.
func UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image files provided"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image files provided"})
		return
	}
	if len(files) > maxBatchFiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A maximum of 10 images can be uploaded at once"})
		return
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		if msg, ok := validImage(file); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		url, err := services.UploadImage(c.Request.Context(), file)
		if err != nil {
			log.Println("❌ Image upload failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload images"})
			return
		}
		urls = append(urls, url)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "images": urls})
}
