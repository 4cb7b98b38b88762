// Package testimonial serves the storefront testimonial wall.
// Testimonials are curated by the back office and not tied to products.
package testimonial

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"oudora_back_end/internal/database"
	"oudora_back_end/internal/models"
)

func List(c *gin.Context) {
	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	iter := session.Query(`SELECT testimonial_id, name, rating, comment, location, created_at FROM testimonials`).
		WithContext(c.Request.Context()).Iter()

	testimonials := []models.Testimonial{}
	var t models.Testimonial
	for iter.Scan(&t.ID, &t.Name, &t.Rating, &t.Comment, &t.Location, &t.CreatedAt) {
		testimonials = append(testimonials, t)
		t = models.Testimonial{}
	}
	if err := iter.Close(); err != nil {
		log.Println("❌ Testimonial list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

func Get(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	var t models.Testimonial
	err = session.Query(`SELECT testimonial_id, name, rating, comment, location, created_at FROM testimonials WHERE testimonial_id = ?`, id).
		WithContext(c.Request.Context()).Scan(&t.ID, &t.Name, &t.Rating, &t.Comment, &t.Location, &t.CreatedAt)
	if err == gocql.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, t)
}

type testimonialInput struct {
	Name     string `json:"name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Location string `json:"location"`
}

func Create(c *gin.Context) {
	var input testimonialInput
	if err := c.ShouldBindJSON(&input); err != nil ||
		input.Name == "" || input.Rating == 0 || input.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if input.Rating < 1 || input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	t := models.Testimonial{
		ID:        gocql.TimeUUID(),
		Name:      input.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Location:  input.Location,
		CreatedAt: time.Now(),
	}

	err = session.Query(`INSERT INTO testimonials (testimonial_id, name, rating, comment, location, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Rating, t.Comment, t.Location, t.CreatedAt).
		WithContext(c.Request.Context()).Exec()
	if err != nil {
		log.Println("❌ Testimonial insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, t)
}

func Update(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	var input testimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	var t models.Testimonial
	err = session.Query(`SELECT testimonial_id, name, rating, comment, location, created_at FROM testimonials WHERE testimonial_id = ?`, id).
		WithContext(c.Request.Context()).Scan(&t.ID, &t.Name, &t.Rating, &t.Comment, &t.Location, &t.CreatedAt)
	if err == gocql.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if input.Name != "" {
		t.Name = input.Name
	}
	if input.Comment != "" {
		t.Comment = input.Comment
	}
	if input.Location != "" {
		t.Location = input.Location
	}
	if input.Rating != 0 {
		if input.Rating < 1 || input.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
			return
		}
		t.Rating = input.Rating
	}

	err = session.Query(`UPDATE testimonials SET name = ?, rating = ?, comment = ?, location = ? WHERE testimonial_id = ?`,
		t.Name, t.Rating, t.Comment, t.Location, t.ID).
		WithContext(c.Request.Context()).Exec()
	if err != nil {
		log.Println("❌ Testimonial update failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, t)
}

func Delete(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	var found gocql.UUID
	err = session.Query(`SELECT testimonial_id FROM testimonials WHERE testimonial_id = ?`, id).
		WithContext(c.Request.Context()).Scan(&found)
	if err == gocql.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if err := session.Query(`DELETE FROM testimonials WHERE testimonial_id = ?`, id).
		WithContext(c.Request.Context()).Exec(); err != nil {
		log.Println("❌ Testimonial delete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}
