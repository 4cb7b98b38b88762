// Package product serves the perfume catalog: product CRUD plus the
// category and fragrance type taxonomies.
package product

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"oudora_back_end/internal/cache"
	"oudora_back_end/internal/database"
	"oudora_back_end/internal/models"
	"oudora_back_end/internal/services"
)

const productColumns = `product_id, name, description, price, image, images, category, fragrance_type, fragrance_notes, rating, reviews_count, in_stock, size, discount, created_at, updated_at`

func scanAllProducts(c *gin.Context) ([]models.Product, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT ` + productColumns + ` FROM products`).
		WithContext(c.Request.Context()).Iter()

	products := []models.Product{}
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Images,
		&p.Category, &p.FragranceType, &p.FragranceNotes, &p.Rating, &p.ReviewsCount,
		&p.InStock, &p.Size, &p.Discount, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{}
	}
	return products, iter.Close()
}

// GetProducts serves the shop listing. Without query parameters the
// full catalog is returned (Redis-cached); page+limit switch to the
// paginated admin envelope. Search goes through Elasticsearch and
// falls back to an in-memory scan when the index is unavailable.
func GetProducts(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")
	fragranceType := c.Query("fragranceType")
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	plainListing := search == "" && category == "" && fragranceType == "" && (page <= 0 || limit <= 0)

	if plainListing {
		var cached []models.Product
		if cache.GetList(c.Request.Context(), cache.ProductsKey, &cached) {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	var products []models.Product
	if search != "" {
		found, err := services.SearchProducts(search)
		if err == nil {
			products = found
		} else {
			log.Println("⚠️ Search fell back to ScyllaDB scan:", err)
			all, err := scanAllProducts(c)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
				return
			}
			products = MatchSearch(all, search)
		}
	} else {
		all, err := scanAllProducts(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		products = all
	}

	products = Filter(products, category, fragranceType)

	if page > 0 && limit > 0 {
		Sort(products, c.DefaultQuery("sortBy", "createdAt"), c.Query("sortOrder"))
		pageItems, pagination := Paginate(products, page, limit)
		c.JSON(http.StatusOK, gin.H{"products": pageItems, "pagination": pagination})
		return
	}

	if plainListing {
		cache.SetList(c.Request.Context(), cache.ProductsKey, products)
	}
	c.JSON(http.StatusOK, products)
}

func GetProduct(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	var p models.Product
	err = session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`, id).
		WithContext(c.Request.Context()).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Images,
		&p.Category, &p.FragranceType, &p.FragranceNotes, &p.Rating, &p.ReviewsCount,
		&p.InStock, &p.Size, &p.Discount, &p.CreatedAt, &p.UpdatedAt)
	if err == gocql.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, p)
}

type productInput struct {
	Name           *string   `json:"name"`
	Description    *string   `json:"description"`
	Price          *float64  `json:"price"`
	Image          *string   `json:"image"`
	Images         *[]string `json:"images"`
	Category       *string   `json:"category"`
	FragranceType  *string   `json:"fragranceType"`
	FragranceNotes *[]string `json:"fragranceNotes"`
	InStock        *bool     `json:"inStock"`
	Size           *string   `json:"size"`
	Discount       *float64  `json:"discount"`
}

func (in *productInput) apply(p *models.Product) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Images != nil {
		p.Images = *in.Images
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.FragranceType != nil {
		p.FragranceType = *in.FragranceType
	}
	if in.FragranceNotes != nil {
		p.FragranceNotes = *in.FragranceNotes
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	if in.Size != nil {
		p.Size = *in.Size
	}
	if in.Discount != nil {
		p.Discount = *in.Discount
	}
}

// CreateProduct adds a product with catalog defaults for the optional
// fields. Rating and reviewsCount start at zero; they are derived from
// reviews and never accepted from the client.
func CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if input.Name == nil || *input.Name == "" ||
		input.Description == nil || *input.Description == "" ||
		input.Price == nil || input.Category == nil || *input.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	now := time.Now()
	p := models.Product{
		ID:            gocql.TimeUUID(),
		Image:         "/images/1.png",
		FragranceType: "Oriental",
		InStock:       true,
		Size:          "50ml",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	input.apply(&p)

	if len(p.Images) == 0 && p.Image != "" {
		p.Images = []string{p.Image}
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	err = session.Query(`INSERT INTO products (`+productColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Price, p.Image, p.Images, p.Category,
		p.FragranceType, p.FragranceNotes, p.Rating, p.ReviewsCount, p.InStock,
		p.Size, p.Discount, p.CreatedAt, p.UpdatedAt).
		WithContext(c.Request.Context()).Exec()
	if err != nil {
		log.Println("❌ Product insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	cache.Invalidate(c.Request.Context(), cache.ProductsKey)
	go services.IndexProduct(p)

	c.JSON(http.StatusCreated, p)
}

// UpdateProduct is a partial update: only the fields present in the
// request body change.
func UpdateProduct(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	var p models.Product
	err = session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`, id).
		WithContext(c.Request.Context()).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Images,
		&p.Category, &p.FragranceType, &p.FragranceNotes, &p.Rating, &p.ReviewsCount,
		&p.InStock, &p.Size, &p.Discount, &p.CreatedAt, &p.UpdatedAt)
	if err == gocql.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	input.apply(&p)
	p.UpdatedAt = time.Now()

	err = session.Query(`UPDATE products SET name = ?, description = ?, price = ?, image = ?, images = ?, category = ?, fragrance_type = ?, fragrance_notes = ?, in_stock = ?, size = ?, discount = ?, updated_at = ? WHERE product_id = ?`,
		p.Name, p.Description, p.Price, p.Image, p.Images, p.Category,
		p.FragranceType, p.FragranceNotes, p.InStock, p.Size, p.Discount,
		p.UpdatedAt, p.ID).
		WithContext(c.Request.Context()).Exec()
	if err != nil {
		log.Println("❌ Product update failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	cache.Invalidate(c.Request.Context(), cache.ProductsKey)
	go services.IndexProduct(p)

	c.JSON(http.StatusOK, p)
}

func DeleteProduct(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	var found gocql.UUID
	err = session.Query(`SELECT product_id FROM products WHERE product_id = ?`, id).
		WithContext(c.Request.Context()).Scan(&found)
	if err == gocql.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if err := session.Query(`DELETE FROM products WHERE product_id = ?`, id).
		WithContext(c.Request.Context()).Exec(); err != nil {
		log.Println("❌ Product delete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	cache.Invalidate(c.Request.Context(), cache.ProductsKey)
	go services.RemoveProduct(id.String())

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
