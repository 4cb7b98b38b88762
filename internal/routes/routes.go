// Package routes wires every API group onto the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"oudora_back_end/internal/handlers"
	"oudora_back_end/internal/handlers/order"
	"oudora_back_end/internal/handlers/product"
	"oudora_back_end/internal/handlers/review"
	"oudora_back_end/internal/handlers/testimonial"
	"oudora_back_end/internal/middleware"
	"oudora_back_end/internal/services"
	"oudora_back_end/internal/store"
)

func RegisterRoutes(r *gin.Engine) {
	mailer := services.SMTPMailer{}

	orderStore := store.NewOrderStore()
	reviewStore := store.NewReviewStore()
	productStore := store.NewProductStore()

	orderHandler := order.NewOrderHandler(services.NewOrderService(orderStore, mailer), orderStore)
	reviewHandler := review.NewReviewHandler(reviewStore, productStore,
		services.NewRatingService(reviewStore, productStore))
	categoryHandler := product.NewCategoryHandler(store.NewCategoryStore())
	fragranceTypeHandler := product.NewFragranceTypeHandler(store.NewFragranceTypeStore())
	contactHandler := handlers.NewContactHandler(mailer)

	admin := []gin.HandlerFunc{middleware.AuthRequired(), middleware.RequireAdmin}

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.LoginRateLimit(), handlers.Login)
			auth.POST("/register", handlers.Register)
			auth.GET("/verify", handlers.Verify)
		}

		products := api.Group("/products")
		{
			products.GET("", product.GetProducts)
			products.GET("/:id", product.GetProduct)
			products.POST("", append(admin, product.CreateProduct)...)
			products.PUT("/:id", append(admin, product.UpdateProduct)...)
			products.DELETE("/:id", append(admin, product.DeleteProduct)...)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", append(admin, categoryHandler.Create)...)
			categories.PUT("/:id", append(admin, categoryHandler.Update)...)
			categories.DELETE("/:name", append(admin, categoryHandler.Delete)...)
		}

		fragranceTypes := api.Group("/fragrance-types")
		{
			fragranceTypes.GET("", fragranceTypeHandler.List)
			fragranceTypes.POST("", append(admin, fragranceTypeHandler.Create)...)
			fragranceTypes.PUT("/:id", append(admin, fragranceTypeHandler.Update)...)
			fragranceTypes.DELETE("/:id", append(admin, fragranceTypeHandler.Delete)...)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", reviewHandler.List)
			reviews.GET("/:id", reviewHandler.Get)
			reviews.POST("", reviewHandler.Create)
			reviews.PUT("/:id", append(admin, reviewHandler.Update)...)
			reviews.DELETE("/:id", append(admin, reviewHandler.Delete)...)
		}

		orders := api.Group("/orders")
		{
			// Tracking is public: the emailed order id is the access control.
			orders.GET("/track/:id", orderHandler.Track)
			orders.POST("", orderHandler.Create)
			orders.GET("", append(admin, orderHandler.List)...)
			orders.GET("/:id", append(admin, orderHandler.Get)...)
			orders.PUT("/:id/status", append(admin, orderHandler.UpdateStatus)...)
			orders.DELETE("/:id", append(admin, orderHandler.Delete)...)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", testimonial.List)
			testimonials.GET("/:id", testimonial.Get)
			testimonials.POST("", append(admin, testimonial.Create)...)
			testimonials.PUT("/:id", append(admin, testimonial.Update)...)
			testimonials.DELETE("/:id", append(admin, testimonial.Delete)...)
		}

		upload := api.Group("/upload", admin...)
		{
			upload.POST("/image", handlers.UploadImage)
			upload.POST("/images", handlers.UploadImages)
		}

		api.POST("/contact", middleware.ContactRateLimit(), contactHandler.Submit)
	}
}
