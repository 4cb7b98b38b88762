package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"oudora_back_end/internal/services"
	"oudora_back_end/internal/utils"
)

// ContactHandler relays contact form submissions to the shop owner's
// inbox. Messages are not persisted.
type ContactHandler struct {
	Mailer services.Mailer
}

func NewContactHandler(mailer services.Mailer) *ContactHandler {
	return &ContactHandler{Mailer: mailer}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil ||
		input.Name == "" || input.Email == "" || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required (name, email, message)"})
		return
	}

	if !utils.IsValidEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	err := h.Mailer.SendContactMessage(
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Email),
		strings.TrimSpace(input.Message),
	)
	if err != nil {
		log.Println("❌ Contact form email failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Your message has been sent successfully. We will get back to you soon!",
	})
}
