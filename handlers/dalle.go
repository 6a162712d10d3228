package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"luminai/models"
	"luminai/pexels"

	"github.com/gin-gonic/gin"
)

func DalleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Image Generation API is running"})
}

// GenerateImage looks up the best stock-photo match for a prompt. This is
// deliberately a search, not generation; it keeps the original product's
// behavior of answering prompts with licensed photos.
func GenerateImage(c *gin.Context) {
	var req models.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required and must be a valid string."})
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required and must be a valid string."})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	result, err := imageSearcher.FindImage(ctx, req.Prompt)
	if err != nil {
		if errors.Is(err, pexels.ErrNoResults) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No images found for this prompt."})
			return
		}
		if errors.Is(err, pexels.ErrEmptyPrompt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required and must be a valid string."})
			return
		}

		log.Printf("Pexels API error: %v", err)

		status := http.StatusInternalServerError
		var apiErr *pexels.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}

		body := gin.H{"error": "Failed to fetch image"}
		if gin.Mode() != gin.ReleaseMode {
			body["details"] = err.Error()
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"photo":        result.Photo,
		"alt":          result.Alt,
		"photographer": result.Photographer,
	})
}
