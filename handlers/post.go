package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"luminai/models"
	"luminai/storage"

	"github.com/gin-gonic/gin"
)

// GetPosts returns every community post. Photos are guaranteed non-empty
// by the store (placeholder substitution happens there).
func GetPosts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	posts, err := postStore.ListPosts(ctx)
	if err != nil {
		log.Printf("Error fetching posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch posts"})
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": posts})
}

// CreatePost uploads the submitted image, then persists the post. The
// upload must finish first because the record stores the durable URL; a
// persistence failure after a successful upload leaves the uploaded asset
// orphaned.
func CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Prompt) == "" || strings.TrimSpace(req.Photo) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing required fields: name, prompt, or photo",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	photoURL, err := photoUploader.Upload(ctx, req.Photo)
	if err != nil {
		log.Printf("Error uploading image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to upload image"})
		return
	}

	post, err := postStore.CreatePost(ctx, req.Name, req.Prompt, photoURL)
	if err != nil {
		if errors.Is(err, storage.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Missing required fields: name, prompt, or photo",
			})
			return
		}
		log.Printf("Error creating post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": post})
}
