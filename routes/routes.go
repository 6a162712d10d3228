package routes

import (
	"net/http"
	"strings"
	"time"

	"luminai/config"
	"luminai/handlers"
	"luminai/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Origin", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.RateLimitMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "API is running"})
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"env":       gin.Mode(),
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/post", handlers.GetPosts)
		v1.POST("/post", handlers.CreatePost)

		v1.GET("/dalle", handlers.DalleStatus)
		v1.POST("/dalle", handlers.GenerateImage)

		v1.GET("/plans", handlers.GetPlans)
		v1.GET("/ideas", handlers.GetIdeas)
		v1.GET("/tasks/templates", handlers.GetTaskTemplates)
		v1.GET("/seo/checklist", handlers.GetSEOChecklist)
	}

	stripeGroup := router.Group("/api/stripe")
	{
		stripeGroup.POST("/create-checkout-session", handlers.CreateCheckoutSession)
		// The webhook handler reads the raw body itself; nothing may bind
		// JSON on this route before it or signature verification breaks.
		stripeGroup.POST("/webhook", handlers.StripeWebhook)
		stripeGroup.GET("/subscription/:id", handlers.GetSubscription)
		stripeGroup.POST("/subscription/:id/cancel", handlers.CancelSubscription)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
