package handlers

import (
	"log"
	"net/http"

	"luminai/models"

	"github.com/gin-gonic/gin"
)

// CreateCheckoutSession opens a hosted checkout for a subscription plan
// and returns the session ID the client redirects with.
func CreateCheckoutSession(c *gin.Context) {
	var req models.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PriceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "priceId is required"})
		return
	}

	session, err := billingClient.CreateCheckoutSession(req.PriceID)
	if err != nil {
		log.Printf("Stripe session error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errorDetail(err, "Failed to create checkout session")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": session.ID})
}

// StripeWebhook receives signed event deliveries. The raw body is what the
// signature covers, so it is read before any JSON binding; no middleware
// touches this route's body.
func StripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, "Webhook Error: could not read body")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := billingClient.HandleWebhook(payload, signature); err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		c.String(http.StatusBadRequest, "Webhook Error: %v", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// GetSubscription is a passthrough read against the processor, which is
// the source of truth for subscription state.
func GetSubscription(c *gin.Context) {
	sub, err := billingClient.GetSubscription(c.Param("id"))
	if err != nil {
		log.Printf("Subscription retrieval error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errorDetail(err, "Failed to retrieve subscription")})
		return
	}

	c.JSON(http.StatusOK, sub)
}

// CancelSubscription cancels immediately via the processor and returns the
// final subscription state.
func CancelSubscription(c *gin.Context) {
	sub, err := billingClient.CancelSubscription(c.Param("id"))
	if err != nil {
		log.Printf("Subscription cancellation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errorDetail(err, "Failed to cancel subscription")})
		return
	}

	c.JSON(http.StatusOK, sub)
}

func errorDetail(err error, generic string) string {
	if gin.Mode() == gin.ReleaseMode {
		return generic
	}
	return err.Error()
}
