package handlers

import (
	"context"

	"luminai/models"
	"luminai/pexels"

	"github.com/stripe/stripe-go/v76"
)

// Adapter contracts the handlers depend on. Wired from main at startup;
// tests swap in stubs.

type PostStore interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, name, prompt, photoURL string) (*models.Post, error)
}

type PhotoUploader interface {
	Upload(ctx context.Context, image string) (string, error)
}

type ImageSearcher interface {
	FindImage(ctx context.Context, prompt string) (*pexels.Result, error)
}

type BillingClient interface {
	CreateCheckoutSession(priceID string) (*stripe.CheckoutSession, error)
	HandleWebhook(payload []byte, signature string) error
	GetSubscription(id string) (*stripe.Subscription, error)
	CancelSubscription(id string) (*stripe.Subscription, error)
}

var (
	postStore     PostStore
	photoUploader PhotoUploader
	imageSearcher ImageSearcher
	billingClient BillingClient
)

func SetPostStore(s PostStore)         { postStore = s }
func SetPhotoUploader(u PhotoUploader) { photoUploader = u }
func SetImageSearcher(s ImageSearcher) { imageSearcher = s }
func SetBillingClient(b BillingClient) { billingClient = b }
