package billing

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Client wraps the Stripe API for subscription checkout. Stripe owns all
// subscription state; nothing is persisted locally.
type Client struct {
	api           *client.API
	webhookSecret string
	successURL    string
	cancelURL     string
}

func New(secretKey, webhookSecret, clientURL string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Client{
		api:           api,
		webhookSecret: webhookSecret,
		successURL:    clientURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:     clientURL + "/pricing",
	}
}

// CreateCheckoutSession opens a hosted, subscription-mode checkout for the
// given plan price. The client redirects to Stripe using the returned
// session's ID.
func (c *Client) CreateCheckoutSession(priceID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
	}

	return c.api.CheckoutSessions.New(params)
}

// VerifyWebhook validates the payload signature against the shared webhook
// secret. The payload must be the raw request body; any re-encoding breaks
// the signature.
func (c *Client) VerifyWebhook(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signature, c.webhookSecret)
}

// HandleWebhook verifies and then dispatches a webhook delivery. An
// unverified payload is never dispatched.
func (c *Client) HandleWebhook(payload []byte, signature string) error {
	event, err := c.VerifyWebhook(payload, signature)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	c.HandleEvent(event)
	return nil
}

// HandleEvent reacts to subscription lifecycle notifications. Unrecognized
// event types are logged and acknowledged so Stripe does not retry them.
func (c *Client) HandleEvent(event stripe.Event) {
	switch event.Type {
	case "customer.subscription.created":
		if sub, err := subscriptionFromEvent(event); err == nil {
			log.Printf("Subscription created: %s", sub.ID)
		}
	case "customer.subscription.updated":
		if sub, err := subscriptionFromEvent(event); err == nil {
			log.Printf("Subscription updated: %s (status %s)", sub.ID, sub.Status)
		}
	case "customer.subscription.deleted":
		if sub, err := subscriptionFromEvent(event); err == nil {
			log.Printf("Subscription canceled: %s", sub.ID)
		}
	default:
		log.Printf("Unhandled event type %s", event.Type)
	}
}

func subscriptionFromEvent(event stripe.Event) (*stripe.Subscription, error) {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return nil, fmt.Errorf("parse subscription event: %w", err)
	}
	return &sub, nil
}

// GetSubscription fetches the processor's current view of a subscription.
func (c *Client) GetSubscription(id string) (*stripe.Subscription, error) {
	return c.api.Subscriptions.Get(id, nil)
}

// CancelSubscription cancels a subscription immediately and returns its
// final state.
func (c *Client) CancelSubscription(id string) (*stripe.Subscription, error) {
	return c.api.Subscriptions.Cancel(id, nil)
}
