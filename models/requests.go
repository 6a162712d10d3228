package models

type CreateCheckoutSessionRequest struct {
	PriceID string `json:"priceId"`
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt"`
}
