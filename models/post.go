package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Prompt    string             `bson:"prompt" json:"prompt"`
	Photo     string             `bson:"photo" json:"photo"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}

type CreatePostRequest struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
	Photo  string `json:"photo"`
}
