package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"luminai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PlaceholderPhoto is substituted for any post whose stored photo is empty,
// so clients never render a broken image.
const PlaceholderPhoto = "https://via.placeholder.com/400x400?text=Image+Not+Found"

// ErrMissingFields is returned when a required post field is empty.
var ErrMissingFields = errors.New("missing required fields: name, prompt, or photo")

type PostStore struct {
	coll *mongo.Collection
}

func NewPostStore(coll *mongo.Collection) *PostStore {
	return &PostStore{coll: coll}
}

// ListPosts returns every post. Posts are immutable once created, so there
// is no filtering or pagination here; clients filter on their side.
func (s *PostStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	for i := range posts {
		if posts[i].Photo == "" {
			posts[i].Photo = PlaceholderPhoto
		}
	}

	return posts, nil
}

// CreatePost validates and persists a new post. Validation happens before
// any write, so a rejected request never touches the collection.
func (s *PostStore) CreatePost(ctx context.Context, name, prompt, photoURL string) (*models.Post, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(prompt) == "" || strings.TrimSpace(photoURL) == "" {
		return nil, ErrMissingFields
	}

	post := models.Post{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Prompt:    prompt,
		Photo:     photoURL,
		CreatedAt: time.Now().Unix(),
	}

	if _, err := s.coll.InsertOne(ctx, post); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return &post, nil
}
