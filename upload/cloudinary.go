package upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader pushes images to Cloudinary and hands back a durable HTTPS URL.
type Uploader struct {
	cld *cloudinary.Cloudinary
}

func New(cloudinaryURL string) (*Uploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary configuration error: %w", err)
	}
	return &Uploader{cld: cld}, nil
}

// Upload accepts a base64 data URI or a remote URL. The transformation
// caps stored images at 1024x1024 with automatic quality so storage does
// not grow unbounded with whatever clients submit.
func (u *Uploader) Upload(ctx context.Context, image string) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder:         "ai-image-gen",
		Transformation: "c_limit,w_1024,h_1024,q_auto",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	// The SDK reports some upload failures in the body instead of err.
	if result.Error.Message != "" {
		return "", errors.New(result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", errors.New("cloudinary upload returned no URL")
	}
	return result.SecureURL, nil
}
