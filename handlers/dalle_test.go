package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"luminai/handlers"
	"luminai/models"
	"luminai/pexels"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearcher struct {
	result *pexels.Result
	err    error
	calls  int
}

func (s *stubSearcher) FindImage(ctx context.Context, prompt string) (*pexels.Result, error) {
	s.calls++
	return s.result, s.err
}

func newDalleRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/v1/dalle", handlers.DalleStatus)
	r.POST("/api/v1/dalle", handlers.GenerateImage)
	return r
}

func TestDalleStatus(t *testing.T) {
	w := doJSON(t, newDalleRouter(), http.MethodGet, "/api/v1/dalle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Image Generation API is running", body["message"])
}

func TestGenerateImageEmptyPrompt(t *testing.T) {
	searcher := &stubSearcher{}
	handlers.SetImageSearcher(searcher)

	for _, prompt := range []string{"", "   "} {
		w := doJSON(t, newDalleRouter(), http.MethodPost, "/api/v1/dalle", models.GenerateImageRequest{Prompt: prompt})
		require.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeBody(t, w)
		assert.Contains(t, body["error"], "Prompt is required")
	}

	assert.Zero(t, searcher.calls, "blank prompt must not reach the adapter")
}

func TestGenerateImageNoResults(t *testing.T) {
	handlers.SetImageSearcher(&stubSearcher{err: pexels.ErrNoResults})

	w := doJSON(t, newDalleRouter(), http.MethodPost, "/api/v1/dalle", models.GenerateImageRequest{Prompt: "mountains"})
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "No images found for this prompt.", body["error"])
}

func TestGenerateImageSuccess(t *testing.T) {
	handlers.SetImageSearcher(&stubSearcher{result: &pexels.Result{
		Photo:        "https://images.pexels.com/photos/1/original.jpg",
		Alt:          "Snowy ridge",
		Photographer: "Jane Doe",
	}})

	w := doJSON(t, newDalleRouter(), http.MethodPost, "/api/v1/dalle", models.GenerateImageRequest{Prompt: "mountains"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "https://images.pexels.com/photos/1/original.jpg", body["photo"])
	assert.Equal(t, "Snowy ridge", body["alt"])
	assert.Equal(t, "Jane Doe", body["photographer"])
}

func TestGenerateImageUpstreamStatusPassthrough(t *testing.T) {
	handlers.SetImageSearcher(&stubSearcher{err: &pexels.APIError{
		StatusCode: http.StatusTooManyRequests,
		Body:       "rate limit exceeded",
	}})

	w := doJSON(t, newDalleRouter(), http.MethodPost, "/api/v1/dalle", models.GenerateImageRequest{Prompt: "mountains"})
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Failed to fetch image", body["error"])
}

func TestGenerateImageTransportFailure(t *testing.T) {
	handlers.SetImageSearcher(&stubSearcher{err: errors.New("dial tcp: connection refused")})

	w := doJSON(t, newDalleRouter(), http.MethodPost, "/api/v1/dalle", models.GenerateImageRequest{Prompt: "mountains"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Failed to fetch image", body["error"])
}

func TestGenerateImageDetailSuppressedInRelease(t *testing.T) {
	handlers.SetImageSearcher(&stubSearcher{err: errors.New("secret internal detail")})

	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	w := doJSON(t, newDalleRouter(), http.MethodPost, "/api/v1/dalle", models.GenerateImageRequest{Prompt: "mountains"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	_, hasDetails := body["details"]
	assert.False(t, hasDetails)
	assert.NotContains(t, w.Body.String(), "secret internal detail")
}
