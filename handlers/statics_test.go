package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"luminai/handlers"
	"luminai/models"
	"luminai/staticdata"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaticsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	require.NoError(t, staticdata.Load())

	r := gin.New()
	r.GET("/api/v1/plans", handlers.GetPlans)
	r.GET("/api/v1/ideas", handlers.GetIdeas)
	r.GET("/api/v1/tasks/templates", handlers.GetTaskTemplates)
	r.GET("/api/v1/seo/checklist", handlers.GetSEOChecklist)
	return r
}

func TestGetPlans(t *testing.T) {
	w := doJSON(t, newStaticsRouter(t), http.MethodGet, "/api/v1/plans", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Plans []models.Plan `json:"plans"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Plans, 3)

	ids := make([]string, 0, len(body.Plans))
	for _, p := range body.Plans {
		ids = append(ids, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Positive(t, p.Price)
		assert.NotEmpty(t, p.Features)
	}
	assert.Equal(t, []string{"price_starter", "price_professional", "price_enterprise"}, ids)
}

func TestGetIdeas(t *testing.T) {
	w := doJSON(t, newStaticsRouter(t), http.MethodGet, "/api/v1/ideas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Ideas []string `json:"ideas"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Ideas)
}

func TestGetTaskTemplates(t *testing.T) {
	w := doJSON(t, newStaticsRouter(t), http.MethodGet, "/api/v1/tasks/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var templates []models.TaskTemplate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &templates))
	require.NotEmpty(t, templates)
	for _, tpl := range templates {
		assert.NotEmpty(t, tpl.Title)
		assert.Contains(t, []string{"pending", "completed", "in-progress"}, tpl.Status)
	}
}

func TestGetSEOChecklist(t *testing.T) {
	w := doJSON(t, newStaticsRouter(t), http.MethodGet, "/api/v1/seo/checklist", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Recommendations []string `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Recommendations)
}
