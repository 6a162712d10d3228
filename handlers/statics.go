package handlers

import (
	"net/http"

	"luminai/staticdata"

	"github.com/gin-gonic/gin"
)

// Read-only catalogue endpoints backing the client's demo tools.

func GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": staticdata.Plans()})
}

func GetIdeas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ideas": staticdata.Ideas()})
}

func GetTaskTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, staticdata.TaskTemplates())
}

func GetSEOChecklist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recommendations": staticdata.SEOChecklist()})
}
