package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the terminal handler: it turns panics and any unanswered
// gin errors into a JSON body so no failure escapes without one. In release
// mode the message is generic; in debug mode it is the raw error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Error: panic recovered: %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": errorMessage(fmt.Errorf("%v", r)),
				})
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			log.Printf("Error: %v", err)

			status := c.Writer.Status()
			if status < http.StatusBadRequest {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": errorMessage(err)})
		}
	}
}

func errorMessage(err error) string {
	if gin.Mode() == gin.ReleaseMode {
		return "Something went wrong!"
	}
	return err.Error()
}
