package handlers

import (
	"github.com/gin-gonic/gin"
)

// abortWithError hands the error to the ErrorHandler middleware for
// rendering.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
