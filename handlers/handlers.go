package handlers

import "github.com/gin-gonic/gin"

// bindJSON parses the request body into obj. On failure it records the
// error for the error-handling middleware and aborts the request.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		c.Abort()
		return false
	}
	return true
}

// fail records err for the error-handling middleware and aborts the request.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
