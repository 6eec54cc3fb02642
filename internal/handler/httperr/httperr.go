package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the failure envelope: cod is always 1, message explains why.
type Response struct {
	Status  int    `json:"-"`
	Cod     int    `json:"cod"`
	Message string `json:"message"`
}

// AbortWithError records the original error on the context for the logging
// middleware and writes the failure envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Cod: 1, Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
