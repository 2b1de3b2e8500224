package api

import (
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer    = errorResponse{Code: 1000, Message: "internal server error"}
	errorInvalidParameters = errorResponse{Code: 1001, Message: "invalid parameters"}
	errorMissingCoordinate = errorResponse{Code: 1002, Message: "missing required parameters: longitude, latitude"}
	errorInvalidRadius     = errorResponse{Code: 1003, Message: "radius must be a positive integer"}
	errorUnknownFilterKey  = errorResponse{Code: 1004, Message: "unknown filter key"}
	errorUnknownToilet     = errorResponse{Code: 1100, Message: "toilet not found"}
)

// abortWithEncoding ends the request with an error body. The underlying
// errors are attached to the gin context for logging only; the response
// carries the fixed public message.
func abortWithEncoding(c *gin.Context, code int, resp errorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.AbortWithStatusJSON(code, resp)
}
