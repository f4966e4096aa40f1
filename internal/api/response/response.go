package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  any  `json:"extras"`
}

func NewResponse(success bool, code int, extras any) Response {
	return Response{
		Success: success,
		Code:    code,
		Extras:  extras,
	}
}

// SuccessResponseContent answers 200 with a single content string.
func SuccessResponseContent(c *gin.Context, content string) {
	c.JSON(http.StatusOK, NewResponse(true, http.StatusOK, gin.H{"content": content}))
}

// SuccessResponseList answers 200 with a list of items.
func SuccessResponseList(c *gin.Context, list []any) {
	c.JSON(http.StatusOK, NewResponse(true, http.StatusOK, gin.H{"list": list}))
}

// ErrorResponse answers code with a message and aborts the handler chain.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, NewResponse(false, code, gin.H{"message": message}))
}
