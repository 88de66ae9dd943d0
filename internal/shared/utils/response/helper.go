package response

import "github.com/gin-gonic/gin"

func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}
