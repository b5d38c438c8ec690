package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope every endpoint answers with. Application
// level failures still travel with HTTP 200; clients switch on Success.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func Fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: false, Message: message})
}

func FailErr(c *gin.Context, err error) {
	Fail(c, err.Error())
}
