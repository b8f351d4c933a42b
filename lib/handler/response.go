package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// RespText writes complete plain text body with status 200
func RespText(c *gin.Context, data []byte) {
	c.Data(http.StatusOK, ContentTypeText, data)
}

// RespErr aborts request with given status and plain text message
func RespErr(c *gin.Context, code int, errf string, values ...interface{}) {
	c.Abort()
	c.Data(code, ContentTypeText, []byte(fmt.Sprintf(errf, values...)))
}
