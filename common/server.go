package common

import (
	"fmt"
	"net/http"

	"contests_printer/lib/handler"
	"contests_printer/lib/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"
	RequestIDKey    = "request_id"
)

func (p *Printer) recoverRequest(c *gin.Context, err any) {
	logger.Error("Request %s %s failed with panic: %v", c.Request.Method, c.Request.URL.Path, err)
	handler.RespErr(c, http.StatusInternalServerError, "Internal error")
}

func (p *Printer) InitServer() {
	gin.SetMode(gin.ReleaseMode)
	p.Router = gin.New()

	p.Router.Use(requestID)
	if logger.GetLevel() <= logger.LogLevelTrace {
		p.Router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
			Output:    logger.CreateWriter(logger.LogLevelTrace, "Handler log:"),
			Formatter: formatRequest,
		}))
	}
	p.Router.Use(p.collectMetrics)
	p.Router.Use(gin.CustomRecoveryWithWriter(
		logger.CreateWriter(logger.LogLevelError, "Panic in handler:"),
		p.recoverRequest,
	))
}

// requestID keeps client supplied id or generates a new one
func requestID(c *gin.Context) {
	rid := c.GetHeader(RequestIDHeader)
	if rid == "" {
		rid = uuid.NewString()
	}
	c.Set(RequestIDKey, rid)
	c.Header(RequestIDHeader, rid)
	c.Next()
}

func (p *Printer) collectMetrics(c *gin.Context) {
	c.Next()
	p.Metrics.ProcessRequest(c.FullPath(), c.Writer.Status())
}

func formatRequest(param gin.LogFormatterParams) string {
	return fmt.Sprintf("rid=%v user=%v method=%s path=%s status=%d latency=%v ip=%s\n",
		param.Keys[RequestIDKey],
		param.Keys[gin.AuthUserKey],
		param.Method,
		param.Path,
		param.StatusCode,
		param.Latency,
		param.ClientIP,
	)
}
