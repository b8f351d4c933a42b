package contests

import (
	"contests_printer/common"
	"contests_printer/lib/logger"

	"github.com/gin-gonic/gin"
)

const authRealm = "Printer"

type Handler struct {
	printer *common.Printer
}

// SetupContests registers contests table and file endpoints under the configured path prefix.
// All of them, and metrics endpoint if enabled, require basic auth
func SetupContests(p *common.Printer) error {
	if len(p.Config.Users) == 0 {
		return logger.Error("No users specified, contests can not be served")
	}

	h := &Handler{
		printer: p,
	}

	auth := gin.BasicAuthForRealm(gin.Accounts(p.Config.Users), authRealm)

	r := p.Router.Group(p.Config.PathPrefix, auth)
	r.GET("", h.handleIndex)
	r.GET("/:contest/:filename", h.handleFile)

	if p.Config.MetricsPath != "" {
		p.Router.GET(p.Config.MetricsPath, auth, gin.WrapH(p.Metrics.Handler()))
		logger.Info("Metrics are served at %s", p.Config.MetricsPath)
	}
	return nil
}
