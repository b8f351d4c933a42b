package contests

import (
	"bytes"
	"net/http"
	"os"
	"time"

	"contests_printer/contests/filesystem"
	"contests_printer/contests/render"
	"contests_printer/lib/handler"
	"contests_printer/lib/logger"

	"github.com/gin-gonic/gin"
)

// readFile is replaced in tests to change the file between scan and read
var readFile = os.ReadFile

func (h *Handler) handleIndex(c *gin.Context) {
	contests := h.scanContests(c)
	if contests == nil {
		return
	}

	table := render.NewTable(h.printer.Config.PathPrefix, contests)

	// Page is rendered fully before sending so that error can not interrupt the response
	page := new(bytes.Buffer)
	if err := render.Render(page, table); err != nil {
		logger.Error("Failed to render contests table: %v", err)
		handler.RespErr(c, http.StatusInternalServerError, "Failed to render contests table")
		return
	}

	logger.Debug("Sending contests table with %d contests to %s", len(contests), c.GetString(gin.AuthUserKey))
	c.Data(http.StatusOK, handler.ContentTypeHTML, page.Bytes())
}

func (h *Handler) handleFile(c *gin.Context) {
	contestName := c.Param("contest")
	filename := c.Param("filename")

	contests := h.scanContests(c)
	if contests == nil {
		return
	}

	contest := filesystem.FindContest(contests, contestName)
	if contest == nil {
		handler.RespErr(c, http.StatusNotFound, "Contest %s not found", contestName)
		return
	}

	file := contest.FindFile(filename)
	if file == nil {
		handler.RespErr(c, http.StatusNotFound, "File %s not found in contest %s", filename, contestName)
		return
	}

	// File may be removed after the scan, it is reported as internal error
	content, err := readFile(file.Path)
	if err != nil {
		logger.Error("Failed to read problem file %s: %v", file.Path, err)
		handler.RespErr(c, http.StatusInternalServerError, "Failed to read file %s", filename)
		return
	}

	h.printer.Metrics.FilesServed.Inc()
	logger.Debug("Sending %s/%s to %s", contestName, filename, c.GetString(gin.AuthUserKey))
	handler.RespText(c, content)
}

// scanContests writes error response and returns nil on failure.
// Empty root gives non nil empty slice
func (h *Handler) scanContests(c *gin.Context) []*filesystem.Contest {
	start := time.Now()
	contests, err := filesystem.ScanContests(h.printer.Config.ContestsRoot)
	if err != nil {
		logger.Error("Failed to scan contests: %v", err)
		handler.RespErr(c, http.StatusInternalServerError, "Failed to list contests")
		return nil
	}
	h.printer.Metrics.ProcessScan(time.Since(start), len(contests))

	if contests == nil {
		contests = []*filesystem.Contest{}
	}
	return contests
}
