package common

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"contests_printer/common/config"
	"contests_printer/common/metrics"
	"contests_printer/lib/logger"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Printer holds everything request handlers need. Config must not be changed after InitPrinter
type Printer struct {
	Config  *config.Config
	Router  *gin.Engine
	Metrics *metrics.Collector

	StopCtx  context.Context
	stopFunc context.CancelFunc
}

func InitPrinter(cfg *config.Config) *Printer {
	p := &Printer{
		Config:  cfg,
		Metrics: metrics.NewCollector(),
	}
	p.StopCtx, p.stopFunc = context.WithCancel(context.Background())
	p.InitServer()
	return p
}

// Run serves requests until SIGINT, SIGTERM or Stop
func (p *Printer) Run() error {
	ctx, cancel := signal.NotifyContext(p.StopCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	addr := p.Config.Addr()
	logger.Info("Starting server at %s, contests root: %s, path prefix: %q", addr, p.Config.ContestsRoot, p.Config.IndexPath())
	server := &http.Server{
		Addr:              addr,
		Handler:           p.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()
		shutdownErr <- server.Shutdown(shutdownCtx)
	}()

	err := server.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		cancel()
		return logger.Error("Server stopped with error: %v", err)
	}
	return <-shutdownErr
}

func (p *Printer) Stop() {
	p.stopFunc()
}
