package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	routeLabel = "route"
	codeLabel  = "code"
)

type Collector struct {
	Registry *prometheus.Registry

	Requests      *prometheus.CounterVec
	ScanDuration  prometheus.Histogram
	ContestsCount prometheus.Gauge
	FilesServed   prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{
		Registry: prometheus.NewRegistry(),
	}

	c.Requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "printer",
			Subsystem: "http",
			Name:      "requests_count",
			Help:      "Number of handled requests by route and status code",
		},
		[]string{routeLabel, codeLabel},
	)
	c.Registry.MustRegister(c.Requests)

	c.ScanDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "printer",
		Subsystem: "contests",
		Name:      "scan_duration_seconds",
		Help:      "Time spent listing contests directory",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
	})
	c.Registry.MustRegister(c.ScanDuration)

	c.ContestsCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "printer",
		Subsystem: "contests",
		Name:      "count",
		Help:      "Number of contests found by the last scan",
	})
	c.Registry.MustRegister(c.ContestsCount)

	c.FilesServed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "printer",
		Subsystem: "contests",
		Name:      "files_served_count",
		Help:      "Number of problem files sent to clients",
	})
	c.Registry.MustRegister(c.FilesServed)

	return c
}

func (c *Collector) ProcessRequest(route string, code int) {
	if route == "" {
		route = "unmatched"
	}
	c.Requests.With(prometheus.Labels{
		routeLabel: route,
		codeLabel:  strconv.Itoa(code),
	}).Inc()
}

func (c *Collector) ProcessScan(duration time.Duration, contests int) {
	c.ScanDuration.Observe(duration.Seconds())
	c.ContestsCount.Set(float64(contests))
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{})
}
