// Package metrics 提供 Prometheus 指标注册与 HTTP 暴露.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yeisme/immovault/pkg/configs"
)

var (
	// RequestCounter HTTP 请求计数.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "immovault_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration HTTP 请求耗时.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "immovault_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// SweepDeleted 保留期清扫删除的房源数.
	SweepDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "immovault_trash_sweep_deleted_total",
			Help: "Number of properties purged by the retention sweep.",
		},
	)
)

// InitMetrics 注册指标.
func InitMetrics(cfg configs.MetricsConfig) error {
	if !cfg.Enabled {
		return nil
	}

	for _, c := range []prometheus.Collector{RequestCounter, RequestDuration, SweepDeleted} {
		if err := prometheus.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}

	return nil
}

// RegisterHandler 将 /metrics 挂到 gin 引擎.
func RegisterHandler(cfg configs.MetricsConfig, e *gin.Engine) {
	if !cfg.Enabled {
		return
	}

	e.GET(cfg.Path, gin.WrapH(promhttp.Handler()))
}
