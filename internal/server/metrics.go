// internal/server/metrics.go
//
// Prometheus 指標。每個 Server 使用獨立的 registry，測試中可重複建立。

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bank"

// Metrics 收集帳戶操作結果、帳戶數量與 HTTP 延遲。
type Metrics struct {
	reg        *prometheus.Registry
	operations *prometheus.CounterVec
	accounts   prometheus.Gauge
	latency    *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Account operations by operation and result",
			},
			[]string{"operation", "result"},
		),
		accounts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "accounts",
			Help:      "Number of accounts currently held by the registry",
		}),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route and status",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
	}
	m.reg.MustRegister(m.operations, m.accounts, m.latency)
	return m
}

func (m *Metrics) observeOp(op string, err error) {
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	m.operations.WithLabelValues(op, result).Inc()
}

func (m *Metrics) setAccounts(n int) {
	m.accounts.Set(float64(n))
}

func (m *Metrics) observeRequest(route, method, status string, d time.Duration) {
	m.latency.WithLabelValues(route, method, status).Observe(d.Seconds())
}

// Handler 以 Prometheus text 格式輸出本 registry 的指標。
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
