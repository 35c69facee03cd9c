// Package metrics はプロセス専用の Prometheus レジストリとドメイン指標を提供します。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sistemadp"

// Metrics はアプリケーションの指標をまとめます。
// flatstore.Observer・archive.Recorder・reconcile.Recorder を満たします。
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	publishTotal    *prometheus.CounterVec
	publishRows     *prometheus.HistogramVec
	transitions     *prometheus.CounterVec
	reconcileTime   *prometheus.HistogramVec
}

// New はレジストリと指標を初期化します。
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		publishTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flatstore_publish_total",
			Help:      "Full-table overwrites by table and outcome.",
		}, []string{"table", "outcome"}),
		publishRows: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flatstore_publish_rows",
			Help:      "Rows written per full-table overwrite.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"table"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_transitions_total",
			Help:      "Archive record state transitions by action.",
		}, []string{"action"}),
		reconcileTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reconciliation_duration_seconds",
			Help:      "Time spent computing an audit report.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"scope"}),
	}
	registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.publishTotal,
		m.publishRows,
		m.transitions,
		m.reconcileTime,
		collectors.NewGoCollector(),
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// Handler は /metrics 用のハンドラを返します。
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware は HTTP リクエストごとに件数と所要時間を記録します。
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ObservePublish は全件上書きの結果を記録します。
func (m *Metrics) ObservePublish(table string, rows int, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.publishTotal.WithLabelValues(table, outcome).Inc()
	if err == nil {
		m.publishRows.WithLabelValues(table).Observe(float64(rows))
	}
}

// ObserveTransition はアーカイブ・アーカイブ解除の件数を記録します。
func (m *Metrics) ObserveTransition(action string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.transitions.WithLabelValues(action).Add(float64(count))
}

// ObserveReconciliation は突き合わせの所要時間を記録します。
// 契約名は任意の文字列になり得るため、ラベルには全体か契約指定かのみを使います。
func (m *Metrics) ObserveReconciliation(contract string, d time.Duration) {
	if m == nil {
		return
	}
	scope := "all"
	if contract != "" {
		scope = "contract"
	}
	m.reconcileTime.WithLabelValues(scope).Observe(d.Seconds())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
