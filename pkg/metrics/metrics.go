// Package metrics 基于Prometheus的指标收集
//
// 指标分三类：
//   - HTTP指标：请求数、耗时、并发数（由middleware.Metrics记录）
//   - 目录业务指标：图书/分类各操作的次数和耗时、分类缓存命中率
//   - 基础设施指标：熔断器状态、消息发布数
//
// 使用方式：
//
//	metrics.InitMetrics()
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
// 标签只使用有限取值（路由模板而非原始URL），避免时间序列爆炸。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 操作结果标签
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultRejected = "rejected"
)

var (
	// once 防止重复注册（promauto重复注册会panic）
	once sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板，如/api/book/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// CatalogOperationsTotal 目录操作总数
	// 标签：resource（book/category）、operation（create/get/list/update/delete）、result
	CatalogOperationsTotal *prometheus.CounterVec

	// CatalogOperationDuration 目录操作耗时
	CatalogOperationDuration *prometheus.HistogramVec

	// CategoryCacheLookups 分类缓存查找次数
	// 标签：result（hit/miss/error）
	CategoryCacheLookups *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求总数
	// 标签：name、result（success/failure/rejected）
	CircuitBreakerRequests *prometheus.CounterVec

	// MessagesPublishedTotal 消息发布总数
	// 标签：exchange、routing_key、result
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 注册所有指标到默认Registry，可重复调用
func InitMetrics() {
	once.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 1ms、10ms、100ms、500ms、1s、5s、10s
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	CatalogOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_operations_total",
			Help: "图书/分类操作总数",
		},
		[]string{"resource", "operation", "result"},
	)

	CatalogOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_operation_duration_seconds",
			Help:    "图书/分类操作耗时（秒）",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"resource", "operation"},
	)

	CategoryCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "category_cache_lookups_total",
			Help: "分类缓存查找次数",
		},
		[]string{"result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "熔断器请求总数",
		},
		[]string{"name", "result"},
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key", "result"},
	)
}

// ObserveCatalogOperation 记录一次目录操作的结果和耗时
func ObserveCatalogOperation(resource, operation string, err error, seconds float64) {
	if CatalogOperationsTotal == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	CatalogOperationsTotal.WithLabelValues(resource, operation, result).Inc()
	CatalogOperationDuration.WithLabelValues(resource, operation).Observe(seconds)
}

// ObserveCacheLookup 记录分类缓存查找结果（hit/miss/error）
func ObserveCacheLookup(result string) {
	if CategoryCacheLookups == nil {
		return
	}
	CategoryCacheLookups.WithLabelValues(result).Inc()
}

// ObservePublish 记录消息发布结果
func ObservePublish(exchange, routingKey string, err error) {
	if MessagesPublishedTotal == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	MessagesPublishedTotal.WithLabelValues(exchange, routingKey, result).Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	gauge.With(labels).Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
