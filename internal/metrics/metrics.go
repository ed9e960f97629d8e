package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the dedicated Prometheus registry for the gateway.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)

	// ProviderRequests counts outbound provider calls by endpoint and outcome.
	ProviderRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "provider_requests_total", Help: "Provider API calls by endpoint and outcome."},
		[]string{"endpoint", "outcome"},
	)

	// WalletCacheReads counts wallet cache lookups by entity type and result
	// (hit, miss, bypass).
	WalletCacheReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "wallet_cache_reads_total", Help: "Wallet cache lookups by entity type and result."},
		[]string{"entity_type", "result"},
	)

	// WalletCacheInvalidations counts explicit cache invalidations.
	WalletCacheInvalidations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "wallet_cache_invalidations_total", Help: "Explicit wallet cache invalidations."},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on the gateway registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(ProviderRequests)
		Registry.MustRegister(WalletCacheReads)
		Registry.MustRegister(WalletCacheInvalidations)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Handler returns the HTTP handler serving the gateway registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
