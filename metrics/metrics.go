// Package metrics records probe and discovery outcomes in a Prometheus registry
// that can be written to a node_exporter textfile.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "grazer"

// Registry holds every grazer collector. The default registry is not used so
// textfile output only contains grazer series.
var Registry = prometheus.NewRegistry()

var (
	platformUp = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "platform_up",
		Help:      "Whether the last probe of the platform succeeded.",
	}, []string{"platform"})

	probeLatency = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "probe_latency_seconds",
		Help:      "Latency of the last probe, measured up to success or failure.",
	}, []string{"platform"})

	authConfigured = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "platform_auth_configured",
		Help:      "Whether a credential is configured for the platform.",
	}, []string{"platform"})

	discoveredItems = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "discovered_items",
		Help:      "Number of items returned by the last discovery.",
	}, []string{"platform"})

	discoveryErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "discovery_errors_total",
		Help:      "Discovery failures by platform and error code.",
	}, []string{"platform", "code"})

	synthesized = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_synthesized_total",
		Help:      "Generated images by generation method.",
	}, []string{"method"})
)

func init() {
	Registry.MustRegister(
		platformUp,
		probeLatency,
		authConfigured,
		discoveredItems,
		discoveryErrors,
		synthesized,
	)
}

// ObserveProbe records the outcome of one probe
func ObserveProbe(platform string, reachable bool, latencyMS float64, auth bool) {
	platformUp.WithLabelValues(platform).Set(boolValue(reachable))
	probeLatency.WithLabelValues(platform).Set(latencyMS / 1000)
	authConfigured.WithLabelValues(platform).Set(boolValue(auth))
}

// ObserveDiscovery records the item count of a successful discovery
func ObserveDiscovery(platform string, items int) {
	discoveredItems.WithLabelValues(platform).Set(float64(items))
}

// ObserveDiscoveryError counts a failed discovery
func ObserveDiscoveryError(platform, code string) {
	discoveredItems.WithLabelValues(platform).Set(0)
	discoveryErrors.WithLabelValues(platform, code).Inc()
}

// ObserveSynthesis counts a generated image
func ObserveSynthesis(method string) {
	synthesized.WithLabelValues(method).Inc()
}

// WriteTextfile writes every series in the textfile collector format
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
