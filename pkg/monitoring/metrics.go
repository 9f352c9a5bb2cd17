package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Domain-specific metric collectors.
var (
	minecraftInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "minecraft_operator_minecraft_info",
			Help: "Info-style metric for Minecraft server discovery and phase tracking. Always 1.",
		},
		[]string{"name", "namespace", "phase"},
	)

	reconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "minecraft_operator_reconcile_total",
			Help: "Total number of Minecraft reconciliation passes by result.",
		},
		[]string{"result"},
	)

	reconcileDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "minecraft_operator_reconcile_duration_seconds",
			Help:    "Latency of a full Minecraft reconciliation pass in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"result"},
	)

	childApplyTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "minecraft_operator_child_apply_total",
			Help: "Total number of child resource synchronizations by kind and outcome.",
		},
		[]string{"kind", "operation"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		minecraftInfo,
		reconcileTotal,
		reconcileDuration,
		childApplyTotal,
	)
}

// Collectors returns all registered metric collectors.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		minecraftInfo,
		reconcileTotal,
		reconcileDuration,
		childApplyTotal,
	}
}
