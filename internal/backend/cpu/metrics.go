package cpu

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	kernelDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tensorcore_cpu_kernel_duration_seconds",
		Help:    "Wall time of CPU kernels",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
	}, []string{"kernel", "dtype"})

	unaryOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tensorcore_cpu_unary_ops_total",
		Help: "Storage-level unary ops by op and dtype",
	}, []string{"op", "dtype"})
)
