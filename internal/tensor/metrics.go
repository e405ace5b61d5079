package tensor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// binaryDispatch counts elementwise binary operations by the broadcast case taken.
	binaryDispatch = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tensorcore_binary_dispatch_total",
		Help: "Elementwise binary operations by broadcast path",
	}, []string{"path"})

	dispatchSame      = binaryDispatch.WithLabelValues("same")
	dispatchRhs       = binaryDispatch.WithLabelValues("rhs")
	dispatchLhs       = binaryDispatch.WithLabelValues("lhs")
	dispatchBoth      = binaryDispatch.WithLabelValues("both")
	dispatchIncompat  = binaryDispatch.WithLabelValues("incompatible")
	materializedElems = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tensorcore_binary_materialized_elements_total",
		Help: "Elements written into freshly allocated binary-op results",
	})
)
