// Package metrics métricas Prometheus del store, la persistencia, el feed de cambios y las sesiones.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	approster "github.com/jhoicas/Roster-api/internal/application/roster"
	domroster "github.com/jhoicas/Roster-api/internal/domain/roster"
)

const namespace = "roster"

type metrics struct {
	dispatchTotal  *prometheus.CounterVec
	employees      prometheus.Gauge
	snapshotWrites *prometheus.CounterVec
	publishTotal   *prometheus.CounterVec
	sessions       prometheus.Gauge
	exportLatency  *prometheus.HistogramVec
}

var metricsSingleton = sync.OnceValue(func() *metrics {
	return &metrics{
		dispatchTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_total",
			Help:      "Total number of actions dispatched to the record store.",
		}, []string{"action"}),
		employees: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "employees",
			Help:      "Current number of employees in the record store.",
		}),
		snapshotWrites: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_writes_total",
			Help:      "Total number of snapshot writes by result.",
		}, []string{"result"}),
		publishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "change_publish_total",
			Help:      "Total number of change feed publications by result.",
		}, []string{"result"}),
		sessions: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Current number of open view sessions.",
		}),
		exportLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Latency distribution for roster exports.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		}, []string{"format"}),
	}
})

func getMetrics() *metrics {
	return metricsSingleton()
}

// ObserveStore cuenta los despachos y sigue el tamaño de la colección.
func ObserveStore(store *approster.Store) (detach func()) {
	m := getMetrics()
	m.employees.Set(float64(len(store.Employees())))
	return store.Subscribe(func(state domroster.State, action domroster.Action) {
		m.dispatchTotal.WithLabelValues(string(action.Kind)).Inc()
		m.employees.Set(float64(len(state.Employees)))
	})
}

// SnapshotWritten callback para Bridge.OnWrite.
func SnapshotWritten(err error) {
	getMetrics().snapshotWrites.WithLabelValues(result(err)).Inc()
}

// ChangePublished callback para ChangeFeed.OnPublish.
func ChangePublished(err error) {
	getMetrics().publishTotal.WithLabelValues(result(err)).Inc()
}

// SessionsActive callback para session.Options.OnCount.
func SessionsActive(n int) {
	getMetrics().sessions.Set(float64(n))
}

// ObserveExport registra la duración de una exportación.
func ObserveExport(format string, elapsed time.Duration) {
	getMetrics().exportLatency.WithLabelValues(format).Observe(elapsed.Seconds())
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
