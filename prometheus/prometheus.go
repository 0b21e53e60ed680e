// Package prometheus provides a Prometheus implementation of cluster.Metrics.
package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	cluster "github.com/MadAppGang/clusterrenderer"
)

// Render passes run on the UI thread, buckets are in seconds and start well below a frame.
var defaultBuckets = []float64{
	.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .016, .033, .1,
}

type timer struct {
	h     prometheus.Observer
	start time.Time
}

func (t *timer) ObserveDuration() {
	t.h.Observe(time.Since(t.start).Seconds())
}

type metrics struct {
	renderDuration prometheus.Histogram
	markersAdded   *prometheus.CounterVec
	markersRemoved *prometheus.CounterVec
	markersVisible prometheus.Gauge
	clicks         *prometheus.CounterVec
}

// NewMetrics creates renderer metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) cluster.Metrics {
	m := &metrics{
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cluster_render_duration_seconds",
			Help:    "Time spent reconciling markers in one render pass",
			Buckets: defaultBuckets,
		}),

		markersAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cluster_markers_added_total",
			Help: "Total number of markers added",
		}, []string{"transition"}),

		markersRemoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cluster_markers_removed_total",
			Help: "Total number of markers removed",
		}, []string{"transition"}),

		markersVisible: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cluster_markers_visible",
			Help: "Number of rendered clusters after the last render pass",
		}),

		clicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cluster_marker_clicks_total",
			Help: "Total number of marker clicks",
		}, []string{"handled"}),
	}

	reg.MustRegister(
		m.renderDuration,
		m.markersAdded,
		m.markersRemoved,
		m.markersVisible,
		m.clicks,
	)

	return m
}

func (m *metrics) RenderDuration() cluster.Timer {
	return &timer{h: m.renderDuration, start: time.Now()}
}

func (m *metrics) MarkerAdded(t cluster.Transition) {
	m.markersAdded.WithLabelValues(string(t)).Inc()
}

func (m *metrics) MarkerRemoved(t cluster.Transition) {
	m.markersRemoved.WithLabelValues(string(t)).Inc()
}

func (m *metrics) MarkersVisible(n int) {
	m.markersVisible.Set(float64(n))
}

func (m *metrics) ClickDispatched(handled bool) {
	m.clicks.WithLabelValues(strconv.FormatBool(handled)).Inc()
}
