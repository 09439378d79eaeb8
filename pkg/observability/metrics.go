package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records visualizer activity as Prometheus collectors.
type Metrics struct {
	Steps      *prometheus.CounterVec
	Reveals    prometheus.Counter
	Recomputes prometheus.Counter
	Playback   *prometheus.CounterVec
	Cursor     prometheus.Gauge
	Timeline   prometheus.Gauge
	LCSLength  prometheus.Gauge
	Delay      prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lcsviz_steps_total",
				Help: "Total number of playback steps",
			},
			[]string{"direction", "auto"},
		),
		Reveals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lcsviz_path_reveals_total",
			Help: "Times the backtracked path was revealed",
		}),
		Recomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lcsviz_recomputes_total",
			Help: "Times the LCS table was recomputed for a new input pair",
		}),
		Playback: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lcsviz_playback_events_total",
				Help: "Play, pause, reset and delay changes",
			},
			[]string{"type"},
		),
		Cursor: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lcsviz_cursor",
			Help: "Current index into the fill-event timeline",
		}),
		Timeline: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lcsviz_timeline_steps",
			Help: "Number of fill events for the current input pair",
		}),
		LCSLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lcsviz_lcs_length",
			Help: "Length of the LCS for the current input pair",
		}),
		Delay: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lcsviz_autoplay_delay_seconds",
			Help: "Auto-play delay",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Steps, m.Reveals, m.Recomputes, m.Playback, m.Cursor, m.Timeline, m.LCSLength, m.Delay)
	}
	return m
}

// Observe seeds the gauges from a frame, e.g. right after construction
// when no recompute or playback event has fired yet.
func (m *Metrics) Observe(f domain.Frame) {
	m.Timeline.Set(float64(f.Progress.Total))
	m.LCSLength.Set(float64(f.Length))
	m.Cursor.Set(float64(f.Position.Cursor))
	m.Delay.Set(f.Delay.Seconds())
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRecompute: func(_ context.Context, e *domain.RecomputeEvent) {
			m.Recomputes.Inc()
			m.Timeline.Set(float64(e.Steps))
			m.LCSLength.Set(float64(e.Length))
			m.Cursor.Set(0)
		},
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			m.Steps.WithLabelValues(string(e.Direction), strconv.FormatBool(e.Auto)).Inc()
			m.Cursor.Set(float64(e.Position.Cursor))
		},
		OnReveal: func(_ context.Context, _ *domain.StepEvent) {
			m.Reveals.Inc()
		},
		OnPlayback: func(_ context.Context, e *domain.PlaybackEvent) {
			m.Playback.WithLabelValues(string(e.Type)).Inc()
			m.Cursor.Set(float64(e.Position.Cursor))
			m.Delay.Set(e.Delay.Seconds())
		},
	}
}
