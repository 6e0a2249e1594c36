// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompush implements metrics.Recorder on top of a Prometheus
// Pushgateway. Metrics live in a private registry and are pushed once, when
// the run finishes.
package prompush

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/pdiddy/stempelkarten/internal/metrics"
)

// DefaultJob is the Pushgateway job grouping key.
const DefaultJob = "stempelkarten"

// Backend is a Pushgateway metrics.Recorder.
type Backend struct {
	gatewayURL string
	jobName    string
	reg        *prometheus.Registry

	stageCounter  *prometheus.CounterVec // stempelkarten_stage_total
	stageDuration *prometheus.GaugeVec   // stempelkarten_stage_duration_seconds
	volunteers    prometheus.Gauge       // stempelkarten_volunteers
	lastSuccess   prometheus.Gauge       // stempelkarten_last_success_timestamp_seconds
}

var _ metrics.Recorder = (*Backend)(nil)

// NewBackend returns a Backend pushing to gatewayURL under jobName.
func NewBackend(jobName, gatewayURL string) (*Backend, error) {
	if gatewayURL == "" {
		return nil, fmt.Errorf("prompush: gateway URL is required")
	}
	if jobName == "" {
		jobName = DefaultJob
	}

	b := &Backend{
		gatewayURL: gatewayURL,
		jobName:    jobName,
		reg:        prometheus.NewRegistry(),
		stageCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stempelkarten_stage_total",
				Help: "Pipeline stage executions, partitioned by stage and status.",
			},
			[]string{"stage", "status"},
		),
		stageDuration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stempelkarten_stage_duration_seconds",
				Help: "Duration of the last execution of each pipeline stage.",
			},
			[]string{"stage", "status"},
		),
		volunteers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stempelkarten_volunteers",
			Help: "Number of volunteers in the last loaded roster.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stempelkarten_last_success_timestamp_seconds",
			Help: "Unix time of the last run in which every stage succeeded.",
		}),
	}

	for name, c := range map[string]prometheus.Collector{
		"stage counter":  b.stageCounter,
		"stage duration": b.stageDuration,
		"volunteers":     b.volunteers,
		"last success":   b.lastSuccess,
	} {
		if err := b.reg.Register(c); err != nil {
			return nil, fmt.Errorf("prompush: register %s: %w", name, err)
		}
	}
	return b, nil
}

// ObserveStage implements metrics.Recorder.
func (b *Backend) ObserveStage(stage string, err error, d time.Duration) {
	status := metrics.Status(err)
	b.stageCounter.WithLabelValues(stage, status).Inc()
	b.stageDuration.WithLabelValues(stage, status).Set(d.Seconds())
	if err == nil && stage == metrics.StageWrite {
		b.lastSuccess.SetToCurrentTime()
	}
}

// SetVolunteers implements metrics.Recorder.
func (b *Backend) SetVolunteers(n int) {
	b.volunteers.Set(float64(n))
}

// Flush pushes the registry to the Pushgateway, replacing the job's group.
func (b *Backend) Flush() error {
	if err := push.New(b.gatewayURL, b.jobName).Gatherer(b.reg).Push(); err != nil {
		return fmt.Errorf("prompush: push to %s: %w", b.gatewayURL, err)
	}
	return nil
}
