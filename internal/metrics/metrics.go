// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics records per-run pipeline metrics behind a small Recorder
// interface. The default recorder discards everything; prompush sends the
// numbers of a finished run to a Prometheus Pushgateway.
package metrics

import "time"

// Stage names used as metric labels.
const (
	StageTemplate = "template"
	StageLoad     = "load"
	StageRender   = "render"
	StageWrite    = "write"
)

// Recorder collects metrics for a single run.
type Recorder interface {
	// ObserveStage records the outcome and duration of one pipeline stage.
	ObserveStage(stage string, err error, d time.Duration)
	// SetVolunteers records the roster size.
	SetVolunteers(n int)
	// Flush delivers the collected metrics, if the backend needs it.
	Flush() error
}

// Nop is a Recorder that discards everything.
type Nop struct{}

func (Nop) ObserveStage(string, error, time.Duration) {}
func (Nop) SetVolunteers(int)                         {}
func (Nop) Flush() error                              { return nil }

// Status maps a stage error to its status label.
func Status(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

// Time runs fn as stage and records it on r.
func Time(r Recorder, stage string, fn func() error) error {
	start := time.Now()
	err := fn()
	r.ObserveStage(stage, err, time.Since(start))
	return err
}
