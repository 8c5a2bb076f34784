package metrics

import "time"

// RunOutcome enumerates final run states.
type RunOutcome string

const (
	OutcomeSuccess RunOutcome = "success"
	OutcomeFailed  RunOutcome = "failed"
)

// Recorder defines observability hooks for a generation run.
type Recorder interface {
	IncRowsRead()
	IncDocumentCreated(category string)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome RunOutcome)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncRowsRead()                     {}
func (NoopRecorder) IncDocumentCreated(string)        {}
func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncRunOutcome(RunOutcome)         {}
