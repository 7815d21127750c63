// Package buildpipeline defines the progress-reporting vocabulary shared
// between the directory-batch build driver and the terminal UI: a fixed
// set of Stages, a Status each file moves through within a stage, and the
// Event a driver emits as files advance.
package buildpipeline

import "time"

// Stage names one phase of compiling a single file.
type Stage string

const (
	StageLex       Stage = "lex"
	StageParse     Stage = "parse"
	StageLower     Stage = "lower"
	StageTypecheck Stage = "typecheck"
	StageIR        Stage = "ir"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a file (or for the overall pipeline when File
// is empty). Timings is set on the Done or Error event that ends a compiled
// file, recording how long each stage reached before the file finished or
// aborted; it is nil on a cache-hit Done event and on the Error event for a
// file that could not be read.
type Event struct {
	File     string
	Stage    Stage
	Status   Status
	Err      error
	Elapsed  time.Duration
	Timings  *Timings
	CacheHit bool
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds stage durations for a single file's compile.
type Timings struct {
	stages map[Stage]time.Duration
}

func (t *Timings) ensure() {
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
}

// Set stores a duration for the given stage.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	t.ensure()
	t.stages[stage] = dur
}

// Duration returns the recorded duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	if t.stages == nil {
		return 0
	}
	return t.stages[stage]
}

// Sum returns the sum of durations across the provided stages.
func (t Timings) Sum(stages ...Stage) time.Duration {
	if t.stages == nil {
		return 0
	}
	var total time.Duration
	for _, stage := range stages {
		total += t.stages[stage]
	}
	return total
}
