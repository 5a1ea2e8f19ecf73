package driver

import "time"

// ProgressStatus reports where a file is in the pipeline.
type ProgressStatus int

const (
	// ProgressQueued is sent once per file before lexing starts.
	ProgressQueued ProgressStatus = iota
	ProgressWorking
	ProgressDone
)

// ProgressEvent describes a per-file state change during TokenizeFiles.
type ProgressEvent struct {
	Path    string
	Status  ProgressStatus
	Cached  bool
	Errors  int
	Elapsed time.Duration
}

// ProgressObserver receives progress events. It is called from worker
// goroutines and must be safe for concurrent use.
type ProgressObserver func(ProgressEvent)

func (o ProgressObserver) emit(ev ProgressEvent) {
	if o != nil {
		o(ev)
	}
}
