package campaign

import (
	"time"

	"typefuzz/internal/solver"
)

// Status captures progress state of one test case.
type Status string

const (
	// StatusQueued indicates the case has not started yet.
	StatusQueued Status = "queued"
	// StatusRunning indicates the case is generating or solving.
	StatusRunning Status = "running"
	// StatusDone indicates the case finished with a recorded outcome.
	StatusDone Status = "done"
)

// Event reports progress for one test case of a running campaign.
type Event struct {
	Index   int
	Total   int
	Status  Status
	Outcome solver.Outcome
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}
