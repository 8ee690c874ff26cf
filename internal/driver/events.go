package driver

import "time"

// Stage describes a high-level batch phase.
type Stage string

const (
	// StageParse covers listing parsing.
	StageParse Stage = "parse"
	// StageEnhance covers type enhancement.
	StageEnhance Stage = "enhance"
	// StageCache covers disk cache reads and writes.
	StageCache Stage = "cache"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusCached indicates the file was served from the disk cache.
	StatusCached Status = "cached"
	// StatusDone indicates the file finished.
	StatusDone Status = "done"
	// StatusError indicates the file failed.
	StatusError Status = "error"
)

// Event reports progress for one listing file (or for the whole batch
// when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
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

// NopSink drops every event.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}
