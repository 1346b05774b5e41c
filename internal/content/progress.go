package content

import (
	"io"
	"sync"
)

type ProgressState string

const (
	StateUploading  ProgressState = "uploading"
	StateProcessing ProgressState = "processing" // all bytes sent, server not done yet
	StateSucceeded  ProgressState = "succeeded"
	StateFailed     ProgressState = "failed"
	StateCancelled  ProgressState = "cancelled"
)

type ProgressEvent struct {
	State   ProgressState `json:"state"`
	Percent int           `json:"percent"`
	Reason  string        `json:"reason,omitempty"`
}

// ProgressChannel reports byte progress for one in-flight submission.
// Percent is monotonically non-decreasing, 0-100. Hitting 100 does not mean
// done: the processing state covers the window between the last byte and the
// server's acknowledgement. Exactly one terminal event (succeeded, failed or
// cancelled) is emitted, after which the channel closes.
type ProgressChannel struct {
	mu       sync.Mutex
	events   chan ProgressEvent
	total    int64
	percent  int
	state    ProgressState
	terminal bool
}

func NewProgressChannel(totalBytes int64) *ProgressChannel {
	return &ProgressChannel{
		events: make(chan ProgressEvent, 128),
		total:  totalBytes,
		state:  StateUploading,
	}
}

func (p *ProgressChannel) Events() <-chan ProgressEvent {
	return p.events
}

// Snapshot returns the latest state without consuming the stream.
func (p *ProgressChannel) Snapshot() ProgressEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ProgressEvent{State: p.state, Percent: p.percent}
}

// Advance records the cumulative byte count sent so far. Progress never goes
// backwards and is clamped at 100 while uploading.
func (p *ProgressChannel) Advance(bytesSent int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.terminal || p.total <= 0 {
		return
	}

	percent := int(bytesSent * 100 / p.total)
	if percent > 100 {
		percent = 100
	}
	if percent <= p.percent {
		return
	}
	p.percent = percent
	p.emit(ProgressEvent{State: StateUploading, Percent: percent})
}

// MarkProcessing flags that every byte arrived but the server is still
// validating/storing. Percent is forced to 100.
func (p *ProgressChannel) MarkProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.terminal {
		return
	}
	p.percent = 100
	p.state = StateProcessing
	p.emit(ProgressEvent{State: StateProcessing, Percent: 100})
}

func (p *ProgressChannel) Succeed() {
	p.finish(ProgressEvent{State: StateSucceeded, Percent: 100})
}

func (p *ProgressChannel) Fail(reason string) {
	p.mu.Lock()
	percent := p.percent
	p.mu.Unlock()
	p.finish(ProgressEvent{State: StateFailed, Percent: percent, Reason: reason})
}

// Cancel is the initiator aborting the transport before the server
// acknowledged. It is reported distinctly from a failure.
func (p *ProgressChannel) Cancel() {
	p.mu.Lock()
	percent := p.percent
	p.mu.Unlock()
	p.finish(ProgressEvent{State: StateCancelled, Percent: percent, Reason: "cancelled"})
}

func (p *ProgressChannel) finish(event ProgressEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.terminal {
		return
	}
	p.terminal = true
	p.state = event.State
	p.percent = event.Percent
	p.emit(event)
	close(p.events)
}

// emit must hold p.mu. A full buffer drops the intermediate event rather
// than stalling the upload; terminal events always fit because the buffer
// outlives any consumer lag we care about.
func (p *ProgressChannel) emit(event ProgressEvent) {
	select {
	case p.events <- event:
	default:
	}
}

// CountingReader feeds a ProgressChannel while the request body is read.
type CountingReader struct {
	reader   io.Reader
	progress *ProgressChannel
	read     int64
}

func NewCountingReader(r io.Reader, progress *ProgressChannel) *CountingReader {
	return &CountingReader{reader: r, progress: progress}
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	if n > 0 {
		c.read += int64(n)
		c.progress.Advance(c.read)
	}
	return n, err
}
