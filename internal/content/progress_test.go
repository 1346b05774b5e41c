package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(p *ProgressChannel) []ProgressEvent {
	var events []ProgressEvent
	for event := range p.Events() {
		events = append(events, event)
	}
	return events
}

func TestProgressPercentIsMonotonic(t *testing.T) {
	progress := NewProgressChannel(100)

	progress.Advance(30)
	progress.Advance(20) // stale count, must not rewind
	progress.Advance(60)
	progress.Advance(60) // repeat, no new event
	progress.Succeed()

	last := -1
	for _, event := range drain(progress) {
		require.GreaterOrEqual(t, event.Percent, last)
		last = event.Percent
	}
	require.Equal(t, 100, last)
}

func TestProgressClampsAtHundred(t *testing.T) {
	progress := NewProgressChannel(10)

	// Chunked transfer can overshoot the advertised length.
	progress.Advance(25)
	require.Equal(t, 100, progress.Snapshot().Percent)
	require.Equal(t, StateUploading, progress.Snapshot().State)
}

func TestProgressHundredPercentIsNotDone(t *testing.T) {
	progress := NewProgressChannel(10)

	progress.Advance(10)
	progress.MarkProcessing()

	// All bytes sent, server still working: processing, not succeeded.
	snap := progress.Snapshot()
	require.Equal(t, StateProcessing, snap.State)
	require.Equal(t, 100, snap.Percent)

	progress.Succeed()
	require.Equal(t, StateSucceeded, progress.Snapshot().State)
}

func TestProgressTerminalStates(t *testing.T) {
	t.Run("failed carries the reason", func(t *testing.T) {
		progress := NewProgressChannel(10)
		progress.Advance(5)
		progress.Fail("disk full")

		events := drain(progress)
		last := events[len(events)-1]
		require.Equal(t, StateFailed, last.State)
		require.Equal(t, "disk full", last.Reason)
		require.Equal(t, 50, last.Percent)
	})

	t.Run("cancelled is not a failure", func(t *testing.T) {
		progress := NewProgressChannel(10)
		progress.Advance(5)
		progress.Cancel()

		events := drain(progress)
		last := events[len(events)-1]
		require.Equal(t, StateCancelled, last.State)
		require.Equal(t, "cancelled", last.Reason)
	})

	t.Run("only one terminal event", func(t *testing.T) {
		progress := NewProgressChannel(10)
		progress.Succeed()
		progress.Fail("too late") // ignored
		progress.Cancel()         // ignored

		require.Equal(t, StateSucceeded, progress.Snapshot().State)

		terminal := 0
		for _, event := range drain(progress) {
			switch event.State {
			case StateSucceeded, StateFailed, StateCancelled:
				terminal++
			}
		}
		require.Equal(t, 1, terminal)
	})
}

func TestProgressAfterTerminalAdvanceIsIgnored(t *testing.T) {
	progress := NewProgressChannel(10)
	progress.Advance(3)
	progress.Cancel()
	progress.Advance(10)

	require.Equal(t, StateCancelled, progress.Snapshot().State)
	require.Equal(t, 30, progress.Snapshot().Percent)
}

func TestCountingReaderFeedsProgress(t *testing.T) {
	progress := NewProgressChannel(10)
	reader := NewCountingReader(strings.NewReader("0123456789"), progress)

	buf := make([]byte, 4)

	n, err := reader.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, 40, progress.Snapshot().Percent)

	n, err = reader.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, 80, progress.Snapshot().Percent)

	reader.Read(buf)
	require.Equal(t, 100, progress.Snapshot().Percent)
}
