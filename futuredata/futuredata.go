// Package futuredata implements the per-stream FutureData tracker
// (spec.md component C4): a stack of "next expected end offset"
// checkpoints used to cross-validate length fields and to skip unknown
// trailing regions.
package futuredata

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/parseerr"
)

// Checkpoint is one pushed future-offset expectation.
type Checkpoint struct {
	EndOffset int
	Label     string
}

// Diagnostic records an unresolved tail skipped via
// Tracker.ReadUntilNextFutureData, auditable in logs per spec.md §4.4.
type Diagnostic struct {
	Offset int
	Label  string
}

// Tracker is the per-stream FutureData stack. A Parser session owns
// exactly one, reset per stream (spec.md §5).
type Tracker struct {
	stack       []Checkpoint
	diagnostics []Diagnostic
}

// New returns an empty tracker, ready for one stream's worth of records.
func New() *Tracker {
	return &Tracker{}
}

// Push records a declared future offset at record entry.
func (t *Tracker) Push(endOffset int, label string) {
	t.stack = append(t.stack, Checkpoint{EndOffset: endOffset, Label: label})
}

// Peek returns the top-of-stack checkpoint without popping it.
func (t *Tracker) Peek() (Checkpoint, bool) {
	if len(t.stack) == 0 {
		return Checkpoint{}, false
	}
	return t.stack[len(t.stack)-1], true
}

// Depth reports how many checkpoints are currently open.
func (t *Tracker) Depth() int {
	return len(t.stack)
}

// Close pops the top checkpoint and asserts that the stream's current
// offset equals its recorded end offset (spec.md §3 invariant: "For every
// open FutureData checkpoint, the stream offset at its close equals its
// recorded end offset").
func (t *Tracker) Close(d *datastream.DataStream) error {
	if len(t.stack) == 0 {
		return nil
	}
	top := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	actual := d.CurrentOffset()
	if actual != top.EndOffset {
		return &parseerr.CheckpointMisaligned{ExpectedEnd: top.EndOffset, Actual: actual, Label: top.Label}
	}
	return nil
}

// Checkpoint captures the current offset for later comparison against the
// next expected boundary — the mechanism readers use (e.g.
// StructSthInPages0) to choose between alternative optional trailers when
// the protocol is ambiguous.
func (t *Tracker) Checkpoint(d *datastream.DataStream) int {
	return d.CurrentOffset()
}

// RemainingToTop returns the distance from the stream's current offset to
// the top-of-stack checkpoint's declared end, or ok=false if no
// checkpoint is open.
func (t *Tracker) RemainingToTop(d *datastream.DataStream) (remaining int, ok bool) {
	top, has := t.Peek()
	if !has {
		return 0, false
	}
	return top.EndOffset - d.CurrentOffset(), true
}

// ReadUntilNextFutureData advances the stream to the top-of-stack
// checkpoint boundary and records a Diagnostic carrying label, so
// unresolved tails remain auditable (spec.md §4.4).
func (t *Tracker) ReadUntilNextFutureData(d *datastream.DataStream, label string) error {
	top, ok := t.Peek()
	if !ok {
		return nil
	}
	t.diagnostics = append(t.diagnostics, Diagnostic{Offset: d.CurrentOffset(), Label: label})
	return d.Seek(top.EndOffset)
}

// Diagnostics returns every unresolved-tail note recorded so far.
func (t *Tracker) Diagnostics() []Diagnostic {
	return t.diagnostics
}
