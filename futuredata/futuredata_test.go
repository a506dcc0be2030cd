package futuredata

import (
	"errors"
	"testing"

	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/parseerr"
)

func TestCloseAtExactOffsetSucceeds(t *testing.T) {
	d := datastream.New(make([]byte, 8))
	tr := New()
	tr.Push(4, "body")
	if _, err := d.ReadRaw(4); err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	if err := tr.Close(d); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if tr.Depth() != 0 {
		t.Fatalf("expected empty stack after Close")
	}
}

func TestCloseMisalignedFails(t *testing.T) {
	d := datastream.New(make([]byte, 8))
	tr := New()
	tr.Push(4, "body")
	if _, err := d.ReadRaw(3); err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	err := tr.Close(d)
	var cm *parseerr.CheckpointMisaligned
	if !errors.As(err, &cm) {
		t.Fatalf("expected CheckpointMisaligned, got %v", err)
	}
	if cm.ExpectedEnd != 4 || cm.Actual != 3 {
		t.Fatalf("unexpected detail: %+v", cm)
	}
}

func TestReadUntilNextFutureDataSkipsToBoundary(t *testing.T) {
	d := datastream.New(make([]byte, 10))
	tr := New()
	tr.Push(7, "tail")
	if err := tr.ReadUntilNextFutureData(d, "unresolved"); err != nil {
		t.Fatalf("ReadUntilNextFutureData: %v", err)
	}
	if d.CurrentOffset() != 7 {
		t.Fatalf("offset = %d, want 7", d.CurrentOffset())
	}
	diags := tr.Diagnostics()
	if len(diags) != 1 || diags[0].Label != "unresolved" {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
}

func TestRemainingToTop(t *testing.T) {
	d := datastream.New(make([]byte, 16))
	tr := New()
	tr.Push(12, "x")
	d.ReadRaw(4)
	rem, ok := tr.RemainingToTop(d)
	if !ok || rem != 8 {
		t.Fatalf("RemainingToTop = (%d, %v), want (8, true)", rem, ok)
	}
}
