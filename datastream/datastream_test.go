package datastream

import (
	"errors"
	"testing"

	"github.com/orcadtools/schemparse/parseerr"
)

func TestReadIntegers(t *testing.T) {
	d := New([]byte{0x01, 0x02, 0x03, 0x04, 0xff, 0xff})
	u32, err := d.ReadU32()
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if u32 != 0x04030201 {
		t.Fatalf("ReadU32 = 0x%x, want 0x04030201", u32)
	}
	i16, err := d.ReadI16()
	if err != nil {
		t.Fatalf("ReadI16: %v", err)
	}
	if i16 != -1 {
		t.Fatalf("ReadI16 = %d, want -1", i16)
	}
	if !d.IsEOF() {
		t.Fatalf("expected EOF")
	}
}

func TestReadStringZeroTerminated(t *testing.T) {
	d := New([]byte{'h', 'i', 0x00, 'x'})
	s, err := d.ReadStringZeroTerminated()
	if err != nil {
		t.Fatalf("ReadStringZeroTerminated: %v", err)
	}
	if s != "hi" {
		t.Fatalf("got %q, want %q", s, "hi")
	}
	if d.CurrentOffset() != 3 {
		t.Fatalf("offset = %d, want 3", d.CurrentOffset())
	}
}

func TestAssumeBytesMismatch(t *testing.T) {
	d := New([]byte{0xff, 0xe4, 0x5c, 0x00})
	err := d.AssumeBytes([]byte{0xff, 0xe4, 0x5c, 0x39})
	var mm *parseerr.MagicMismatch
	if !errors.As(err, &mm) {
		t.Fatalf("expected MagicMismatch, got %v", err)
	}
}

func TestTruncatedStream(t *testing.T) {
	d := New([]byte{0x01})
	_, err := d.ReadU32()
	var ts *parseerr.TruncatedStream
	if !errors.As(err, &ts) {
		t.Fatalf("expected TruncatedStream, got %v", err)
	}
}

func TestPutback(t *testing.T) {
	d := New([]byte{0x10, 0x20})
	b, _ := d.ReadU8()
	if b != 0x10 {
		t.Fatalf("got 0x%x", b)
	}
	d.Putback(b)
	b2, _ := d.ReadU8()
	if b2 != 0x10 {
		t.Fatalf("putback not replayed, got 0x%x", b2)
	}
	b3, _ := d.ReadU8()
	if b3 != 0x20 {
		t.Fatalf("got 0x%x, want 0x20", b3)
	}
}

func TestPrintUnknownRecordsNote(t *testing.T) {
	d := New([]byte{0, 0, 0, 0})
	if err := d.PrintUnknown(4, "mystery tail"); err != nil {
		t.Fatalf("PrintUnknown: %v", err)
	}
	notes := d.Unknowns()
	if len(notes) != 1 || notes[0].Label != "mystery tail" || notes[0].Length != 4 {
		t.Fatalf("unexpected notes: %+v", notes)
	}
}
