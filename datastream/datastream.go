// Package datastream implements a positioned, forward-only byte reader
// over one extracted container stream. It is the bottom of the parser:
// every other component reads through a *DataStream.
package datastream

import (
	"bytes"
	"encoding/binary"

	"github.com/orcadtools/schemparse/parseerr"
)

// DataStream is a positioned reader over an in-memory stream buffer. All
// integers are little-endian. There is no seeking beyond the buffer;
// attempts fail with parseerr.TruncatedStream.
type DataStream struct {
	buf      []byte
	pos      int
	putback  []byte
	unknowns []UnknownNote
}

// UnknownNote records an opaque region skipped by PrintUnknown, preserving
// the caller-supplied label for later diagnosis (see spec.md §9 "Opaque
// byte regions").
type UnknownNote struct {
	Offset int
	Length int
	Label  string
}

// New wraps buf for positioned reading from offset zero.
func New(buf []byte) *DataStream {
	return &DataStream{buf: buf}
}

// CurrentOffset returns the stream offset the next read will start at.
func (d *DataStream) CurrentOffset() int {
	return d.pos - len(d.putback)
}

// IsEOF reports whether every byte of the stream has been consumed.
func (d *DataStream) IsEOF() bool {
	return len(d.putback) == 0 && d.pos >= len(d.buf)
}

// Len returns the total length of the underlying buffer.
func (d *DataStream) Len() int {
	return len(d.buf)
}

// Unknowns returns the opaque regions skipped so far via PrintUnknown.
func (d *DataStream) Unknowns() []UnknownNote {
	return d.unknowns
}

func (d *DataStream) take(n int) ([]byte, error) {
	if len(d.putback) > 0 {
		if n <= len(d.putback) {
			out := d.putback[:n]
			d.putback = d.putback[n:]
			return out, nil
		}
		// Putback bytes are always consumed whole before falling through
		// to the underlying buffer; readers never straddle the boundary
		// in practice, but handle it for correctness.
		out := make([]byte, 0, n)
		out = append(out, d.putback...)
		d.putback = nil
		rest, err := d.take(n - len(out))
		if err != nil {
			return nil, err
		}
		return append(out, rest...), nil
	}
	if d.pos+n > len(d.buf) {
		return nil, &parseerr.TruncatedStream{Offset: d.pos, Wanted: n, Remained: len(d.buf) - d.pos}
	}
	out := d.buf[d.pos : d.pos+n]
	d.pos += n
	return out, nil
}

// ReadU8 reads one unsigned byte.
func (d *DataStream) ReadU8() (uint8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a little-endian uint16.
func (d *DataStream) ReadU16() (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads a little-endian uint32.
func (d *DataStream) ReadU32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI16 reads a little-endian int16.
func (d *DataStream) ReadI16() (int16, error) {
	v, err := d.ReadU16()
	return int16(v), err
}

// ReadI32 reads a little-endian int32.
func (d *DataStream) ReadI32() (int32, error) {
	v, err := d.ReadU32()
	return int32(v), err
}

// ReadRaw returns the next n bytes verbatim, without interpretation.
func (d *DataStream) ReadRaw(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	b, err := d.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadStringZeroTerminated reads bytes up to and including a NUL,
// returning the bytes before the terminator (the terminator itself is
// consumed but not returned).
func (d *DataStream) ReadStringZeroTerminated() (string, error) {
	var out []byte
	for {
		b, err := d.ReadU8()
		if err != nil {
			return "", err
		}
		if b == 0 {
			return string(out), nil
		}
		out = append(out, b)
	}
}

// AssumeBytes reads len(expected) bytes and fails with
// parseerr.MagicMismatch if they do not match exactly.
func (d *DataStream) AssumeBytes(expected []byte) error {
	off := d.CurrentOffset()
	got, err := d.ReadRaw(len(expected))
	if err != nil {
		return err
	}
	if !bytes.Equal(got, expected) {
		return &parseerr.MagicMismatch{Offset: off, Expected: expected, Got: got}
	}
	return nil
}

// PrintUnknown advances n bytes without interpreting them, recording a
// debug note under label so later reverse-engineering passes can find it.
func (d *DataStream) PrintUnknown(n int, label string) error {
	off := d.CurrentOffset()
	if _, err := d.ReadRaw(n); err != nil {
		return err
	}
	d.unknowns = append(d.unknowns, UnknownNote{Offset: off, Length: n, Label: label})
	return nil
}

// Putback pushes a single byte back onto the stream so the next read
// returns it again. Used by prefix decoding to peek one byte ahead.
func (d *DataStream) Putback(b byte) {
	d.putback = append(d.putback, b)
}

// Seek moves the read position to an absolute offset. It is only used to
// jump to a FutureData checkpoint boundary (readUntilNextFutureData) and
// never to move backwards across already-interpreted data during normal
// record reads.
func (d *DataStream) Seek(offset int) error {
	if offset < 0 || offset > len(d.buf) {
		return &parseerr.TruncatedStream{Offset: offset, Wanted: 0, Remained: len(d.buf) - offset}
	}
	d.putback = nil
	d.pos = offset
	return nil
}
