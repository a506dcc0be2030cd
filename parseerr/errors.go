// Package parseerr defines the typed error kinds raised while parsing a
// stream. Every error here is fatal to the stream it occurred in, never to
// the whole library — see assembler.Assemble.
package parseerr

import "fmt"

// TruncatedStream is raised when a read asks for bytes past the end of
// the current stream buffer.
type TruncatedStream struct {
	Offset   int
	Wanted   int
	Remained int
}

func (e *TruncatedStream) Error() string {
	return fmt.Sprintf("truncated stream at offset %d: wanted %d bytes, %d remained", e.Offset, e.Wanted, e.Remained)
}

// MagicMismatch is raised when a preamble or assume_bytes check fails.
type MagicMismatch struct {
	Offset   int
	Expected []byte
	Got      []byte
}

func (e *MagicMismatch) Error() string {
	return fmt.Sprintf("magic mismatch at offset %d: expected % x, got % x", e.Offset, e.Expected, e.Got)
}

// TagMismatch is raised when a prefix's repeated tag disagrees with its
// first occurrence.
type TagMismatch struct {
	Offset int
	First  byte
	Repeat byte
}

func (e *TagMismatch) Error() string {
	return fmt.Sprintf("tag mismatch at offset %d: first 0x%02x, repeat 0x%02x", e.Offset, e.First, e.Repeat)
}

// UnknownStructure is raised when the central dispatcher has no reader
// registered for a tag.
type UnknownStructure struct {
	Tag    byte
	Offset int
}

func (e *UnknownStructure) Error() string {
	return fmt.Sprintf("unknown structure tag 0x%02x at offset %d", e.Tag, e.Offset)
}

// UnknownEnumValue is raised when an enum conversion function receives a
// raw value with no named variant.
type UnknownEnumValue struct {
	Kind   string
	Raw    uint32
	Offset int
}

func (e *UnknownEnumValue) Error() string {
	return fmt.Sprintf("unknown %s value %d at offset %d", e.Kind, e.Raw, e.Offset)
}

// CheckpointMisaligned is raised when a FutureData boundary does not
// equal the stream offset at record exit.
type CheckpointMisaligned struct {
	ExpectedEnd int
	Actual      int
	Label       string
}

func (e *CheckpointMisaligned) Error() string {
	return fmt.Sprintf("checkpoint %q misaligned: expected end %d, actual %d", e.Label, e.ExpectedEnd, e.Actual)
}

// InvariantViolated is raised when a record's value fails a named
// invariant from spec section 3/8.
type InvariantViolated struct {
	What   string
	Offset int
}

func (e *InvariantViolated) Error() string {
	return fmt.Sprintf("invariant violated at offset %d: %s", e.Offset, e.What)
}

// FilesystemMissing is raised when a required stream or directory is
// absent from the extracted container tree.
type FilesystemMissing struct {
	Path string
}

func (e *FilesystemMissing) Error() string {
	return fmt.Sprintf("required path missing: %s", e.Path)
}

// UnknownFileKind is raised when an input file's extension cannot be
// classified as a Library or Schematic container.
type UnknownFileKind struct {
	Extension string
}

func (e *UnknownFileKind) Error() string {
	return fmt.Sprintf("unknown file kind for extension %q", e.Extension)
}
