// Package stream implements the top-of-stream entry points keyed by
// stream kind (spec.md component C7): each function here drives the
// record package with the version- and stream-specific record
// sequence for one extracted container entry, and returns the
// corresponding model type.
package stream

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/model"
	"github.com/orcadtools/schemparse/parseerr"
)

// DirectoryEntry is one row of a "<Name> Directory.bin" stream or of
// Views Directory.bin (original_source/src/Streams/
// StreamViewsDirectory.cpp). ComponentType and FileFormatVersion are
// kept raw: the former lives in a different numeric space than the
// enums.ComponentType used by the graphics-/symbols-Type lists (no
// "View" variant is named there), and the latter is a three-digit
// build number (observed 445-472), not an enums.FileFormatVersion
// letter.
type DirectoryEntry struct {
	Name              string
	ComponentTypeRaw  uint16
	FileFormatVersion uint16
	Timezone          int16
}

// Directory is the decoded shape shared by every directory-listing
// stream in the container tree.
type Directory struct {
	LastModifiedDate uint32
	Entries          []DirectoryEntry
}

// ReadDirectory reads `lastModifiedDate: u32, size: u16, size ×
// (name: zstr, componentType: u16, 14 opaque, fileFormatVersion: u16,
// timezone: i16, 2 opaque)`, then asserts EOF.
func ReadDirectory(d *datastream.DataStream) (*Directory, error) {
	lastModified, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	size, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	entries := make([]DirectoryEntry, 0, size)
	for i := uint16(0); i < size; i++ {
		name, err := d.ReadStringZeroTerminated()
		if err != nil {
			return nil, err
		}
		componentType, err := d.ReadU16()
		if err != nil {
			return nil, err
		}
		if _, err := d.ReadRaw(14); err != nil {
			return nil, err
		}
		fileFormatVersion, err := d.ReadU16()
		if err != nil {
			return nil, err
		}
		timezone, err := d.ReadI16()
		if err != nil {
			return nil, err
		}
		if _, err := d.ReadRaw(2); err != nil {
			return nil, err
		}
		entries = append(entries, DirectoryEntry{
			Name:              name,
			ComponentTypeRaw:  componentType,
			FileFormatVersion: fileFormatVersion,
			Timezone:          timezone,
		})
	}
	if !d.IsEOF() {
		return nil, &parseerr.InvariantViolated{What: "expected end of directory stream but did not reach it", Offset: d.CurrentOffset()}
	}
	return &Directory{LastModifiedDate: lastModified, Entries: entries}, nil
}

// ReadTypes reads a graphics- or symbols-Type list: `name: zstr,
// componentType: u16`, repeated until EOF (the stream carries no
// count prefix; it may also be entirely empty).
func ReadTypes(d *datastream.DataStream) ([]model.TypeEntry, error) {
	var out []model.TypeEntry
	for !d.IsEOF() {
		name, err := d.ReadStringZeroTerminated()
		if err != nil {
			return nil, err
		}
		off := d.CurrentOffset()
		raw, err := d.ReadU16()
		if err != nil {
			return nil, err
		}
		kind, err := enums.ComponentTypeFromTag(raw, off)
		if err != nil {
			return nil, err
		}
		out = append(out, model.TypeEntry{Name: name, Kind: kind})
	}
	return out, nil
}
