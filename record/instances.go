package record

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/futuredata"
	"github.com/orcadtools/schemparse/geometry"
	"github.com/orcadtools/schemparse/prefix"
)

// WireScalar is a schematic wire segment. Nested carries the records
// read when byte_offset (from the enclosing standard prefix) exceeds
// 0x3D (spec.md §4.6, §8 boundary behaviour).
type WireScalar struct {
	DbID                 uint32
	Color                uint32
	StartX, StartY       int32
	EndX, EndY           int32
	Nested               []*Record
	LineWidth, LineStyle uint32
}

// readWireScalar reads `dbId: u32, 4 opaque, color: u32,
// startX/startY/endX/endY: i32, 1 opaque byte`, then a byte_offset-gated
// middle section, then `2 opaque, lineWidth: u32, lineStyle: u32`.
func readWireScalar(d *datastream.DataStream, ft *futuredata.Tracker, version enums.FileFormatVersion, textFontCount int, byteOffset uint32) (*WireScalar, error) {
	dbID, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(4); err != nil {
		return nil, err
	}
	color, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	startX, err := d.ReadI32()
	if err != nil {
		return nil, err
	}
	startY, err := d.ReadI32()
	if err != nil {
		return nil, err
	}
	endX, err := d.ReadI32()
	if err != nil {
		return nil, err
	}
	endY, err := d.ReadI32()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(1); err != nil {
		return nil, err
	}
	var nested []*Record
	switch {
	case byteOffset == 0x3D:
		if _, err := d.ReadRaw(2); err != nil {
			return nil, err
		}
	case byteOffset > 0x3D:
		length, err := d.ReadU16()
		if err != nil {
			return nil, err
		}
		nested = make([]*Record, 0, length)
		for i := uint16(0); i < length; i++ {
			rec, err := Dispatch(d, ft, version, textFontCount)
			if err != nil {
				return nil, err
			}
			nested = append(nested, rec)
		}
	}
	if _, err := d.ReadRaw(2); err != nil {
		return nil, err
	}
	lineWidth, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	lineStyle, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	return &WireScalar{
		DbID: dbID, Color: color,
		StartX: startX, StartY: startY, EndX: endX, EndY: endY,
		Nested: nested, LineWidth: lineWidth, LineStyle: lineStyle,
	}, nil
}

// PartInst places a package instance on a schematic page. Attached
// holds the records of the dbId-local display list followed by those of
// the reference-designator-local display list. The trailing dangling
// record after the reference string has only its long prefix and
// preamble consumed and is not kept (original_source/src/Parser.cpp
// Parser::readPartInst).
type PartInst struct {
	PackageName string
	DbID        uint32
	Position    geometry.Point // locX/locY, read as i16
	Color       uint16         // raw palette index; not decoded, see spec.md §9 open question (a)
	Reference   string
	Tail        string // unlabeled trailing zstr read after Reference
	Attached    []*Record
}

func readPartInst(d *datastream.DataStream, ft *futuredata.Tracker, version enums.FileFormatVersion, textFontCount int) (*PartInst, error) {
	if _, err := d.ReadRaw(8); err != nil {
		return nil, err
	}
	pkgName, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	dbID, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(8); err != nil {
		return nil, err
	}
	x, err := d.ReadI16()
	if err != nil {
		return nil, err
	}
	y, err := d.ReadI16()
	if err != nil {
		return nil, err
	}
	color, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(2); err != nil {
		return nil, err
	}
	attached, err := readDispatchedList(d, ft, version, textFontCount)
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(1); err != nil {
		return nil, err
	}
	reference, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(14); err != nil {
		return nil, err
	}
	attached2, err := readDispatchedList(d, ft, version, textFontCount)
	if err != nil {
		return nil, err
	}
	tail, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(2); err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(18); err != nil {
		return nil, err
	}
	// Trailing dangling record: consumed but not recursively dispatched,
	// matching the original reader which stops at the prefix/preamble.
	if _, err := prefix.ReadLongPrefix(d); err != nil {
		return nil, err
	}
	if _, err := prefix.ReadPreamble(d); err != nil {
		return nil, err
	}
	return &PartInst{
		PackageName: pkgName, DbID: dbID,
		Position: geometry.Point{X: int32(x), Y: int32(y)}, Color: color,
		Reference: reference, Tail: tail,
		Attached: append(attached, attached2...),
	}, nil
}

// readDispatchedList reads a u16 count followed by that many
// {type-prefix, preamble, record} triples, a shape repeated throughout
// the page-level readers.
func readDispatchedList(d *datastream.DataStream, ft *futuredata.Tracker, version enums.FileFormatVersion, textFontCount int) ([]*Record, error) {
	count, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	out := make([]*Record, 0, count)
	for i := uint16(0); i < count; i++ {
		rec, err := Dispatch(d, ft, version, textFontCount)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Alias is a net-label instance placed at a point on a schematic.
type Alias struct {
	Position    geometry.Point
	Color       uint32
	Rotation    enums.Rotation
	TextFontIdx uint16
	Name        string
}

func readAlias(d *datastream.DataStream) (*Alias, error) {
	x, err := d.ReadI32()
	if err != nil {
		return nil, err
	}
	y, err := d.ReadI32()
	if err != nil {
		return nil, err
	}
	color, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	rotOff := d.CurrentOffset()
	rotRaw, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	rotation, err := enums.RotationFromBits(byte(rotRaw), rotOff)
	if err != nil {
		return nil, err
	}
	fontIdx, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(2); err != nil {
		return nil, err
	}
	name, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	return &Alias{Position: geometry.Point{X: x, Y: y}, Color: color, Rotation: rotation, TextFontIdx: fontIdx, Name: name}, nil
}

// GraphicBoxInst places a rectangle graphic on a schematic page. The
// trailing nested record is the rectangle's own GeoDefinition, carried
// as a long-prefixed dispatch (original_source/src/Parser.cpp
// Parser::readGraphicBoxInst).
type GraphicBoxInst struct {
	DbID           uint32
	LocX, LocY     int16
	X1, Y1, X2, Y2 int16
	Color          uint16
	Shape          *Record
}

func readGraphicBoxInst(d *datastream.DataStream, ft *futuredata.Tracker, version enums.FileFormatVersion, textFontCount int) (*GraphicBoxInst, error) {
	if _, err := d.ReadRaw(11); err != nil {
		return nil, err
	}
	dbID, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	locY, err := d.ReadI16()
	if err != nil {
		return nil, err
	}
	locX, err := d.ReadI16()
	if err != nil {
		return nil, err
	}
	y2, err := d.ReadI16()
	if err != nil {
		return nil, err
	}
	x2, err := d.ReadI16()
	if err != nil {
		return nil, err
	}
	x1, err := d.ReadI16()
	if err != nil {
		return nil, err
	}
	y1, err := d.ReadI16()
	if err != nil {
		return nil, err
	}
	color, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(5); err != nil {
		return nil, err
	}
	if _, err := prefix.ReadLongPrefix(d); err != nil {
		return nil, err
	}
	if _, err := prefix.ReadPreamble(d); err != nil {
		return nil, err
	}
	shape, err := Dispatch(d, ft, version, textFontCount)
	if err != nil {
		return nil, err
	}
	return &GraphicBoxInst{DbID: dbID, LocX: locX, LocY: locY, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: color, Shape: shape}, nil
}

// BusEntry is the short diagonal stroke connecting a bus to a scalar pin.
type BusEntry struct {
	Color      uint32
	Start, End geometry.Point
}

// readBusEntry reads BusEntry's own preamble (StructBusEntry::read calls
// readPreamble() directly rather than through prefix.requiresPreamble),
// then `color: u32, startX/startY/endX/endY: i32`
// (original_source/src/Structures/StructBusEntry.cpp).
func readBusEntry(d *datastream.DataStream) (*BusEntry, error) {
	if _, err := prefix.ReadPreamble(d); err != nil {
		return nil, err
	}
	color, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	startX, err := d.ReadI32()
	if err != nil {
		return nil, err
	}
	startY, err := d.ReadI32()
	if err != nil {
		return nil, err
	}
	endX, err := d.ReadI32()
	if err != nil {
		return nil, err
	}
	endY, err := d.ReadI32()
	if err != nil {
		return nil, err
	}
	return &BusEntry{
		Color: color,
		Start: geometry.Point{X: startX, Y: startY},
		End:   geometry.Point{X: endX, Y: endY},
	}, nil
}
