package geometry

import (
	"bytes"

	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/prefix"
)

// Specification is a named bag of geometry primitives (spec.md §3,
// "Geometry specification").
type Specification struct {
	Kind  enums.GeometryStructure
	Items []Primitive
}

// version quirk gates (spec.md §4.7): version A appends an extra 8-byte
// block after each primitive; version B re-reads a type prefix between
// successive primitives; B and C (not A) re-read the preamble between
// successive primitives.
func hasExtraTrailingBlock(v enums.FileFormatVersion) bool { return v == enums.FileFormatVersionA }
func reReadsTypePrefix(v enums.FileFormatVersion) bool     { return v == enums.FileFormatVersionB }
func reReadsPreamble(v enums.FileFormatVersion) bool {
	return v == enums.FileFormatVersionB || v == enums.FileFormatVersionC
}

// ReadPrimitiveBody reads one primitive's body given its already-decoded
// kind, dispatching to the matching leaf reader. Exported so callers that
// read their own count-prefixed primitive lists (e.g. record.SthInList)
// can reuse it without duplicating the switch.
func ReadPrimitiveBody(d *datastream.DataStream, kind enums.Primitive, version enums.FileFormatVersion) (Primitive, error) {
	return readPrimitiveBody(d, kind, version)
}

func readPrimitiveBody(d *datastream.DataStream, kind enums.Primitive, version enums.FileFormatVersion) (Primitive, error) {
	p := Primitive{Kind: kind}
	var err error
	switch kind {
	case enums.PrimitiveRect:
		p.Rect, err = ReadRect(d)
	case enums.PrimitiveLine:
		p.Line, err = ReadLine(d)
	case enums.PrimitiveArc:
		p.Arc, err = ReadArc(d)
	case enums.PrimitiveEllipse:
		p.Ellipse, err = ReadEllipse(d)
	case enums.PrimitivePolygon:
		p.Polygon, err = ReadPolygon(d)
	case enums.PrimitivePolyline:
		p.Polyline, err = ReadPolyline(d)
	case enums.PrimitiveBezier:
		p.Bezier, err = ReadBezier(d)
	case enums.PrimitiveBitmap:
		p.Bitmap, err = ReadBitmap(d)
	case enums.PrimitiveCommentText:
		p.CommentText, err = ReadCommentText(d)
	case enums.PrimitiveSymbolVector:
		p.Vector, err = ReadSymbolVector(d, version)
	}
	return p, err
}

// ReadSpecification reads a count-prefixed, ordered list of primitives
// (spec.md §4.5, §4.7). kind records which containing record the list was
// read for, so version-dependent quirks picked elsewhere stay traceable.
func ReadSpecification(d *datastream.DataStream, version enums.FileFormatVersion, kind enums.GeometryStructure) (*Specification, error) {
	count, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	spec := &Specification{Kind: kind, Items: make([]Primitive, 0, count)}
	for i := uint16(0); i < count; i++ {
		if i > 0 {
			if reReadsTypePrefix(version) {
				if _, err := prefix.ReadStandardPrefix(d); err != nil {
					return nil, err
				}
			}
			if reReadsPreamble(version) {
				if _, err := prefix.ReadPreamble(d); err != nil {
					return nil, err
				}
			}
		}
		kindTag, err := prefix.ReadPrimitivePrefix(d)
		if err != nil {
			return nil, err
		}
		prim, err := readPrimitiveBody(d, kindTag, version)
		if err != nil {
			return nil, err
		}
		if hasExtraTrailingBlock(version) {
			if _, err := d.ReadRaw(8); err != nil {
				return nil, err
			}
		}
		spec.Items = append(spec.Items, prim)
	}
	return spec, nil
}

func discardUntilPreamble(d *datastream.DataStream) error {
	var window [4]byte
	filled := 0
	for {
		b, err := d.ReadU8()
		if err != nil {
			return err
		}
		if filled < 4 {
			window[filled] = b
			filled++
		} else {
			window[0], window[1], window[2] = window[1], window[2], window[3]
			window[3] = b
		}
		if filled == 4 && bytes.Equal(window[:], prefix.Magic) {
			for i := 0; i < 4; i++ {
				d.Putback(window[i])
			}
			return nil
		}
	}
}

// ReadSymbolVector reads a SymbolVector body (spec.md §4.5): scan to the
// next preamble, a local origin, a repeated list of nested primitives,
// and a fixed 12-byte tail.
func ReadSymbolVector(d *datastream.DataStream, version enums.FileFormatVersion) (*SymbolVector, error) {
	if err := discardUntilPreamble(d); err != nil {
		return nil, err
	}
	if _, err := prefix.ReadPreamble(d); err != nil {
		return nil, err
	}
	locX, err := d.ReadI16()
	if err != nil {
		return nil, err
	}
	locY, err := d.ReadI16()
	if err != nil {
		return nil, err
	}
	repetition, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	sv := &SymbolVector{LocX: locX, LocY: locY, Primitives: make([]Primitive, 0, repetition)}
	for i := uint16(0); i < repetition; i++ {
		if reReadsPreamble(version) {
			if _, err := prefix.ReadPreamble(d); err != nil {
				return nil, err
			}
		}
		kindTag, err := prefix.ReadPrimitivePrefix(d)
		if err != nil {
			return nil, err
		}
		prim, err := readPrimitiveBody(d, kindTag, version)
		if err != nil {
			return nil, err
		}
		sv.Primitives = append(sv.Primitives, prim)
	}
	if _, err := prefix.ReadPreamble(d); err != nil {
		return nil, err
	}
	name, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	sv.Name = name
	if err := d.AssumeBytes(symbolVectorTail); err != nil {
		return nil, err
	}
	return sv, nil
}
