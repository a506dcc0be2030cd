package record

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/futuredata"
	"github.com/orcadtools/schemparse/geometry"
	"github.com/orcadtools/schemparse/prefix"
)

// T0x1f keeps the source's hex-suffixed name; no better name has been
// reverse-engineered yet (spec.md §3).
type T0x1f struct {
	Name         string
	Opaque1      string
	RefDes       string
	Opaque2      string
	PcbFootprint string
}

// readT0x1f reads `name: zstr, opaque1: zstr, refDes: zstr, opaque2:
// zstr, pcbFootprint: zstr, 2 opaque bytes`.
func readT0x1f(d *datastream.DataStream) (*T0x1f, error) {
	name, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	opaque1, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	refDes, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	opaque2, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	pcbFootprint, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(2); err != nil {
		return nil, err
	}
	return &T0x1f{Name: name, Opaque1: opaque1, RefDes: refDes, Opaque2: opaque2, PcbFootprint: pcbFootprint}, nil
}

// T0x10 has no recovered body shape at all; its only known content is
// whatever falls inside its own FutureData checkpoint, kept raw.
type T0x10 struct {
	Raw []byte
}

func readT0x10(d *datastream.DataStream, ft *futuredata.Tracker) (*T0x10, error) {
	remaining, ok := ft.RemainingToTop(d)
	if !ok || remaining <= 0 {
		return &T0x10{}, nil
	}
	raw, err := d.ReadRaw(remaining)
	if err != nil {
		return nil, err
	}
	return &T0x10{Raw: raw}, nil
}

// SthInList is the shape shared by SthInPages0 and SthInHierarchy1: a
// fixed 10-byte header, a count-prefixed list of geometry primitives,
// and a checkpoint-driven optional tail (spec.md §4.4, §4.6, §9(c)).
type SthInList struct {
	Items []geometry.Primitive
	Tail  []byte
}

// readSthInList reads `6 opaque, 4 opaque, u16 len, len ×
// (primitive-prefix, geometry primitive)`, then resolves the
// remaining-distance branch inherited from the source as observed: an
// exact 8 bytes remaining is read as a coordinate tail, anything else is
// skipped to the next checkpoint (not re-derived; see spec.md §9(c)).
func readSthInList(d *datastream.DataStream, ft *futuredata.Tracker, version enums.FileFormatVersion) (*SthInList, error) {
	if _, err := d.ReadRaw(6); err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(4); err != nil {
		return nil, err
	}
	length, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	items := make([]geometry.Primitive, 0, length)
	for i := uint16(0); i < length; i++ {
		kind, err := prefix.ReadPrimitivePrefix(d)
		if err != nil {
			return nil, err
		}
		prim, err := geometry.ReadPrimitiveBody(d, kind, version)
		if err != nil {
			return nil, err
		}
		items = append(items, prim)
	}
	list := &SthInList{Items: items}
	if remaining, ok := ft.RemainingToTop(d); ok {
		if remaining == 8 {
			tail, err := d.ReadRaw(8)
			if err != nil {
				return nil, err
			}
			list.Tail = tail
		} else {
			if err := ft.ReadUntilNextFutureData(d, "SthInList tail"); err != nil {
				return nil, err
			}
		}
	}
	return list, nil
}

// SthInHierarchy1 is one hierarchy-tree entry: a fixed 27-byte opaque
// header with no recovered field shape, followed by whatever remains
// to the next FutureData checkpoint (grounded on
// original_source/src/Structures/StructSthInHierarchy1.cpp, which is
// structurally unrelated to SthInPages0 despite the shared "SthIn*"
// naming).
type SthInHierarchy1 struct {
	Opaque [27]byte
	Tail   []byte
}

func readSthInHierarchy1(d *datastream.DataStream, ft *futuredata.Tracker) (*SthInHierarchy1, error) {
	raw, err := d.ReadRaw(27)
	if err != nil {
		return nil, err
	}
	var opaque [27]byte
	copy(opaque[:], raw)
	entry := &SthInHierarchy1{Opaque: opaque}
	if remaining, ok := ft.RemainingToTop(d); ok && remaining > 0 {
		tail, err := d.ReadRaw(remaining)
		if err != nil {
			return nil, err
		}
		entry.Tail = tail
	}
	return entry, nil
}

// TrailingProperties is a record-level trailing properties block,
// distinct from Properties/Properties2/GeneralProperties: whatever spare
// bytes remain once the enclosing FutureData checkpoint is known
// (supplemented from original_source, spec.md §5).
type TrailingProperties struct {
	Extra []byte
}

func readTrailingProperties(d *datastream.DataStream, ft *futuredata.Tracker) (*TrailingProperties, error) {
	remaining, ok := ft.RemainingToTop(d)
	if !ok || remaining <= 0 {
		return &TrailingProperties{}, nil
	}
	extra, err := d.ReadRaw(remaining)
	if err != nil {
		return nil, err
	}
	return &TrailingProperties{Extra: extra}, nil
}
