package record

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/parseerr"
)

// SymbolPin is shared by SymbolPinScalar and SymbolPinBus: they carry the
// same fields (spec.md §3, §4.6).
type SymbolPin struct {
	Name           string
	StartX, StartY int32
	HotptX, HotptY int32
	PinShape       enums.PinShape
	PortType       enums.PortType
}

// readSymbolPin reads `name: zstr, startX: i32, startY: i32, hotptX: i32,
// hotptY: i32, pinShape: u16, 2 opaque bytes, portType: u32, 6 opaque
// bytes`.
func readSymbolPin(d *datastream.DataStream) (*SymbolPin, error) {
	name, err := d.ReadStringZeroTerminated()
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
	hotptX, err := d.ReadI32()
	if err != nil {
		return nil, err
	}
	hotptY, err := d.ReadI32()
	if err != nil {
		return nil, err
	}
	shapeOff := d.CurrentOffset()
	shapeRaw, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	shape, err := enums.PinShapeFromTag(shapeRaw, shapeOff)
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(2); err != nil {
		return nil, err
	}
	portOff := d.CurrentOffset()
	portRaw, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	port, err := enums.PortTypeFromTag(portRaw, portOff)
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(6); err != nil {
		return nil, err
	}
	return &SymbolPin{
		Name: name, StartX: startX, StartY: startY, HotptX: hotptX, HotptY: hotptY,
		PinShape: shape, PortType: port,
	}, nil
}

// PinEntry is one named pin paired with its separator byte inside a
// PinIdxMapping.
type PinEntry struct {
	Name      string
	Separator byte
}

var validPinSeparators = map[byte]bool{0x7F: true, 0xAA: true, 0xFF: true}

// PinIdxMapping carries a unit reference, reference designator, and the
// ordered pin-name/separator list (spec.md §3, §4.6).
type PinIdxMapping struct {
	UnitRef string
	RefDes  string
	Pins    []PinEntry
}

func readPinIdxMapping(d *datastream.DataStream) (*PinIdxMapping, error) {
	unitRef, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	refDes, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	count, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	pins := make([]PinEntry, 0, count)
	for i := uint16(0); i < count; i++ {
		name, err := d.ReadStringZeroTerminated()
		if err != nil {
			return nil, err
		}
		sepOff := d.CurrentOffset()
		sep, err := d.ReadU8()
		if err != nil {
			return nil, err
		}
		if !validPinSeparators[sep] {
			return nil, &parseerr.InvariantViolated{What: "pin separator", Offset: sepOff}
		}
		pins = append(pins, PinEntry{Name: name, Separator: sep})
	}
	return &PinIdxMapping{UnitRef: unitRef, RefDes: refDes, Pins: pins}, nil
}
