package record

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/parseerr"
)

// Properties holds a symbol's name and view identity (spec.md §3, §4.6).
// ConvertName is set only when ViewNumber == 2.
type Properties struct {
	RefDes      string
	ViewNumber  uint16
	ConvertName string
	Name        string
	Trailing    [29]byte
}

// readProperties reads `ref: zstr, 00 00 00, viewNumber: u16, if
// viewNumber==2: convertName: zstr, name: zstr, 29 opaque bytes`.
func readProperties(d *datastream.DataStream) (*Properties, error) {
	ref, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(3); err != nil {
		return nil, err
	}
	off := d.CurrentOffset()
	viewNumber, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	if viewNumber != 1 && viewNumber != 2 {
		return nil, &parseerr.InvariantViolated{What: "Properties.viewNumber not in {1,2}", Offset: off}
	}
	var convertName string
	if viewNumber == 2 {
		convertName, err = d.ReadStringZeroTerminated()
		if err != nil {
			return nil, err
		}
	}
	name, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	var trailing [29]byte
	raw, err := d.ReadRaw(29)
	if err != nil {
		return nil, err
	}
	copy(trailing[:], raw)
	return &Properties{RefDes: ref, ViewNumber: viewNumber, ConvertName: convertName, Name: name, Trailing: trailing}, nil
}

// Properties2 carries a part's reference designator and footprint
// alongside its section count (spec.md §3).
type Properties2 struct {
	Name         string
	RefDes       string
	Footprint    string
	SectionCount uint16
}

func readProperties2(d *datastream.DataStream) (*Properties2, error) {
	name, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	refDes, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	footprint, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	sectionCount, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	return &Properties2{Name: name, RefDes: refDes, Footprint: footprint, SectionCount: sectionCount}, nil
}

// GeneralProperties carries a part's implementation binding and
// rendering flags for its reference designator and value (spec.md §3).
type GeneralProperties struct {
	ImplementationPath string
	ImplementationKind string
	RefDesPrefix       string
	PartValue          string
	PinNameVisible     bool
	PinNameRotated     bool
	PinNumberVisible   bool
	ImplementationType uint8
}

func readGeneralProperties(d *datastream.DataStream) (*GeneralProperties, error) {
	implPath, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	implKind, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	refDesPrefix, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	partValue, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	flags, err := d.ReadU8()
	if err != nil {
		return nil, err
	}
	implType, err := d.ReadU8()
	if err != nil {
		return nil, err
	}
	return &GeneralProperties{
		ImplementationPath: implPath,
		ImplementationKind: implKind,
		RefDesPrefix:       refDesPrefix,
		PartValue:          partValue,
		PinNameVisible:     flags&0x01 != 0,
		PinNameRotated:     flags&0x02 != 0,
		PinNumberVisible:   flags&0x04 != 0,
		ImplementationType: implType,
	}, nil
}

// SymbolDisplayProp holds a string-list index into the library's global
// string table, a screen position, decoded display flags, and a colour
// (spec.md §3, §4.6).
type SymbolDisplayProp struct {
	StrListIdx  uint32
	X, Y        int16
	TextFontIdx uint8
	Rotation    enums.Rotation
	PropColor   enums.Color
}

// readSymbolDisplayProp reads `nameIdx: u32, x: i16, y: i16, packed: u16
// (textFontIdx = packed & 0xFF; reserved = (packed>>8)&0x3F must be 0;
// rotation = packed>>14), propColor: u8, 2 opaque bytes, assert 00`.
// textFontCount is the enclosing library's text-font-table length;
// textFontIdx must not exceed it (original_source/src/Parser.cpp:
// 1492-1495 throws out_of_range on the equivalent check).
func readSymbolDisplayProp(d *datastream.DataStream, textFontCount int) (*SymbolDisplayProp, error) {
	nameIdx, err := d.ReadU32()
	if err != nil {
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
	packedOff := d.CurrentOffset()
	packed, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	reserved := (packed >> 8) & 0x3F
	if reserved != 0 {
		return nil, &parseerr.InvariantViolated{What: "SymbolDisplayProp reserved bits", Offset: packedOff}
	}
	textFontIdx := uint8(packed & 0xFF)
	if int(textFontIdx) > textFontCount {
		return nil, &parseerr.InvariantViolated{What: "textFontIdx out of range", Offset: packedOff}
	}
	rotation, err := enums.RotationFromBits(byte(packed>>14), packedOff)
	if err != nil {
		return nil, err
	}
	colorOff := d.CurrentOffset()
	colorRaw, err := d.ReadU8()
	if err != nil {
		return nil, err
	}
	color, err := enums.ColorFromTag(colorRaw, colorOff)
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(2); err != nil {
		return nil, err
	}
	if err := d.AssumeBytes([]byte{0x00}); err != nil {
		return nil, err
	}
	return &SymbolDisplayProp{StrListIdx: nameIdx, X: x, Y: y, TextFontIdx: textFontIdx, Rotation: rotation, PropColor: color}, nil
}
