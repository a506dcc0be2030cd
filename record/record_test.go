package record

import (
	"errors"
	"testing"

	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/futuredata"
	"github.com/orcadtools/schemparse/parseerr"
)

func u16le(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
func u32le(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}
func i32le(v int32) []byte { return u32le(uint32(v)) }

func zstr(s string) []byte { return append([]byte(s), 0x00) }

// shortPrefixBytes builds a short-form prefix with zero pairs for tag.
func shortPrefixBytes(tag enums.Structure) []byte {
	raw := tag.Raw()
	buf := []byte{raw}
	buf = append(buf, u32le(0x0B)...) // unlocked
	buf = append(buf, make([]byte, 4)...)
	buf = append(buf, raw)
	buf = append(buf, u16le(0)...) // size = 0 (i16 little-endian, positive)
	return buf
}

// standardPrefixBytes builds a standard-form prefix wrapping tag with the
// given byteOffset.
func standardPrefixBytes(tag enums.Structure, byteOffset uint32) []byte {
	raw := tag.Raw()
	buf := []byte{raw}
	buf = append(buf, u32le(byteOffset)...)
	buf = append(buf, make([]byte, 4)...)
	buf = append(buf, shortPrefixBytes(tag)...)
	return buf
}

func TestDispatchPropertiesViewNumber1(t *testing.T) {
	var buf []byte
	buf = append(buf, standardPrefixBytes(enums.StructureProperties, 0)...)
	// Properties requires a preamble.
	buf = append(buf, 0xFF, 0xE4, 0x5C, 0x39)
	buf = append(buf, u32le(0)...)
	buf = append(buf, zstr("REF1")...)
	buf = append(buf, 0x00, 0x00, 0x00)
	buf = append(buf, u16le(1)...)
	buf = append(buf, zstr("Normal")...)
	buf = append(buf, make([]byte, 29)...)
	d := datastream.New(buf)
	ft := futuredata.New()
	rec, err := Dispatch(d, ft, enums.FileFormatVersionC, 0)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if rec.Tag != enums.StructureProperties {
		t.Fatalf("tag = %v", rec.Tag)
	}
	if rec.Properties.RefDes != "REF1" || rec.Properties.Name != "Normal" {
		t.Fatalf("unexpected properties: %+v", rec.Properties)
	}
	if rec.Properties.ConvertName != "" {
		t.Fatalf("expected no convert name for viewNumber=1")
	}
}

func TestDispatchPropertiesBadViewNumber(t *testing.T) {
	var buf []byte
	buf = append(buf, standardPrefixBytes(enums.StructureProperties, 0)...)
	buf = append(buf, 0xFF, 0xE4, 0x5C, 0x39)
	buf = append(buf, u32le(0)...)
	buf = append(buf, zstr("REF1")...)
	buf = append(buf, 0x00, 0x00, 0x00)
	buf = append(buf, u16le(9)...)
	d := datastream.New(buf)
	ft := futuredata.New()
	_, err := Dispatch(d, ft, enums.FileFormatVersionC, 0)
	var iv *parseerr.InvariantViolated
	if !errors.As(err, &iv) {
		t.Fatalf("expected InvariantViolated, got %v", err)
	}
}

func TestDispatchUnknownStructure(t *testing.T) {
	// Raw tag 0x0D decodes to a valid Structure enum value (the internal
	// very-long placeholder, spec.md §9(d)) but the dispatcher registers
	// no reader for it, so it must fail with UnknownStructure rather than
	// panic on a nil case.
	const rawTag = 0x0D
	buf := []byte{rawTag}
	buf = append(buf, u32le(0)...)
	buf = append(buf, make([]byte, 4)...)
	buf = append(buf, rawTag)
	buf = append(buf, u32le(0x0B)...)
	buf = append(buf, make([]byte, 4)...)
	buf = append(buf, rawTag)
	buf = append(buf, u16le(0)...)
	d := datastream.New(buf)
	ft := futuredata.New()
	_, err := Dispatch(d, ft, enums.FileFormatVersionC, 0)
	var us *parseerr.UnknownStructure
	if !errors.As(err, &us) {
		t.Fatalf("expected UnknownStructure, got %v", err)
	}
}

func TestReadBusEntry(t *testing.T) {
	var buf []byte
	buf = append(buf, 0xFF, 0xE4, 0x5C, 0x39)
	buf = append(buf, u32le(0)...)
	buf = append(buf, u32le(7)...) // color
	buf = append(buf, i32le(10)...)
	buf = append(buf, i32le(20)...)
	buf = append(buf, i32le(30)...)
	buf = append(buf, i32le(40)...)
	d := datastream.New(buf)
	be, err := readBusEntry(d)
	if err != nil {
		t.Fatalf("readBusEntry: %v", err)
	}
	if !d.IsEOF() {
		t.Fatalf("expected EOF")
	}
	if be.Color != 7 {
		t.Fatalf("Color = %d, want 7", be.Color)
	}
	if be.Start.X != 10 || be.Start.Y != 20 || be.End.X != 30 || be.End.Y != 40 {
		t.Fatalf("unexpected: %+v", be)
	}
}

func TestReadPinIdxMappingBadSeparator(t *testing.T) {
	var buf []byte
	buf = append(buf, zstr("U1")...)
	buf = append(buf, zstr("U?")...)
	buf = append(buf, u16le(1)...)
	buf = append(buf, zstr("1")...)
	buf = append(buf, 0x42)
	d := datastream.New(buf)
	_, err := readPinIdxMapping(d)
	var iv *parseerr.InvariantViolated
	if !errors.As(err, &iv) {
		t.Fatalf("expected InvariantViolated, got %v", err)
	}
}

func TestReadPinIdxMappingGoodSeparators(t *testing.T) {
	var buf []byte
	buf = append(buf, zstr("U1")...)
	buf = append(buf, zstr("U?")...)
	buf = append(buf, u16le(3)...)
	for _, n := range []string{"1", "2", "3"} {
		buf = append(buf, zstr(n)...)
		buf = append(buf, 0x7F)
	}
	d := datastream.New(buf)
	pm, err := readPinIdxMapping(d)
	if err != nil {
		t.Fatalf("readPinIdxMapping: %v", err)
	}
	if len(pm.Pins) != 3 || pm.Pins[2].Name != "3" {
		t.Fatalf("unexpected pins: %+v", pm.Pins)
	}
}

func TestReadSymbolDisplayPropReservedBitsMustBeZero(t *testing.T) {
	var buf []byte
	buf = append(buf, u32le(7)...)
	buf = append(buf, u16le(0)...) // x
	buf = append(buf, u16le(0)...) // y
	buf = append(buf, u16le(0x0103)...)
	d := datastream.New(buf)
	_, err := readSymbolDisplayProp(d, 2)
	var iv *parseerr.InvariantViolated
	if !errors.As(err, &iv) {
		t.Fatalf("expected InvariantViolated, got %v", err)
	}
}

func TestReadSymbolDisplayPropTextFontIdxOutOfRange(t *testing.T) {
	var buf []byte
	buf = append(buf, u32le(7)...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(0x0003)...) // textFontIdx=3, library has 2 fonts
	d := datastream.New(buf)
	_, err := readSymbolDisplayProp(d, 2)
	var iv *parseerr.InvariantViolated
	if !errors.As(err, &iv) {
		t.Fatalf("expected InvariantViolated, got %v", err)
	}
}

func TestReadSymbolDisplayPropValid(t *testing.T) {
	var buf []byte
	buf = append(buf, u32le(7)...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(0x0002)...) // textFontIdx=2, rotation=0
	buf = append(buf, 0x00)             // ColorBlack
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, 0x00)
	d := datastream.New(buf)
	sdp, err := readSymbolDisplayProp(d, 2)
	if err != nil {
		t.Fatalf("readSymbolDisplayProp: %v", err)
	}
	if sdp.TextFontIdx != 2 || sdp.Rotation != enums.RotationR0 {
		t.Fatalf("unexpected: %+v", sdp)
	}
}

func TestReadWireScalarByteOffsetBranches(t *testing.T) {
	base := func() []byte {
		var buf []byte
		buf = append(buf, u32le(1)...)
		buf = append(buf, make([]byte, 4)...)
		buf = append(buf, u32le(0)...)
		buf = append(buf, i32le(0)...)
		buf = append(buf, i32le(0)...)
		buf = append(buf, i32le(10)...)
		buf = append(buf, i32le(10)...)
		buf = append(buf, 0x00)
		return buf
	}
	ft := futuredata.New()

	t.Run("equal 0x3D consumes 2 bytes", func(t *testing.T) {
		buf := base()
		buf = append(buf, 0x00, 0x00) // the 2-byte branch
		buf = append(buf, 0x00, 0x00) // trailing 2 opaque
		buf = append(buf, u32le(1)...)
		buf = append(buf, u32le(0)...)
		d := datastream.New(buf)
		ws, err := readWireScalar(d, ft, enums.FileFormatVersionC, 0, 0x3D)
		if err != nil {
			t.Fatalf("readWireScalar: %v", err)
		}
		if !d.IsEOF() {
			t.Fatalf("expected EOF")
		}
		if ws.LineWidth != 1 {
			t.Fatalf("unexpected LineWidth: %+v", ws)
		}
	})

	t.Run("below 0x3D consumes none", func(t *testing.T) {
		buf := base()
		buf = append(buf, 0x00, 0x00) // trailing 2 opaque only
		buf = append(buf, u32le(2)...)
		buf = append(buf, u32le(0)...)
		d := datastream.New(buf)
		_, err := readWireScalar(d, ft, enums.FileFormatVersionC, 0, 0x10)
		if err != nil {
			t.Fatalf("readWireScalar: %v", err)
		}
		if !d.IsEOF() {
			t.Fatalf("expected EOF")
		}
	})
}
