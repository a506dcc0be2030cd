package geometry

import (
	"testing"

	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
)

func u32le(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func i32le(v int32) []byte { return u32le(uint32(v)) }

func u16le(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }

func pointBytes(x, y int32) []byte {
	return append(i32le(x), i32le(y)...)
}

func TestReadRect(t *testing.T) {
	buf := append([]byte{}, pointBytes(1, 2)...)
	buf = append(buf, pointBytes(3, 4)...)
	buf = append(buf, 0x00, 0x00, 0x00) // LineStyleSolid, LineWidthThin, ColorBlack
	buf = append(buf, 0x00, 0x00)       // FillStyleNone, HatchStyleNotValid
	d := datastream.New(buf)
	r, err := ReadRect(d)
	if err != nil {
		t.Fatalf("ReadRect: %v", err)
	}
	if r.P1 != (Point{1, 2}) || r.P2 != (Point{3, 4}) {
		t.Fatalf("unexpected points: %+v", r)
	}
}

func TestReadBitmapNoStyle(t *testing.T) {
	buf := append([]byte{}, pointBytes(0, 0)...)
	buf = append(buf, pointBytes(10, 10)...)
	buf = append(buf, u32le(3)...)
	buf = append(buf, 0xAA, 0xBB, 0xCC)
	d := datastream.New(buf)
	b, err := ReadBitmap(d)
	if err != nil {
		t.Fatalf("ReadBitmap: %v", err)
	}
	if len(b.Data) != 3 || b.Data[1] != 0xBB {
		t.Fatalf("unexpected data: %v", b.Data)
	}
	if !d.IsEOF() {
		t.Fatalf("expected EOF after reading declared length")
	}
}

func TestReadPolylinePointCount(t *testing.T) {
	buf := append([]byte{}, u16le(2)...)
	buf = append(buf, pointBytes(0, 0)...)
	buf = append(buf, pointBytes(5, 5)...)
	buf = append(buf, 0x00, 0x00, 0x00)
	d := datastream.New(buf)
	pl, err := ReadPolyline(d)
	if err != nil {
		t.Fatalf("ReadPolyline: %v", err)
	}
	if len(pl.Points) != 2 || pl.Points[1] != (Point{5, 5}) {
		t.Fatalf("unexpected points: %+v", pl.Points)
	}
}

func TestReadCommentTextStopsAtNul(t *testing.T) {
	buf := append([]byte{}, pointBytes(0, 0)...)
	buf = append(buf, u32le(1)...)
	buf = append(buf, 0x00, 0x00) // ColorBlack, Rotation0
	buf = append(buf, []byte("hi")...)
	buf = append(buf, 0x00)
	d := datastream.New(buf)
	ct, err := ReadCommentText(d)
	if err != nil {
		t.Fatalf("ReadCommentText: %v", err)
	}
	if ct.Text != "hi" {
		t.Fatalf("Text = %q, want hi", ct.Text)
	}
}

func primitivePrefixBytes(kind enums.Primitive) []byte {
	raw := kind.Raw()
	return []byte{raw, 0x00, raw}
}

func TestReadSpecificationVersionCNoExtras(t *testing.T) {
	var buf []byte
	buf = append(buf, u16le(1)...) // count
	buf = append(buf, primitivePrefixBytes(enums.PrimitiveRect)...)
	buf = append(buf, pointBytes(0, 0)...)
	buf = append(buf, pointBytes(1, 1)...)
	buf = append(buf, 0x00, 0x00, 0x00, 0x00, 0x00)
	d := datastream.New(buf)
	spec, err := ReadSpecification(d, enums.FileFormatVersionC, enums.GeometryStructureSymbol)
	if err != nil {
		t.Fatalf("ReadSpecification: %v", err)
	}
	if len(spec.Items) != 1 || spec.Items[0].Kind != enums.PrimitiveRect {
		t.Fatalf("unexpected items: %+v", spec.Items)
	}
	if !d.IsEOF() {
		t.Fatalf("expected EOF, trailing bytes remain")
	}
}

func TestReadSpecificationVersionAExtraBlock(t *testing.T) {
	var buf []byte
	buf = append(buf, u16le(1)...)
	buf = append(buf, primitivePrefixBytes(enums.PrimitiveLine)...)
	buf = append(buf, pointBytes(0, 0)...)
	buf = append(buf, pointBytes(1, 1)...)
	buf = append(buf, 0x00, 0x00, 0x00)
	buf = append(buf, make([]byte, 8)...) // version A extra trailing block
	d := datastream.New(buf)
	spec, err := ReadSpecification(d, enums.FileFormatVersionA, enums.GeometryStructureGlobal)
	if err != nil {
		t.Fatalf("ReadSpecification: %v", err)
	}
	if len(spec.Items) != 1 {
		t.Fatalf("unexpected items: %+v", spec.Items)
	}
	if !d.IsEOF() {
		t.Fatalf("expected EOF, version A trailing block not consumed")
	}
}

func TestReadSymbolVectorSkipsPaddingAndReadsTail(t *testing.T) {
	var buf []byte
	buf = append(buf, 0xFF, 0xFF) // junk preceding the magic, discarded by discardUntilPreamble
	buf = append(buf, prefixMagic()...)
	buf = append(buf, u32le(0)...) // zero-length lock data
	buf = append(buf, []byte{10, 0}...)
	buf = append(buf, []byte{20, 0}...)
	buf = append(buf, u16le(0)...) // repetition = 0, no nested primitives
	buf = append(buf, prefixMagic()...)
	buf = append(buf, u32le(0)...)
	buf = append(buf, []byte("U1")...)
	buf = append(buf, 0x00)
	buf = append(buf, symbolVectorTail...)
	d := datastream.New(buf)
	sv, err := ReadSymbolVector(d, enums.FileFormatVersionC)
	if err != nil {
		t.Fatalf("ReadSymbolVector: %v", err)
	}
	if sv.LocX != 10 || sv.LocY != 20 || sv.Name != "U1" {
		t.Fatalf("unexpected vector: %+v", sv)
	}
	if !d.IsEOF() {
		t.Fatalf("expected EOF after fixed tail")
	}
}

func prefixMagic() []byte { return []byte{0xFF, 0xE4, 0x5C, 0x39} }
