package stream

import (
	"testing"

	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
)

func u16le(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
func u32le(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}
func zstr(s string) []byte { return append([]byte(s), 0x00) }

func TestReadDirectoryEmpty(t *testing.T) {
	buf := append(u32le(0), u16le(0)...)
	dir, err := ReadDirectory(datastream.New(buf))
	if err != nil {
		t.Fatalf("ReadDirectory: %v", err)
	}
	if len(dir.Entries) != 0 {
		t.Fatalf("Entries = %d, want 0", len(dir.Entries))
	}
}

func TestReadDirectoryOneEntry(t *testing.T) {
	var buf []byte
	buf = append(buf, u32le(0x1234)...)
	buf = append(buf, u16le(1)...)
	buf = append(buf, zstr("R1")...)
	buf = append(buf, u16le(uint16(enums.ComponentTypeGraphic))...)
	buf = append(buf, make([]byte, 14)...)
	buf = append(buf, u16le(472)...)
	buf = append(buf, u16le(0)...) // timezone, i16 little-endian 0
	buf = append(buf, make([]byte, 2)...)

	dir, err := ReadDirectory(datastream.New(buf))
	if err != nil {
		t.Fatalf("ReadDirectory: %v", err)
	}
	if len(dir.Entries) != 1 {
		t.Fatalf("Entries = %d, want 1", len(dir.Entries))
	}
	if dir.Entries[0].Name != "R1" {
		t.Fatalf("Name = %q, want R1", dir.Entries[0].Name)
	}
	if dir.Entries[0].FileFormatVersion != 472 {
		t.Fatalf("FileFormatVersion = %d, want 472", dir.Entries[0].FileFormatVersion)
	}
}

func TestReadDirectoryTrailingBytesFails(t *testing.T) {
	buf := append(u32le(0), u16le(0)...)
	buf = append(buf, 0xFF)
	if _, err := ReadDirectory(datastream.New(buf)); err == nil {
		t.Fatal("ReadDirectory with trailing bytes returned nil error")
	}
}

func TestReadTypesEmpty(t *testing.T) {
	entries, err := ReadTypes(datastream.New(nil))
	if err != nil {
		t.Fatalf("ReadTypes: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %d, want 0", len(entries))
	}
}

func TestReadTypesTwoEntries(t *testing.T) {
	var buf []byte
	buf = append(buf, zstr("Resistor")...)
	buf = append(buf, u16le(uint16(enums.ComponentTypeSymbol))...)
	buf = append(buf, zstr("Frame")...)
	buf = append(buf, u16le(uint16(enums.ComponentTypeBorder))...)

	entries, err := ReadTypes(datastream.New(buf))
	if err != nil {
		t.Fatalf("ReadTypes: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Name != "Resistor" || entries[0].Kind != enums.ComponentTypeSymbol {
		t.Fatalf("entries[0] = %+v", entries[0])
	}
	if entries[1].Name != "Frame" || entries[1].Kind != enums.ComponentTypeBorder {
		t.Fatalf("entries[1] = %+v", entries[1])
	}
}

func TestReadTypesUnknownKindFails(t *testing.T) {
	buf := append(zstr("Mystery"), u16le(0xBEEF)...)
	if _, err := ReadTypes(datastream.New(buf)); err == nil {
		t.Fatal("ReadTypes with an unrecognised component kind returned nil error")
	}
}

func TestReadLibraryBinEmpty(t *testing.T) {
	buf := append(u16le(0x04E4), append(u16le(0), u16le(0)...)...)
	globals, err := ReadLibraryBin(datastream.New(buf))
	if err != nil {
		t.Fatalf("ReadLibraryBin: %v", err)
	}
	if globals.CodePage != 0x04E4 {
		t.Fatalf("CodePage = %#x, want 0x04E4", globals.CodePage)
	}
	if len(globals.RawStrLst) != 0 || len(globals.TextFonts) != 0 {
		t.Fatalf("expected empty string and font tables, got %+v", globals)
	}
}

func TestReadLibraryBinStringsAndFonts(t *testing.T) {
	var buf []byte
	buf = append(buf, u16le(1252)...)
	buf = append(buf, u16le(2)...)
	buf = append(buf, zstr("GND")...)
	buf = append(buf, zstr("VCC")...)
	buf = append(buf, u16le(1)...)
	buf = append(buf, zstr("Arial")...)
	buf = append(buf, u16le(120)...)
	buf = append(buf, byte(0x05)) // bold|underline

	globals, err := ReadLibraryBin(datastream.New(buf))
	if err != nil {
		t.Fatalf("ReadLibraryBin: %v", err)
	}
	if len(globals.RawStrLst) != 2 || string(globals.RawStrLst[0]) != "GND" {
		t.Fatalf("RawStrLst = %v", globals.RawStrLst)
	}
	if len(globals.TextFonts) != 1 {
		t.Fatalf("TextFonts = %d, want 1", len(globals.TextFonts))
	}
	f := globals.TextFonts[0]
	if f.FaceName != "Arial" || f.SizeTwips != 120 || !f.Bold || f.Italic || !f.Underline {
		t.Fatalf("TextFonts[0] = %+v", f)
	}
}

func TestReadAdminDataNonPropertySetDegradesGracefully(t *testing.T) {
	admin := ReadAdminData([]byte("not an OLE property set"))
	if admin == nil {
		t.Fatal("ReadAdminData returned nil")
	}
	if admin.PropertySetDecoded {
		t.Fatal("PropertySetDecoded = true for non-property-set bytes")
	}
	if admin.Fields == nil {
		t.Fatal("Fields is nil, want an empty-but-non-nil map")
	}
}

func TestReadAdminDataEmptyInput(t *testing.T) {
	admin := ReadAdminData(nil)
	if admin.PropertySetDecoded {
		t.Fatal("PropertySetDecoded = true for empty input")
	}
}

func TestOpaquePassthroughsCopyBytes(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03}

	for name, fn := range map[string]func([]byte) []byte{
		"Cache":        ReadCache,
		"HSObjects":    ReadHSObjects,
		"DsnStream":    ReadDsnStream,
		"NetBundleMap": ReadNetBundleMapData,
	} {
		got := fn(raw)
		if string(got) != string(raw) {
			t.Fatalf("%s: got %v, want %v", name, got, raw)
		}
		got[0] = 0xFF
		if raw[0] == 0xFF {
			t.Fatalf("%s: mutating the result mutated the input, want a copy", name)
		}
	}
}
