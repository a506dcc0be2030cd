package enums

import (
	"errors"
	"testing"

	"github.com/orcadtools/schemparse/parseerr"
)

func TestStructureRoundTrip(t *testing.T) {
	for s, raw := range structureRaw {
		got, err := StructureFromTag(raw, 0)
		if err != nil {
			t.Fatalf("StructureFromTag(0x%02x): %v", raw, err)
		}
		if got != s {
			t.Fatalf("StructureFromTag(0x%02x) = %v, want %v", raw, got, s)
		}
		if got.Raw() != raw {
			t.Fatalf("round trip failed for %v: got raw 0x%02x, want 0x%02x", s, got.Raw(), raw)
		}
	}
}

func TestStructureUnknown(t *testing.T) {
	_, err := StructureFromTag(0xEE, 42)
	var uev *parseerr.UnknownEnumValue
	if !errors.As(err, &uev) {
		t.Fatalf("expected UnknownEnumValue, got %v", err)
	}
	if uev.Offset != 42 || uev.Kind != "Structure" {
		t.Fatalf("unexpected error detail: %+v", uev)
	}
}

func TestFileTypeFromExtension(t *testing.T) {
	cases := []struct {
		ext     string
		want    FileType
		wantErr bool
	}{
		{".OLB", FileTypeLibrary, false},
		{"obk", FileTypeLibrary, false},
		{".DSN", FileTypeSchematic, false},
		{"dbk", FileTypeSchematic, false},
		{".txt", 0, true},
	}
	for _, c := range cases {
		got, err := FileTypeFromExtension(c.ext)
		if c.wantErr {
			var uf *parseerr.UnknownFileKind
			if !errors.As(err, &uf) {
				t.Fatalf("%s: expected UnknownFileKind, got %v", c.ext, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.ext, err)
		}
		if got != c.want {
			t.Fatalf("%s: got %v, want %v", c.ext, got, c.want)
		}
	}
}

func TestRotationFromBitsMasksToTwoBits(t *testing.T) {
	r, err := RotationFromBits(0xFE, 0) // low two bits are 0b10 = R180
	if err != nil {
		t.Fatalf("RotationFromBits: %v", err)
	}
	if r != RotationR180 {
		t.Fatalf("got %v, want R180", r)
	}
}

func TestFileFormatVersionOrdering(t *testing.T) {
	a, _ := FileFormatVersionFromLetter("A", 0)
	c, _ := FileFormatVersionFromLetter("c", 0)
	if !a.Less(c) {
		t.Fatalf("expected A < C")
	}
}
