package prefix

import (
	"errors"
	"testing"

	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/parseerr"
)

func shortPrefixBytes(tag byte, lengthOrLock uint32, tagRep byte, size int16) []byte {
	buf := []byte{tag}
	buf = appendU32(buf, lengthOrLock)
	buf = append(buf, 0, 0, 0, 0) // reserved[4]
	buf = append(buf, tagRep)
	buf = appendI16(buf, size)
	return buf
}

func appendU32(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendI16(buf []byte, v int16) []byte {
	u := uint16(v)
	return append(buf, byte(u), byte(u>>8))
}

func TestReadShortPrefixNoPairs(t *testing.T) {
	buf := shortPrefixBytes(enums.StructureProperties.Raw(), 0x0B, enums.StructureProperties.Raw(), 0)
	d := datastream.New(buf)
	p, err := ReadShortPrefix(d)
	if err != nil {
		t.Fatalf("ReadShortPrefix: %v", err)
	}
	if p.Tag != enums.StructureProperties || p.Locked() {
		t.Fatalf("unexpected prefix: %+v", p)
	}
	if !d.IsEOF() {
		t.Fatalf("expected EOF after consuming declared fields")
	}
}

func TestReadShortPrefixNegativeSizeTreatedAsZero(t *testing.T) {
	buf := shortPrefixBytes(enums.StructurePinIdxMapping.Raw(), 0x1E, enums.StructurePinIdxMapping.Raw(), -1)
	d := datastream.New(buf)
	p, err := ReadShortPrefix(d)
	if err != nil {
		t.Fatalf("ReadShortPrefix: %v", err)
	}
	if len(p.Pairs) != 0 {
		t.Fatalf("expected no pairs for size -1, got %d", len(p.Pairs))
	}
	if !p.Locked() {
		t.Fatalf("expected locked for 0x1E")
	}
}

func TestReadShortPrefixTagMismatch(t *testing.T) {
	buf := shortPrefixBytes(enums.StructureProperties.Raw(), 0x0B, enums.StructureAlias.Raw(), 0)
	d := datastream.New(buf)
	_, err := ReadShortPrefix(d)
	var tm *parseerr.TagMismatch
	if !errors.As(err, &tm) {
		t.Fatalf("expected TagMismatch, got %v", err)
	}
}

func TestReadPreambleRoundTrip(t *testing.T) {
	buf := append([]byte{}, Magic...)
	buf = appendU32(buf, 2)
	buf = append(buf, 0xAA, 0xBB)
	d := datastream.New(buf)
	p, err := ReadPreamble(d)
	if err != nil {
		t.Fatalf("ReadPreamble: %v", err)
	}
	if p.LockDataLen != 2 || len(p.LockData) != 2 {
		t.Fatalf("unexpected preamble: %+v", p)
	}
	if !d.IsEOF() {
		t.Fatalf("expected EOF")
	}
}

func TestReadPrimitivePrefixMismatch(t *testing.T) {
	d := datastream.New([]byte{0x01, 0x00, 0x02})
	_, err := ReadPrimitivePrefix(d)
	var tm *parseerr.TagMismatch
	if !errors.As(err, &tm) {
		t.Fatalf("expected TagMismatch, got %v", err)
	}
}

func TestConditionalPreambleTable(t *testing.T) {
	if !requiresPreamble[enums.StructureProperties] {
		t.Fatalf("Properties should require a preamble")
	}
	if requiresPreamble[enums.StructureSymbolPinBus] {
		t.Fatalf("SymbolPinBus should skip the preamble")
	}
}
