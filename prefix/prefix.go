// Package prefix implements the record header forms that precede nested
// records (spec.md component C3): the short/long/standard prefix forms,
// the preamble magic, and the primitive prefix used inside a geometry
// context.
package prefix

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/parseerr"
)

// Magic is the four-byte preamble marker required at every preamble
// (spec.md §3 invariants).
var Magic = []byte{0xFF, 0xE4, 0x5C, 0x39}

// NameValuePair is one (name_idx, value_idx) entry in a short prefix's
// property list.
type NameValuePair struct {
	NameIdx  uint32
	ValueIdx uint32
}

// ShortPrefix is the innermost prefix form shared by the long and
// standard forms (spec.md §4.3).
type ShortPrefix struct {
	Tag          enums.Structure
	RawTag       byte
	LengthOrLock uint32 // observed 0x0B (unlocked) or 0x1E (locked); other values are accepted and stored as read, with no diagnostic recorded.
	Reserved     [4]byte
	TagRep       byte
	Size         int16
	Pairs        []NameValuePair
}

// Locked reports whether LengthOrLock carries the observed "locked"
// marker. Values other than 0x0B/0x1E are neither locked nor unlocked by
// any known rule (spec.md §9 open question (a)); callers should not infer
// anything from Locked() returning false for those.
func (p *ShortPrefix) Locked() bool { return p.LengthOrLock == 0x1E }

// ReadShortPrefix reads a short-form prefix, rejecting a repeated-tag
// mismatch with parseerr.TagMismatch. size == -1 is treated identically
// to size == 0 per spec.md §4.3 (observed only for PinIdxMapping,
// Properties, SymbolDisplayProp).
func ReadShortPrefix(d *datastream.DataStream) (*ShortPrefix, error) {
	off := d.CurrentOffset()
	rawTag, err := d.ReadU8()
	if err != nil {
		return nil, err
	}
	tag, err := enums.StructureFromTag(rawTag, off)
	if err != nil {
		return nil, err
	}
	lengthOrLock, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	var reserved [4]byte
	for i := range reserved {
		b, err := d.ReadU8()
		if err != nil {
			return nil, err
		}
		reserved[i] = b
	}
	tagRep, err := d.ReadU8()
	if err != nil {
		return nil, err
	}
	if tagRep != rawTag {
		return nil, &parseerr.TagMismatch{Offset: off, First: rawTag, Repeat: tagRep}
	}
	size, err := d.ReadI16()
	if err != nil {
		return nil, err
	}
	p := &ShortPrefix{Tag: tag, RawTag: rawTag, LengthOrLock: lengthOrLock, Reserved: reserved, TagRep: tagRep, Size: size}
	if size > 0 {
		p.Pairs = make([]NameValuePair, 0, size)
		for i := int16(0); i < size; i++ {
			nameIdx, err := d.ReadU32()
			if err != nil {
				return nil, err
			}
			valueIdx, err := d.ReadU32()
			if err != nil {
				return nil, err
			}
			p.Pairs = append(p.Pairs, NameValuePair{NameIdx: nameIdx, ValueIdx: valueIdx})
		}
	}
	return p, nil
}

// LongPrefix is the outer prefix form, wrapping a short-form prefix whose
// tag must equal the outer tag (spec.md §4.3).
type LongPrefix struct {
	Tag   byte
	Short *ShortPrefix
}

// ReadLongPrefix reads a long-form (outer) prefix.
func ReadLongPrefix(d *datastream.DataStream) (*LongPrefix, error) {
	off := d.CurrentOffset()
	tag, err := d.ReadU8()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(2); err != nil { // reserved[2]
		return nil, err
	}
	if _, err := d.ReadRaw(6); err != nil { // zeros[6]
		return nil, err
	}
	short, err := ReadShortPrefix(d)
	if err != nil {
		return nil, err
	}
	if short.RawTag != tag {
		return nil, &parseerr.TagMismatch{Offset: off, First: tag, Repeat: short.RawTag}
	}
	return &LongPrefix{Tag: tag, Short: short}, nil
}

// StandardPrefix is the most common outer prefix form. ByteOffset is the
// distance from the end of the short-form to the start of the next
// standard prefix at the same nesting level; several record readers
// (notably WireScalar) branch on its value (spec.md §4.3, §4.6).
type StandardPrefix struct {
	Tag        byte
	ByteOffset uint32
	Short      *ShortPrefix
}

// ReadStandardPrefix reads a standard-form outer prefix.
func ReadStandardPrefix(d *datastream.DataStream) (*StandardPrefix, error) {
	tag, err := d.ReadU8()
	if err != nil {
		return nil, err
	}
	byteOffset, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(4); err != nil { // zeros[4]
		return nil, err
	}
	short, err := ReadShortPrefix(d)
	if err != nil {
		return nil, err
	}
	return &StandardPrefix{Tag: tag, ByteOffset: byteOffset, Short: short}, nil
}

// Preamble is the four-byte magic marker, optionally followed by a
// length-prefixed opaque lock-data tail.
type Preamble struct {
	LockDataLen uint32
	LockData    []byte
}

// ReadPreamble reads the magic, the following u32 "optional length", and
// that many bytes of opaque lock data (zero when the length is zero),
// returning the optional length (spec.md §4.3).
func ReadPreamble(d *datastream.DataStream) (*Preamble, error) {
	if err := d.AssumeBytes(Magic); err != nil {
		return nil, err
	}
	length, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	data, err := d.ReadRaw(int(length))
	if err != nil {
		return nil, err
	}
	return &Preamble{LockDataLen: length, LockData: data}, nil
}

// requiresPreamble is the static table from spec.md §4.3. Structures not
// listed default to false: the table names only the interesting cases the
// corpus actually exercises for the documented ambiguity.
var requiresPreamble = map[enums.Structure]bool{
	enums.StructureProperties:        true,
	enums.StructureSymbolPinScalar:   true,
	enums.StructureT0x1f:             true,
	enums.StructurePinIdxMapping:     true,
	enums.StructureOffPageSymbol:     true,
	enums.StructureSymbolDisplayProp: true,

	enums.StructureGeoDefinition:    false,
	enums.StructureSymbolPinBus:     false,
	enums.StructureGlobalSymbol:     false,
	enums.StructurePortSymbol:       false,
	enums.StructureSymbolVector:     false,
	enums.StructureTitleBlockSymbol: false,
	enums.StructureERCSymbol:        false,
	enums.StructurePinShapeSymbol:   false,
}

// ReadConditionalPreamble consults the static per-Structure table to
// decide whether to consume a preamble before the record body, reading it
// when required.
func ReadConditionalPreamble(d *datastream.DataStream, tag enums.Structure) (*Preamble, error) {
	if !requiresPreamble[tag] {
		return nil, nil
	}
	return ReadPreamble(d)
}

// ReadPrimitivePrefix reads the { kind, 0x00, kind_rep } header preceding
// a geometry primitive, failing with parseerr.TagMismatch if the two kind
// bytes disagree.
func ReadPrimitivePrefix(d *datastream.DataStream) (enums.Primitive, error) {
	off := d.CurrentOffset()
	kindRaw, err := d.ReadU8()
	if err != nil {
		return 0, err
	}
	if _, err := d.ReadU8(); err != nil { // the fixed 0x00 byte
		return 0, err
	}
	kindRep, err := d.ReadU8()
	if err != nil {
		return 0, err
	}
	if kindRep != kindRaw {
		return 0, &parseerr.TagMismatch{Offset: off, First: kindRaw, Repeat: kindRep}
	}
	return enums.PrimitiveFromTag(kindRaw, off)
}
