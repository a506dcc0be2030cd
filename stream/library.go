package stream

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/model"
)

// LibraryGlobals is the decoded content of Library.bin: the
// index-addressed string table every later StrLst-index field resolves
// against, plus the library-wide text-font table (spec.md §3,
// "Library (root)"). The exact byte shape of this stream was not
// recovered from original_source (only its consumer,
// read_type_prefix_short's `mLibrary.symbolsLibrary.strLst.at(idx)`
// lookup, was); the layout below is the simplest one consistent with
// that usage: count-prefixed string list, count-prefixed font table.
type LibraryGlobals struct {
	CodePage  uint16
	RawStrLst [][]byte
	TextFonts []model.TextFont
}

// ReadLibraryBin decodes Library.bin.
func ReadLibraryBin(d *datastream.DataStream) (*LibraryGlobals, error) {
	codePage, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	strCount, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	raw := make([][]byte, 0, strCount)
	for i := uint16(0); i < strCount; i++ {
		s, err := d.ReadStringZeroTerminated()
		if err != nil {
			return nil, err
		}
		raw = append(raw, []byte(s))
	}

	fontCount, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	fonts := make([]model.TextFont, 0, fontCount)
	for i := uint16(0); i < fontCount; i++ {
		faceName, err := d.ReadStringZeroTerminated()
		if err != nil {
			return nil, err
		}
		size, err := d.ReadU16()
		if err != nil {
			return nil, err
		}
		flags, err := d.ReadU8()
		if err != nil {
			return nil, err
		}
		fonts = append(fonts, model.TextFont{
			FaceName:  faceName,
			SizeTwips: size,
			Bold:      flags&0x01 != 0,
			Italic:    flags&0x02 != 0,
			Underline: flags&0x04 != 0,
		})
	}
	return &LibraryGlobals{CodePage: codePage, RawStrLst: raw, TextFonts: fonts}, nil
}
