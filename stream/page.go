package stream

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/futuredata"
	"github.com/orcadtools/schemparse/model"
	"github.com/orcadtools/schemparse/parseerr"
	"github.com/orcadtools/schemparse/prefix"
	"github.com/orcadtools/schemparse/record"
)

// ReadPage decodes one Pages/* stream: the most intricate record in
// the corpus (spec.md §4.6, "Page reader is the most intricate
// composite"; grounded directly on original_source/src/Parser.cpp
// Parser::parsePage).
func ReadPage(d *datastream.DataStream, version enums.FileFormatVersion, textFontCount int) (*model.Page, error) {
	ft := futuredata.New()

	if _, err := d.ReadRaw(21); err != nil {
		return nil, err
	}
	if _, err := prefix.ReadPreamble(d); err != nil {
		return nil, err
	}

	name, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	pageSize, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	createDateTime, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	modifyDateTime, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(16); err != nil {
		return nil, err
	}
	width, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	height, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	pinToPin, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(2); err != nil {
		return nil, err
	}
	horizontalCount, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	verticalCount, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(2); err != nil {
		return nil, err
	}
	horizontalWidth, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	verticalWidth, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(48); err != nil {
		return nil, err
	}
	horizontalChar, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(4); err != nil {
		return nil, err
	}
	horizontalAscending, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	verticalChar, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if _, err := d.ReadRaw(4); err != nil {
		return nil, err
	}
	verticalAscending, err := d.ReadU32()
	if err != nil {
		return nil, err
	}

	flags := make([]uint32, 8)
	for i := range flags {
		v, err := d.ReadU32()
		if err != nil {
			return nil, err
		}
		flags[i] = v
	}

	page := &model.Page{
		Name: name, PageSize: pageSize,
		CreateDateTime: createDateTime, ModifyDateTime: modifyDateTime,
		Width: width, Height: height, PinToPin: pinToPin,
		HorizontalCount: horizontalCount, VerticalCount: verticalCount,
		HorizontalWidth: horizontalWidth, VerticalWidth: verticalWidth,
		HorizontalChar: horizontalChar, HorizontalAscending: horizontalAscending,
		VerticalChar: verticalChar, VerticalAscending: verticalAscending,
		IsMetric: flags[0] != 0, BorderDisplayed: flags[1] != 0, BorderPrinted: flags[2] != 0,
		GridRefDisplayed: flags[3] != 0, GridRefPrinted: flags[4] != 0,
		TitleblockDisplayed: flags[5] != 0, TitleblockPrinted: flags[6] != 0,
		AnsiGridRefs: flags[7] != 0,
	}

	lenA, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	for i := uint16(0); i < lenA; i++ {
		if _, err := d.ReadRaw(8); err != nil {
			return nil, err
		}
	}

	len0, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	for i := uint16(0); i < len0; i++ {
		if _, err := d.ReadRaw(32); err != nil {
			return nil, err
		}
	}

	if _, err := d.ReadRaw(2); err != nil {
		return nil, err
	}

	len1, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	for i := uint16(0); i < len1; i++ {
		labelName, err := d.ReadStringZeroTerminated()
		if err != nil {
			return nil, err
		}
		if _, err := d.ReadRaw(4); err != nil {
			return nil, err
		}
		page.Labels = append(page.Labels, labelName)
	}

	if err := readPageRecords(d, ft, version, textFontCount, page); err != nil {
		return nil, err
	}

	if err := readPagePlaceholderRecords(d, ft, version, textFontCount, page); err != nil {
		return nil, err
	}

	if _, err := d.ReadRaw(10); err != nil {
		return nil, err
	}

	if err := readPageRecords(d, ft, version, textFontCount, page); err != nil {
		return nil, err
	}

	if !d.IsEOF() {
		return nil, &parseerr.InvariantViolated{What: "expected end of page stream but did not reach it", Offset: d.CurrentOffset()}
	}
	return page, nil
}

// readPageRecords reads a `u16 count` followed by that many dispatched
// records, routing each into the matching Page slice by tag.
func readPageRecords(d *datastream.DataStream, ft *futuredata.Tracker, version enums.FileFormatVersion, textFontCount int, page *model.Page) error {
	count, err := d.ReadU16()
	if err != nil {
		return err
	}
	for i := uint16(0); i < count; i++ {
		rec, err := record.Dispatch(d, ft, version, textFontCount)
		if err != nil {
			return err
		}
		routePageRecord(page, rec)
	}
	return nil
}

// readPagePlaceholderRecords implements the Page.len3 tail: its first
// iteration replaces the usual {type-prefix, preamble, record} triple
// with 47 opaque bytes and the synthetic VeryLongPlaceholder tag
// (spec.md §4.6 / §9(d)), every later iteration dispatches normally.
func readPagePlaceholderRecords(d *datastream.DataStream, ft *futuredata.Tracker, version enums.FileFormatVersion, textFontCount int, page *model.Page) error {
	count, err := d.ReadU16()
	if err != nil {
		return err
	}
	for i := uint16(0); i < count; i++ {
		if i == 0 {
			if _, err := d.ReadRaw(47); err != nil {
				return err
			}
			page.Graphics = append(page.Graphics, &record.Record{Tag: enums.VeryLongPlaceholder()})
			continue
		}
		rec, err := record.Dispatch(d, ft, version, textFontCount)
		if err != nil {
			return err
		}
		routePageRecord(page, rec)
	}
	return nil
}

func routePageRecord(page *model.Page, rec *record.Record) {
	switch rec.Tag {
	case enums.StructureWireScalar:
		page.Wires = append(page.Wires, rec.WireScalar)
	case enums.StructurePartInst:
		page.Parts = append(page.Parts, rec.PartInst)
	case enums.StructureAlias:
		page.Aliases = append(page.Aliases, rec.Alias)
	case enums.StructureBusEntry:
		page.BusEntries = append(page.BusEntries, rec.BusEntry)
	default:
		page.Graphics = append(page.Graphics, rec)
	}
}
