// Package record implements one reader per Structure variant (spec.md
// component C6), plus the central tag dispatcher. The dispatcher lives
// here rather than in a separate package: record bodies recurse back
// into it for nested children, and Go does not allow that recursion to
// cross a package boundary in the other direction.
package record

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/futuredata"
	"github.com/orcadtools/schemparse/geometry"
	"github.com/orcadtools/schemparse/parseerr"
	"github.com/orcadtools/schemparse/prefix"
)

// Record is a tagged sum over every Structure variant (spec.md §9,
// "Polymorphic record tree"). Exactly one non-Properties-shaped field is
// populated, selected by Tag.
type Record struct {
	Tag enums.Structure

	Properties             *Properties
	Properties2            *Properties2
	GeneralProperties      *GeneralProperties
	SymbolPinScalar        *SymbolPin
	SymbolPinBus           *SymbolPin
	PinIdxMapping          *PinIdxMapping
	SymbolDisplayProp      *SymbolDisplayProp
	GlobalSymbol           *NamedGeometry
	PortSymbol             *NamedGeometry
	OffPageSymbol          *NamedGeometry
	ERCSymbol              *NamedGeometry
	PinShapeSymbol         *NamedGeometry
	TitleBlockSymbol       *NamedGeometry
	GeoDefinition          *NamedGeometry
	SymbolVector           *NamedGeometry
	WireScalar             *WireScalar
	PartInst               *PartInst
	Alias                  *Alias
	GraphicBoxInst         *GraphicBoxInst
	GraphicCommentTextInst *geometry.CommentText
	BusEntry               *BusEntry
	T0x1f                  *T0x1f
	T0x10                  *T0x10
	SthInPages0            *SthInList
	SthInHierarchy1        *SthInHierarchy1
	TrailingProperties     *TrailingProperties
}

// envelope is the outer standard-prefix plus whether a FutureData
// checkpoint was pushed for it, threaded through to the matching close
// call.
type envelope struct {
	sp     *prefix.StandardPrefix
	pushed bool
}

// openEnvelope reads the outer standard prefix, decides the record's tag,
// and pushes a FutureData checkpoint when the prefix declares a nonzero
// byte_offset (the only length-shaped field available at this point;
// see DESIGN.md for the open-question rationale).
func openEnvelope(d *datastream.DataStream, ft *futuredata.Tracker) (*envelope, enums.Structure, error) {
	sp, err := prefix.ReadStandardPrefix(d)
	if err != nil {
		return nil, 0, err
	}
	tag := sp.Short.Tag
	env := &envelope{sp: sp}
	if sp.ByteOffset > 0 {
		ft.Push(d.CurrentOffset()+int(sp.ByteOffset), tag.String())
		env.pushed = true
	}
	if _, err := prefix.ReadConditionalPreamble(d, tag); err != nil {
		return nil, 0, err
	}
	return env, tag, nil
}

func closeEnvelope(d *datastream.DataStream, ft *futuredata.Tracker, env *envelope) error {
	if !env.pushed {
		return nil
	}
	return ft.Close(d)
}

// Dispatch reads one record's envelope and body, selecting the reader by
// the decoded Structure tag (spec.md §4.6, central dispatcher). Body
// readers that themselves contain nested records call Dispatch again,
// recursively. textFontCount is the enclosing library's text-font-table
// length, threaded down so SymbolDisplayProp can range-check
// textFontIdx against it (spec.md §3, §7; original_source/src/
// Parser.cpp:1492-1495).
func Dispatch(d *datastream.DataStream, ft *futuredata.Tracker, version enums.FileFormatVersion, textFontCount int) (*Record, error) {
	off := d.CurrentOffset()
	env, tag, err := openEnvelope(d, ft)
	if err != nil {
		return nil, err
	}
	rec := &Record{Tag: tag}
	switch tag {
	case enums.StructureProperties:
		rec.Properties, err = readProperties(d)
	case enums.StructureProperties2:
		rec.Properties2, err = readProperties2(d)
	case enums.StructureGeneralProperties:
		rec.GeneralProperties, err = readGeneralProperties(d)
	case enums.StructureSymbolPinScalar:
		rec.SymbolPinScalar, err = readSymbolPin(d)
	case enums.StructureSymbolPinBus:
		rec.SymbolPinBus, err = readSymbolPin(d)
	case enums.StructurePinIdxMapping:
		rec.PinIdxMapping, err = readPinIdxMapping(d)
	case enums.StructureSymbolDisplayProp:
		rec.SymbolDisplayProp, err = readSymbolDisplayProp(d, textFontCount)
	case enums.StructureGlobalSymbol:
		rec.GlobalSymbol, err = readNamedGeometry(d, version, enums.GeometryStructureGlobal)
	case enums.StructurePortSymbol:
		rec.PortSymbol, err = readNamedGeometry(d, version, enums.GeometryStructureSymbol)
	case enums.StructureOffPageSymbol:
		rec.OffPageSymbol, err = readNamedGeometry(d, version, enums.GeometryStructureSymbol)
	case enums.StructureERCSymbol:
		rec.ERCSymbol, err = readNamedGeometry(d, version, enums.GeometryStructureSymbol)
	case enums.StructurePinShapeSymbol:
		rec.PinShapeSymbol, err = readNamedGeometry(d, version, enums.GeometryStructureSymbol)
	case enums.StructureTitleBlockSymbol:
		rec.TitleBlockSymbol, err = readNamedGeometry(d, version, enums.GeometryStructureSymbol)
	case enums.StructureGeoDefinition:
		rec.GeoDefinition, err = readNamedGeometry(d, version, enums.GeometryStructureGlobal)
	case enums.StructureSymbolVector:
		rec.SymbolVector, err = readNamedGeometry(d, version, enums.GeometryStructureSymbol)
	case enums.StructureWireScalar:
		rec.WireScalar, err = readWireScalar(d, ft, version, textFontCount, env.sp.ByteOffset)
	case enums.StructurePartInst:
		rec.PartInst, err = readPartInst(d, ft, version, textFontCount)
	case enums.StructureAlias:
		rec.Alias, err = readAlias(d)
	case enums.StructureGraphicBoxInst:
		rec.GraphicBoxInst, err = readGraphicBoxInst(d, ft, version, textFontCount)
	case enums.StructureGraphicCommentTextInst:
		rec.GraphicCommentTextInst, err = geometry.ReadCommentText(d)
	case enums.StructureBusEntry:
		rec.BusEntry, err = readBusEntry(d)
	case enums.StructureT0x1f:
		rec.T0x1f, err = readT0x1f(d)
	case enums.StructureT0x10:
		rec.T0x10, err = readT0x10(d, ft)
	case enums.StructureSthInPages0:
		rec.SthInPages0, err = readSthInList(d, ft, version)
	case enums.StructureSthInHierarchy1:
		rec.SthInHierarchy1, err = readSthInHierarchy1(d, ft)
	case enums.StructureTrailingProperties:
		rec.TrailingProperties, err = readTrailingProperties(d, ft)
	default:
		return nil, &parseerr.UnknownStructure{Tag: env.sp.Short.RawTag, Offset: off}
	}
	if err != nil {
		return nil, err
	}
	if err := closeEnvelope(d, ft, env); err != nil {
		return nil, err
	}
	return rec, nil
}

// DispatchOneOf dispatches a record and requires its tag be one of
// allowed, failing with parseerr.UnknownStructure otherwise. Grounded on
// original_source's CommonBase.auto_read_prefixes(oneOf) accepting a set
// of valid tags at a dispatch point rather than exactly one.
func DispatchOneOf(d *datastream.DataStream, ft *futuredata.Tracker, version enums.FileFormatVersion, textFontCount int, allowed ...enums.Structure) (*Record, error) {
	off := d.CurrentOffset()
	rec, err := Dispatch(d, ft, version, textFontCount)
	if err != nil {
		return nil, err
	}
	for _, a := range allowed {
		if rec.Tag == a {
			return rec, nil
		}
	}
	return nil, &parseerr.UnknownStructure{Tag: rec.Tag.Raw(), Offset: off}
}
