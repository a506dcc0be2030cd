package stream

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/futuredata"
	"github.com/orcadtools/schemparse/model"
	"github.com/orcadtools/schemparse/parseerr"
	"github.com/orcadtools/schemparse/record"
)

// propertiesPrimitives reads the shape shared by Package and Symbol
// streams: `lenProperties: u16, lenProperties × (properties record,
// lenPrimitives: u16, lenPrimitives × primitive record), trailing
// T0x1f record`, then asserts EOF (original_source/src/Streams/
// StreamPackage.cpp).
func propertiesPrimitives(d *datastream.DataStream, ft *futuredata.Tracker, version enums.FileFormatVersion, textFontCount int) (properties, primitives []*record.Record, trailing *record.T0x1f, err error) {
	lenProperties, err := d.ReadU16()
	if err != nil {
		return nil, nil, nil, err
	}
	for i := uint16(0); i < lenProperties; i++ {
		prop, err := record.Dispatch(d, ft, version, textFontCount)
		if err != nil {
			return nil, nil, nil, err
		}
		properties = append(properties, prop)

		lenPrimitives, err := d.ReadU16()
		if err != nil {
			return nil, nil, nil, err
		}
		for j := uint16(0); j < lenPrimitives; j++ {
			prim, err := record.Dispatch(d, ft, version, textFontCount)
			if err != nil {
				return nil, nil, nil, err
			}
			primitives = append(primitives, prim)
		}
	}

	t0x1f, err := record.DispatchOneOf(d, ft, version, textFontCount, enums.StructureT0x1f)
	if err != nil {
		return nil, nil, nil, err
	}
	if !d.IsEOF() {
		return nil, nil, nil, &parseerr.InvariantViolated{What: "expected end of package/symbol stream but did not reach it", Offset: d.CurrentOffset()}
	}
	return properties, primitives, t0x1f.T0x1f, nil
}

// ReadPackage decodes a Packages/* stream into a model.Package,
// routing the well-known property/primitive record shapes into their
// typed fields and keeping every record (including any unrecognised
// tag) in PropertyRecords/Primitives for completeness.
func ReadPackage(d *datastream.DataStream, version enums.FileFormatVersion, textFontCount int) (*model.Package, error) {
	ft := futuredata.New()
	properties, primitives, trailing, err := propertiesPrimitives(d, ft, version, textFontCount)
	if err != nil {
		return nil, err
	}
	pkg := &model.Package{PropertyRecords: properties, Primitives: primitives, Trailing: trailing}
	for _, rec := range properties {
		switch rec.Tag {
		case enums.StructureProperties2:
			pkg.Properties2 = rec.Properties2
			pkg.Name = rec.Properties2.Name
		case enums.StructureGeneralProperties:
			pkg.GeneralProperties = rec.GeneralProperties
		}
	}
	for _, rec := range primitives {
		if rec.Tag == enums.StructurePinIdxMapping {
			pkg.PinIdxMappings = append(pkg.PinIdxMappings, rec.PinIdxMapping)
		}
	}
	return pkg, nil
}

// ReadSymbol decodes a Symbols/* stream into a model.Symbol using the
// same properties/primitives/trailing shape as ReadPackage (the
// original source's parseSymbol() reuses the Package reader wholesale
// — "Results are only stored in packages for testing purposes" — so
// the symbol-specific record tags are routed out here instead).
func ReadSymbol(d *datastream.DataStream, version enums.FileFormatVersion, textFontCount int) (*model.Symbol, error) {
	ft := futuredata.New()
	properties, primitives, _, err := propertiesPrimitives(d, ft, version, textFontCount)
	if err != nil {
		return nil, err
	}
	sym := &model.Symbol{}
	for _, rec := range properties {
		if rec.Tag == enums.StructureProperties {
			sym.Properties = rec.Properties
			sym.Name = rec.Properties.Name
		}
	}
	for _, rec := range primitives {
		switch rec.Tag {
		case enums.StructureSymbolDisplayProp:
			sym.DisplayProps = append(sym.DisplayProps, rec.SymbolDisplayProp)
		case enums.StructureSymbolPinScalar:
			sym.PinsScalar = append(sym.PinsScalar, rec.SymbolPinScalar)
		case enums.StructureSymbolPinBus:
			sym.PinsBus = append(sym.PinsBus, rec.SymbolPinBus)
		case enums.StructureSymbolVector:
			sym.Vector = rec.SymbolVector
		case enums.StructureGlobalSymbol:
			sym.GlobalSymbol = rec.GlobalSymbol
		case enums.StructurePortSymbol:
			sym.PortSymbol = rec.PortSymbol
		case enums.StructureOffPageSymbol:
			sym.OffPageSymbol = rec.OffPageSymbol
		}
	}
	return sym, nil
}
