package record

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/geometry"
)

// NamedGeometry is a named bag of primitives (spec.md §3, "Geometry
// specification"): the shape shared by GlobalSymbol, PortSymbol,
// OffPageSymbol, ERCSymbol, PinShapeSymbol, TitleBlockSymbol,
// GeoDefinition, and the record-level SymbolVector wrapper (distinct
// from the geometry.SymbolVector leaf primitive of the same name).
type NamedGeometry struct {
	Name string
	Spec *geometry.Specification
}

func readNamedGeometry(d *datastream.DataStream, version enums.FileFormatVersion, kind enums.GeometryStructure) (*NamedGeometry, error) {
	name, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	spec, err := geometry.ReadSpecification(d, version, kind)
	if err != nil {
		return nil, err
	}
	return &NamedGeometry{Name: name, Spec: spec}, nil
}
