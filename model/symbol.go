package model

import "github.com/orcadtools/schemparse/record"

// Symbol is one symbol definition held by a SymbolsLibrary, built from a
// Symbols/* stream (spec.md §2 C7, "Symbol" stream kind).
type Symbol struct {
	Name          string
	Properties    *record.Properties
	DisplayProps  []*record.SymbolDisplayProp
	PinsScalar    []*record.SymbolPin
	PinsBus       []*record.SymbolPin
	Vector        *record.NamedGeometry
	GlobalSymbol  *record.NamedGeometry
	PortSymbol    *record.NamedGeometry
	OffPageSymbol *record.NamedGeometry
}
