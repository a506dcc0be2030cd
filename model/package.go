package model

import "github.com/orcadtools/schemparse/record"

// Package is one package (footprint binding) held by a Library, built
// from a Packages/* stream (spec.md §2 C7, "Package" stream kind).
// Properties2/GeneralProperties/PinIdxMappings are the well-known
// record shapes routed out of the raw sequences by tag; Properties and
// Primitives retain every record in original stream order, including
// any tag not recognised by that routing (original_source/src/Streams/
// StreamPackage.cpp: "properties" and "primitives" vectors).
type Package struct {
	Name              string
	Properties2       *record.Properties2
	GeneralProperties *record.GeneralProperties
	PinIdxMappings    []*record.PinIdxMapping

	PropertyRecords []*record.Record
	Primitives      []*record.Record
	Trailing        *record.T0x1f
}
