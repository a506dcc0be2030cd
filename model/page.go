package model

import "github.com/orcadtools/schemparse/record"

// Page is one schematic page, built from a Pages/* stream (spec.md §4.6,
// "Page reader is the most intricate composite").
type Page struct {
	Name                string
	PageSize            string
	CreateDateTime      uint32
	ModifyDateTime      uint32
	Width, Height       uint32
	PinToPin            uint32
	HorizontalCount     uint16
	VerticalCount       uint16
	HorizontalWidth     uint32
	VerticalWidth       uint32
	HorizontalChar      uint32
	HorizontalAscending uint32
	VerticalChar        uint32
	VerticalAscending   uint32
	IsMetric            bool
	BorderDisplayed     bool
	BorderPrinted       bool
	GridRefDisplayed    bool
	GridRefPrinted      bool
	TitleblockDisplayed bool
	TitleblockPrinted   bool
	AnsiGridRefs        bool

	Labels     []string // names from the page's len1 tail section; see stream.ReadPage
	Wires      []*record.WireScalar
	Parts      []*record.PartInst
	Aliases    []*record.Alias
	BusEntries []*record.BusEntry
	Graphics   []*record.Record
}

// Hierarchy is a schematic's optional hierarchy tree, built from a
// Hierarchy.bin stream (spec.md §6, "Hierarchy/Hierarchy.bin?").
type Hierarchy struct {
	Entries []*record.SthInHierarchy1
}

// Schematic is one schematic view (.DSN/.DBK root object), built from a
// Views/<schematic>/Schematic.bin stream plus its optional Hierarchy and
// Pages (spec.md §6).
type Schematic struct {
	Name      string
	Hierarchy *Hierarchy
	Pages     []*Page
}
