package model

import "github.com/orcadtools/schemparse/enums"

// Diagnostic is a library-wide note accumulated while assembling a
// Library: the assembler appends one for each stream that failed to
// load or parse, labelled with the error. Skipped opaque regions,
// unresolved FutureData tails and AdminData decode fallbacks are not
// recorded here. Kept as data rather than logged directly (spec.md §2
// ambient stack, "Logging").
type Diagnostic struct {
	Stream string
	Offset int
	Label  string
}

// TypeEntry is one row of a graphics- or symbols-Type list (spec.md §3).
type TypeEntry struct {
	Name string
	Kind enums.ComponentType
}

// TextFont is one entry of the library's text-font table, referenced by
// index from SymbolDisplayProp and CommentText (spec.md §9,
// "Library-wide back-references").
type TextFont struct {
	FaceName                string
	SizeTwips               uint16
	Bold, Italic, Underline bool
}

// AdminData is the library's administrative metadata stream. Fields is
// populated from the OLE property set when the stream carries one
// (SPEC_FULL.md §3); PropertySetDecoded records whether that happened.
type AdminData struct {
	Fields             map[string]string
	PropertySetDecoded bool
}

// Library is the root of the assembled object tree (spec.md §3,
// "Library (root)").
type Library struct {
	CodePage      uint16
	StrLst        *StringTable
	TextFonts     []TextFont
	Admin         *AdminData
	Cache         []byte
	NetBundleMap  []byte
	HSObjects     []byte
	DsnStream     []byte
	GraphicsTypes []TypeEntry
	SymbolsTypes  []TypeEntry

	SymbolsLibrary *SymbolsLibrary
	Packages       []*Package
	Schematics     []*Schematic

	FileCtr     int
	FileErrCtr  int
	Diagnostics []Diagnostic
}

// SymbolsLibrary is the collection of named symbol definitions a Library
// exposes for placement onto schematic pages and package pin maps
// (spec.md §2 C7, "SymbolsLibrary" stream kind).
type SymbolsLibrary struct {
	Symbols []*Symbol
}
