package enums

import (
	"strings"

	"github.com/orcadtools/schemparse/parseerr"
)

// ComponentType names an entry in a Graphics or Symbols Types list
// (spec.md §3, "graphics- and symbols-Type lists").
type ComponentType uint16

const (
	ComponentTypeUndefined ComponentType = iota
	ComponentTypeGraphic
	ComponentTypeSymbol
	ComponentTypeTitleBlock
	ComponentTypeBorder
	ComponentTypeStampSymbol
)

var componentTypeNames = map[ComponentType]string{
	ComponentTypeUndefined:   "Undefined",
	ComponentTypeGraphic:     "Graphic",
	ComponentTypeSymbol:      "Symbol",
	ComponentTypeTitleBlock:  "TitleBlock",
	ComponentTypeBorder:      "Border",
	ComponentTypeStampSymbol: "StampSymbol",
}

// ComponentTypeFromTag is the total conversion from a raw u16 kind.
func ComponentTypeFromTag(raw uint16, offset int) (ComponentType, error) {
	c := ComponentType(raw)
	if _, ok := componentTypeNames[c]; !ok {
		return 0, &parseerr.UnknownEnumValue{Kind: "ComponentType", Raw: uint32(raw), Offset: offset}
	}
	return c, nil
}

func (c ComponentType) Raw() uint16 { return uint16(c) }

func (c ComponentType) String() string {
	if n, ok := componentTypeNames[c]; ok {
		return n
	}
	return "ComponentType(unknown)"
}

// FileType classifies an input container by its file-name extension
// (spec.md §6).
type FileType uint8

const (
	FileTypeLibrary FileType = iota + 1
	FileTypeSchematic
)

var fileTypeNames = map[FileType]string{
	FileTypeLibrary:   "Library",
	FileTypeSchematic: "Schematic",
}

// FileTypeFromExtension classifies a case-insensitive file extension
// (with or without a leading dot). Unknown extensions fail with
// parseerr.UnknownFileKind, matching spec.md §6's "fails with
// UnknownFileKind" requirement rather than a generic UnknownEnumValue.
func FileTypeFromExtension(ext string) (FileType, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "olb", "obk":
		return FileTypeLibrary, nil
	case "dsn", "dbk":
		return FileTypeSchematic, nil
	default:
		return 0, &parseerr.UnknownFileKind{Extension: ext}
	}
}

func (f FileType) String() string {
	if n, ok := fileTypeNames[f]; ok {
		return n
	}
	return "FileType(unknown)"
}

// FileFormatVersion selects layout variants inside records (spec.md §3).
// Versions are ordered A < B < C; C is the default when unspecified.
type FileFormatVersion uint8

const (
	FileFormatVersionUnknown FileFormatVersion = iota
	FileFormatVersionA
	FileFormatVersionB
	FileFormatVersionC
)

var fileFormatVersionNames = map[FileFormatVersion]string{
	FileFormatVersionUnknown: "Unknown",
	FileFormatVersionA:       "A",
	FileFormatVersionB:       "B",
	FileFormatVersionC:       "C",
}

// FileFormatVersionFromLetter is the total conversion from the single
// letter ("A", "B", "C") recorded alongside a stream.
func FileFormatVersionFromLetter(letter string, offset int) (FileFormatVersion, error) {
	switch strings.ToUpper(letter) {
	case "A":
		return FileFormatVersionA, nil
	case "B":
		return FileFormatVersionB, nil
	case "C":
		return FileFormatVersionC, nil
	default:
		return 0, &parseerr.UnknownEnumValue{Kind: "FileFormatVersion", Raw: uint32(len(letter)), Offset: offset}
	}
}

// Less reports whether v precedes other in the A < B < C ordering.
func (v FileFormatVersion) Less(other FileFormatVersion) bool {
	return v < other
}

func (v FileFormatVersion) String() string {
	if n, ok := fileFormatVersionNames[v]; ok {
		return n
	}
	return "FileFormatVersion(unknown)"
}
