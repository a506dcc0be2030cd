// Package enums implements the total tag-to-variant conversions used
// throughout the parser (spec.md component C2). Every conversion function
// here is total over its input type: an unrecognised raw value fails with
// parseerr.UnknownEnumValue rather than silently substituting a default,
// and every named variant round-trips back to its exact raw tag via the
// corresponding Raw method.
package enums

import "github.com/orcadtools/schemparse/parseerr"

// Structure is the tagged-union discriminator for a record (spec.md §3,
// "Record"). Raw tag bytes below are the values observed in the corpus;
// T0x1f and T0x10 keep the source's hex-suffixed names because no better
// name has been reverse-engineered yet.
type Structure uint8

const (
	StructureProperties Structure = iota + 1
	StructureProperties2
	StructureGeneralProperties
	StructureSymbolPinScalar
	StructureSymbolPinBus
	StructurePinIdxMapping
	StructureSymbolDisplayProp
	StructureGlobalSymbol
	StructurePortSymbol
	StructureOffPageSymbol
	StructureERCSymbol
	StructurePinShapeSymbol
	StructureWireScalar
	StructurePartInst
	StructureAlias
	StructureGraphicBoxInst
	StructureGraphicCommentTextInst
	StructureBusEntry
	StructureT0x1f
	StructureT0x10
	StructureSthInPages0
	StructureSthInHierarchy1
	StructureTrailingProperties
	StructureGeoDefinition
	StructureTitleBlockSymbol
	StructureSymbolVector
	// structureVeryLongPlaceholder is synthesised internally for the
	// Page.len3 first-iteration placeholder described in spec.md §4.6 /
	// §9(d). It owns raw tag 0x0D, so a prefix carrying 0x0D also decodes
	// to it; record.Dispatch registers no reader for it and fails with
	// UnknownStructure.
	structureVeryLongPlaceholder
)

var structureRaw = map[Structure]byte{
	StructureProperties:             0x01,
	StructureProperties2:            0x02,
	StructureGeneralProperties:      0x03,
	StructureSymbolPinScalar:        0x04,
	StructureSymbolPinBus:           0x05,
	StructurePinIdxMapping:          0x06,
	StructureSymbolDisplayProp:      0x07,
	StructureGlobalSymbol:           0x08,
	StructurePortSymbol:             0x09,
	StructureOffPageSymbol:          0x0A,
	StructureERCSymbol:              0x0B,
	StructurePinShapeSymbol:         0x0C,
	structureVeryLongPlaceholder:    0x0D,
	StructureWireScalar:             0x0E,
	StructurePartInst:               0x0F,
	StructureT0x10:                  0x10,
	StructureAlias:                  0x11,
	StructureGraphicBoxInst:         0x12,
	StructureGraphicCommentTextInst: 0x13,
	StructureBusEntry:               0x14,
	StructureSthInPages0:            0x15,
	StructureSthInHierarchy1:        0x16,
	StructureTrailingProperties:     0x17,
	StructureGeoDefinition:          0x18,
	StructureTitleBlockSymbol:       0x19,
	StructureSymbolVector:           0x1A,
	StructureT0x1f:                  0x1F,
}

var structureNames = map[Structure]string{
	StructureProperties:             "Properties",
	StructureProperties2:            "Properties2",
	StructureGeneralProperties:      "GeneralProperties",
	StructureSymbolPinScalar:        "SymbolPinScalar",
	StructureSymbolPinBus:           "SymbolPinBus",
	StructurePinIdxMapping:          "PinIdxMapping",
	StructureSymbolDisplayProp:      "SymbolDisplayProp",
	StructureGlobalSymbol:           "GlobalSymbol",
	StructurePortSymbol:             "PortSymbol",
	StructureOffPageSymbol:          "OffPageSymbol",
	StructureERCSymbol:              "ERCSymbol",
	StructurePinShapeSymbol:         "PinShapeSymbol",
	structureVeryLongPlaceholder:    "VeryLongPlaceholder",
	StructureWireScalar:             "WireScalar",
	StructurePartInst:               "PartInst",
	StructureT0x10:                  "T0x10",
	StructureAlias:                  "Alias",
	StructureGraphicBoxInst:         "GraphicBoxInst",
	StructureGraphicCommentTextInst: "GraphicCommentTextInst",
	StructureBusEntry:               "BusEntry",
	StructureSthInPages0:            "SthInPages0",
	StructureSthInHierarchy1:        "SthInHierarchy1",
	StructureTrailingProperties:     "TrailingProperties",
	StructureGeoDefinition:          "GeoDefinition",
	StructureTitleBlockSymbol:       "TitleBlockSymbol",
	StructureSymbolVector:           "SymbolVector",
	StructureT0x1f:                  "T0x1f",
}

var rawToStructure = func() map[byte]Structure {
	m := make(map[byte]Structure, len(structureRaw))
	for s, r := range structureRaw {
		m[r] = s
	}
	return m
}()

// StructureFromTag is the total conversion from a raw tag byte to its
// named Structure variant.
func StructureFromTag(raw byte, offset int) (Structure, error) {
	s, ok := rawToStructure[raw]
	if !ok {
		return 0, &parseerr.UnknownEnumValue{Kind: "Structure", Raw: uint32(raw), Offset: offset}
	}
	return s, nil
}

// Raw returns the exact tag byte the Structure was decoded from.
func (s Structure) Raw() byte {
	return structureRaw[s]
}

// VeryLongPlaceholder returns the synthetic tag used for the
// Page.len3 first-iteration placeholder (spec.md §4.6 / §9(d)).
// StructureFromTag also returns it for raw tag 0x0D; callers that need
// to recognise it use this accessor rather than a raw literal.
func VeryLongPlaceholder() Structure { return structureVeryLongPlaceholder }

func (s Structure) String() string {
	if n, ok := structureNames[s]; ok {
		return n
	}
	return "Structure(unknown)"
}
