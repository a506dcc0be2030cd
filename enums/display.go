package enums

import "github.com/orcadtools/schemparse/parseerr"

// Rotation is a quarter-turn orientation, packed into 2 bits in several
// records (e.g. SymbolDisplayProp.packed, spec.md §4.6).
type Rotation uint8

const (
	RotationR0 Rotation = iota
	RotationR90
	RotationR180
	RotationR270
)

var rotationNames = map[Rotation]string{
	RotationR0:   "R0",
	RotationR90:  "R90",
	RotationR180: "R180",
	RotationR270: "R270",
}

// RotationFromBits is the total conversion from a 2-bit field. It cannot
// fail: every value 0-3 has a named variant, but it keeps the (raw,
// offset) signature of the other enum constructors for consistency.
func RotationFromBits(raw byte, offset int) (Rotation, error) {
	r := Rotation(raw & 0x3)
	if _, ok := rotationNames[r]; !ok {
		return 0, &parseerr.UnknownEnumValue{Kind: "Rotation", Raw: uint32(raw), Offset: offset}
	}
	return r, nil
}

func (r Rotation) Raw() byte { return byte(r) }

func (r Rotation) String() string {
	if n, ok := rotationNames[r]; ok {
		return n
	}
	return "Rotation(unknown)"
}

// Color is an index into the fixed system palette used throughout the
// geometry and display-property records.
type Color uint8

const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorWhite
	ColorGrey
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorLightMagenta
	ColorLightYellow
	ColorLightWhite
)

var colorNames = map[Color]string{
	ColorBlack:        "Black",
	ColorBlue:         "Blue",
	ColorGreen:        "Green",
	ColorCyan:         "Cyan",
	ColorRed:          "Red",
	ColorMagenta:      "Magenta",
	ColorBrown:        "Brown",
	ColorWhite:        "White",
	ColorGrey:         "Grey",
	ColorLightBlue:    "LightBlue",
	ColorLightGreen:   "LightGreen",
	ColorLightCyan:    "LightCyan",
	ColorLightRed:     "LightRed",
	ColorLightMagenta: "LightMagenta",
	ColorLightYellow:  "LightYellow",
	ColorLightWhite:   "LightWhite",
}

// ColorFromTag is the total conversion from a raw palette index.
func ColorFromTag(raw byte, offset int) (Color, error) {
	c := Color(raw)
	if _, ok := colorNames[c]; !ok {
		return 0, &parseerr.UnknownEnumValue{Kind: "Color", Raw: uint32(raw), Offset: offset}
	}
	return c, nil
}

func (c Color) Raw() byte { return byte(c) }

func (c Color) String() string {
	if n, ok := colorNames[c]; ok {
		return n
	}
	return "Color(unknown)"
}
