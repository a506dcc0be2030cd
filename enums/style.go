package enums

import "github.com/orcadtools/schemparse/parseerr"

// LineStyle is the stroke pattern of a geometry primitive's outline.
// LineStyleSolid is the default when a primitive omits the field
// (spec.md §4.5).
type LineStyle uint8

const (
	LineStyleSolid LineStyle = iota
	LineStyleDash
	LineStyleDot
	LineStyleDashDot
	LineStyleDashDotDot
)

var lineStyleNames = map[LineStyle]string{
	LineStyleSolid:      "Solid",
	LineStyleDash:       "Dash",
	LineStyleDot:        "Dot",
	LineStyleDashDot:    "DashDot",
	LineStyleDashDotDot: "DashDotDot",
}

// LineStyleFromTag is the total conversion from a raw style byte.
func LineStyleFromTag(raw byte, offset int) (LineStyle, error) {
	s := LineStyle(raw)
	if _, ok := lineStyleNames[s]; !ok {
		return 0, &parseerr.UnknownEnumValue{Kind: "LineStyle", Raw: uint32(raw), Offset: offset}
	}
	return s, nil
}

func (s LineStyle) Raw() byte { return byte(s) }

func (s LineStyle) String() string {
	if n, ok := lineStyleNames[s]; ok {
		return n
	}
	return "LineStyle(unknown)"
}

// LineWidth is the stroke weight of a geometry primitive's outline.
// LineWidthDefault is the default when a primitive omits the field.
type LineWidth uint8

const (
	LineWidthThin LineWidth = iota
	LineWidthDefault
	LineWidthMedium
	LineWidthWide
)

var lineWidthNames = map[LineWidth]string{
	LineWidthThin:    "Thin",
	LineWidthDefault: "Default",
	LineWidthMedium:  "Medium",
	LineWidthWide:    "Wide",
}

func LineWidthFromTag(raw byte, offset int) (LineWidth, error) {
	w := LineWidth(raw)
	if _, ok := lineWidthNames[w]; !ok {
		return 0, &parseerr.UnknownEnumValue{Kind: "LineWidth", Raw: uint32(raw), Offset: offset}
	}
	return w, nil
}

func (w LineWidth) Raw() byte { return byte(w) }

func (w LineWidth) String() string {
	if n, ok := lineWidthNames[w]; ok {
		return n
	}
	return "LineWidth(unknown)"
}

// FillStyle is the interior fill treatment of a closed geometry
// primitive. FillStyleNone is the default when a primitive omits the
// field.
type FillStyle uint8

const (
	FillStyleNone FillStyle = iota
	FillStyleSolid
	FillStyleHatch
)

var fillStyleNames = map[FillStyle]string{
	FillStyleNone:  "None",
	FillStyleSolid: "Solid",
	FillStyleHatch: "Hatch",
}

func FillStyleFromTag(raw byte, offset int) (FillStyle, error) {
	f := FillStyle(raw)
	if _, ok := fillStyleNames[f]; !ok {
		return 0, &parseerr.UnknownEnumValue{Kind: "FillStyle", Raw: uint32(raw), Offset: offset}
	}
	return f, nil
}

func (f FillStyle) Raw() byte { return byte(f) }

func (f FillStyle) String() string {
	if n, ok := fillStyleNames[f]; ok {
		return n
	}
	return "FillStyle(unknown)"
}

// HatchStyle further qualifies FillStyleHatch. HatchStyleNotValid is the
// default when a primitive's fill is not FillStyleHatch.
type HatchStyle uint8

const (
	HatchStyleNotValid HatchStyle = iota
	HatchStyleHorizontal
	HatchStyleVertical
	HatchStyleDiagonalUp
	HatchStyleDiagonalDown
	HatchStyleCross
	HatchStyleDiagonalCross
)

var hatchStyleNames = map[HatchStyle]string{
	HatchStyleNotValid:      "NotValid",
	HatchStyleHorizontal:    "Horizontal",
	HatchStyleVertical:      "Vertical",
	HatchStyleDiagonalUp:    "DiagonalUp",
	HatchStyleDiagonalDown:  "DiagonalDown",
	HatchStyleCross:         "Cross",
	HatchStyleDiagonalCross: "DiagonalCross",
}

func HatchStyleFromTag(raw byte, offset int) (HatchStyle, error) {
	h := HatchStyle(raw)
	if _, ok := hatchStyleNames[h]; !ok {
		return 0, &parseerr.UnknownEnumValue{Kind: "HatchStyle", Raw: uint32(raw), Offset: offset}
	}
	return h, nil
}

func (h HatchStyle) Raw() byte { return byte(h) }

func (h HatchStyle) String() string {
	if n, ok := hatchStyleNames[h]; ok {
		return n
	}
	return "HatchStyle(unknown)"
}
