// Package geometry implements the leaf shape readers (spec.md component
// C5): Rect, Line, Arc, Ellipse, Polygon, Polyline, Bezier, Bitmap,
// CommentText, and SymbolVector, plus the GeometrySpecification list that
// holds them.
package geometry

import "github.com/orcadtools/schemparse/enums"

// Point is a signed 2D coordinate pair, the unit every geometry primitive
// is expressed in.
type Point struct {
	X, Y int32
}

// StyleAttrs holds the optional style fields a primitive may carry.
// Fields a primitive's layout omits keep their DefaultStyleAttrs value
// (spec.md §4.5).
type StyleAttrs struct {
	LineStyle  enums.LineStyle
	LineWidth  enums.LineWidth
	FillStyle  enums.FillStyle
	HatchStyle enums.HatchStyle
	Color      enums.Color
}

// DefaultStyleAttrs supplies the style fields a primitive's layout does
// not carry (Line, Arc, Polyline and Bezier take their fill and hatch
// from it).
func DefaultStyleAttrs() StyleAttrs {
	return StyleAttrs{
		LineStyle:  enums.LineStyleSolid,
		LineWidth:  enums.LineWidthDefault,
		FillStyle:  enums.FillStyleNone,
		HatchStyle: enums.HatchStyleNotValid,
		Color:      enums.ColorBlack,
	}
}

// Rect is an axis-aligned rectangle primitive.
type Rect struct {
	P1, P2 Point
	Style  StyleAttrs
}

// Line is a straight two-point stroke primitive.
type Line struct {
	P1, P2 Point
	Style  StyleAttrs
}

// Arc is a circular arc bounded by a box, with explicit start/end points.
type Arc struct {
	BoundsP1, BoundsP2 Point
	Start, End         Point
	Style              StyleAttrs
}

// Ellipse is an axis-aligned ellipse bounded by a box.
type Ellipse struct {
	P1, P2 Point
	Style  StyleAttrs
}

// Polygon is a closed, filled multi-point shape.
type Polygon struct {
	Points []Point
	Style  StyleAttrs
}

// Polyline is an open multi-point stroke.
type Polyline struct {
	Points []Point
	Style  StyleAttrs
}

// Bezier is a cubic curve defined by its control points.
type Bezier struct {
	Points []Point
	Style  StyleAttrs
}

// Bitmap is a raw raster image bounded by a box.
type Bitmap struct {
	P1, P2 Point
	Data   []byte
}

// CommentText is free-standing annotated text, referencing the
// containing library's text-font table by index.
type CommentText struct {
	Position    Point
	TextFontIdx uint32
	Color       enums.Color
	Rotation    enums.Rotation
	Text        string
}

// SymbolVector is a reusable named sub-drawing: a local origin, a
// repeated list of nested primitives, and a fixed 12-byte tail
// (spec.md §4.5).
type SymbolVector struct {
	LocX, LocY int16
	Name       string
	Primitives []Primitive
}

// symbolVectorTail is the fixed 12 bytes every SymbolVector ends with.
var symbolVectorTail = []byte{0x00, 0x00, 0x00, 0x00, 0x32, 0x00, 0x32, 0x00, 0x00, 0x00, 0x02, 0x00}

// Primitive is any one decoded leaf shape, tagged by its enums.Primitive
// kind so callers can switch on Kind without a type assertion chain.
type Primitive struct {
	Kind        enums.Primitive
	Rect        *Rect
	Line        *Line
	Arc         *Arc
	Ellipse     *Ellipse
	Polygon     *Polygon
	Polyline    *Polyline
	Bezier      *Bezier
	Bitmap      *Bitmap
	CommentText *CommentText
	Vector      *SymbolVector
}
