package enums

import "github.com/orcadtools/schemparse/parseerr"

// Primitive is the discriminator for a leaf geometry element inside a
// Geometry specification (spec.md §2 component C5).
type Primitive uint8

const (
	PrimitiveRect Primitive = iota + 1
	PrimitiveLine
	PrimitiveArc
	PrimitiveEllipse
	PrimitivePolygon
	PrimitivePolyline
	PrimitiveBezier
	PrimitiveBitmap
	PrimitiveCommentText
	PrimitiveSymbolVector
)

var primitiveRaw = map[Primitive]byte{
	PrimitiveRect:         0x01,
	PrimitiveLine:         0x02,
	PrimitiveArc:          0x03,
	PrimitiveEllipse:      0x04,
	PrimitivePolygon:      0x05,
	PrimitivePolyline:     0x06,
	PrimitiveBezier:       0x07,
	PrimitiveBitmap:       0x08,
	PrimitiveCommentText:  0x09,
	PrimitiveSymbolVector: 0x0A,
}

var primitiveNames = map[Primitive]string{
	PrimitiveRect:         "Rect",
	PrimitiveLine:         "Line",
	PrimitiveArc:          "Arc",
	PrimitiveEllipse:      "Ellipse",
	PrimitivePolygon:      "Polygon",
	PrimitivePolyline:     "Polyline",
	PrimitiveBezier:       "Bezier",
	PrimitiveBitmap:       "Bitmap",
	PrimitiveCommentText:  "CommentText",
	PrimitiveSymbolVector: "SymbolVector",
}

var rawToPrimitive = func() map[byte]Primitive {
	m := make(map[byte]Primitive, len(primitiveRaw))
	for p, r := range primitiveRaw {
		m[r] = p
	}
	return m
}()

// PrimitiveFromTag is the total conversion from a raw kind byte to its
// named Primitive variant.
func PrimitiveFromTag(raw byte, offset int) (Primitive, error) {
	p, ok := rawToPrimitive[raw]
	if !ok {
		return 0, &parseerr.UnknownEnumValue{Kind: "Primitive", Raw: uint32(raw), Offset: offset}
	}
	return p, nil
}

// Raw returns the exact kind byte the Primitive was decoded from.
func (p Primitive) Raw() byte { return primitiveRaw[p] }

func (p Primitive) String() string {
	if n, ok := primitiveNames[p]; ok {
		return n
	}
	return "Primitive(unknown)"
}

// GeometryStructure names which containing record kind a Geometry
// specification was read for, used to pick version-dependent quirks that
// differ between symbol-owned and page-owned geometry (spec.md §4.7).
type GeometryStructure uint8

const (
	GeometryStructureSymbol GeometryStructure = iota + 1
	GeometryStructureGlobal
	GeometryStructurePage
	GeometryStructureHierarchy
)

var geometryStructureNames = map[GeometryStructure]string{
	GeometryStructureSymbol:    "Symbol",
	GeometryStructureGlobal:    "Global",
	GeometryStructurePage:      "Page",
	GeometryStructureHierarchy: "Hierarchy",
}

func (g GeometryStructure) String() string {
	if n, ok := geometryStructureNames[g]; ok {
		return n
	}
	return "GeometryStructure(unknown)"
}
