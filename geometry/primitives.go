package geometry

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
)

func readPoint(d *datastream.DataStream) (Point, error) {
	x, err := d.ReadI32()
	if err != nil {
		return Point{}, err
	}
	y, err := d.ReadI32()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func readLineStyleWidthColor(d *datastream.DataStream) (enums.LineStyle, enums.LineWidth, enums.Color, error) {
	off := d.CurrentOffset()
	lsRaw, err := d.ReadU8()
	if err != nil {
		return 0, 0, 0, err
	}
	ls, err := enums.LineStyleFromTag(lsRaw, off)
	if err != nil {
		return 0, 0, 0, err
	}
	off = d.CurrentOffset()
	lwRaw, err := d.ReadU8()
	if err != nil {
		return 0, 0, 0, err
	}
	lw, err := enums.LineWidthFromTag(lwRaw, off)
	if err != nil {
		return 0, 0, 0, err
	}
	off = d.CurrentOffset()
	cRaw, err := d.ReadU8()
	if err != nil {
		return 0, 0, 0, err
	}
	c, err := enums.ColorFromTag(cRaw, off)
	if err != nil {
		return 0, 0, 0, err
	}
	return ls, lw, c, nil
}

func readFillHatch(d *datastream.DataStream) (enums.FillStyle, enums.HatchStyle, error) {
	off := d.CurrentOffset()
	fsRaw, err := d.ReadU8()
	if err != nil {
		return 0, 0, err
	}
	fs, err := enums.FillStyleFromTag(fsRaw, off)
	if err != nil {
		return 0, 0, err
	}
	off = d.CurrentOffset()
	hsRaw, err := d.ReadU8()
	if err != nil {
		return 0, 0, err
	}
	hs, err := enums.HatchStyleFromTag(hsRaw, off)
	if err != nil {
		return 0, 0, err
	}
	return fs, hs, nil
}

// ReadRect reads a closed, fillable Rect body.
func ReadRect(d *datastream.DataStream) (*Rect, error) {
	p1, err := readPoint(d)
	if err != nil {
		return nil, err
	}
	p2, err := readPoint(d)
	if err != nil {
		return nil, err
	}
	ls, lw, color, err := readLineStyleWidthColor(d)
	if err != nil {
		return nil, err
	}
	fs, hs, err := readFillHatch(d)
	if err != nil {
		return nil, err
	}
	return &Rect{P1: p1, P2: p2, Style: StyleAttrs{LineStyle: ls, LineWidth: lw, FillStyle: fs, HatchStyle: hs, Color: color}}, nil
}

// ReadLine reads an open, strokeless-fill Line body.
func ReadLine(d *datastream.DataStream) (*Line, error) {
	p1, err := readPoint(d)
	if err != nil {
		return nil, err
	}
	p2, err := readPoint(d)
	if err != nil {
		return nil, err
	}
	ls, lw, color, err := readLineStyleWidthColor(d)
	if err != nil {
		return nil, err
	}
	style := DefaultStyleAttrs()
	style.LineStyle, style.LineWidth, style.Color = ls, lw, color
	return &Line{P1: p1, P2: p2, Style: style}, nil
}

// ReadArc reads an Arc body: a bounding box plus explicit start/end
// points.
func ReadArc(d *datastream.DataStream) (*Arc, error) {
	b1, err := readPoint(d)
	if err != nil {
		return nil, err
	}
	b2, err := readPoint(d)
	if err != nil {
		return nil, err
	}
	start, err := readPoint(d)
	if err != nil {
		return nil, err
	}
	end, err := readPoint(d)
	if err != nil {
		return nil, err
	}
	ls, lw, color, err := readLineStyleWidthColor(d)
	if err != nil {
		return nil, err
	}
	style := DefaultStyleAttrs()
	style.LineStyle, style.LineWidth, style.Color = ls, lw, color
	return &Arc{BoundsP1: b1, BoundsP2: b2, Start: start, End: end, Style: style}, nil
}

// ReadEllipse reads a closed, fillable Ellipse body.
func ReadEllipse(d *datastream.DataStream) (*Ellipse, error) {
	p1, err := readPoint(d)
	if err != nil {
		return nil, err
	}
	p2, err := readPoint(d)
	if err != nil {
		return nil, err
	}
	ls, lw, color, err := readLineStyleWidthColor(d)
	if err != nil {
		return nil, err
	}
	fs, hs, err := readFillHatch(d)
	if err != nil {
		return nil, err
	}
	return &Ellipse{P1: p1, P2: p2, Style: StyleAttrs{LineStyle: ls, LineWidth: lw, FillStyle: fs, HatchStyle: hs, Color: color}}, nil
}

func readPoints(d *datastream.DataStream) ([]Point, error) {
	count, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	pts := make([]Point, 0, count)
	for i := uint16(0); i < count; i++ {
		p, err := readPoint(d)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// ReadPolygon reads a closed, fillable Polygon body.
func ReadPolygon(d *datastream.DataStream) (*Polygon, error) {
	pts, err := readPoints(d)
	if err != nil {
		return nil, err
	}
	ls, lw, color, err := readLineStyleWidthColor(d)
	if err != nil {
		return nil, err
	}
	fs, hs, err := readFillHatch(d)
	if err != nil {
		return nil, err
	}
	return &Polygon{Points: pts, Style: StyleAttrs{LineStyle: ls, LineWidth: lw, FillStyle: fs, HatchStyle: hs, Color: color}}, nil
}

// ReadPolyline reads an open Polyline body.
func ReadPolyline(d *datastream.DataStream) (*Polyline, error) {
	pts, err := readPoints(d)
	if err != nil {
		return nil, err
	}
	ls, lw, color, err := readLineStyleWidthColor(d)
	if err != nil {
		return nil, err
	}
	style := DefaultStyleAttrs()
	style.LineStyle, style.LineWidth, style.Color = ls, lw, color
	return &Polyline{Points: pts, Style: style}, nil
}

// ReadBezier reads a Bezier curve's control points.
func ReadBezier(d *datastream.DataStream) (*Bezier, error) {
	pts, err := readPoints(d)
	if err != nil {
		return nil, err
	}
	ls, lw, color, err := readLineStyleWidthColor(d)
	if err != nil {
		return nil, err
	}
	style := DefaultStyleAttrs()
	style.LineStyle, style.LineWidth, style.Color = ls, lw, color
	return &Bezier{Points: pts, Style: style}, nil
}

// ReadBitmap reads a raw raster Bitmap body; it carries no style fields.
func ReadBitmap(d *datastream.DataStream) (*Bitmap, error) {
	p1, err := readPoint(d)
	if err != nil {
		return nil, err
	}
	p2, err := readPoint(d)
	if err != nil {
		return nil, err
	}
	length, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	data, err := d.ReadRaw(int(length))
	if err != nil {
		return nil, err
	}
	return &Bitmap{P1: p1, P2: p2, Data: data}, nil
}

// ReadCommentText reads a CommentText body.
func ReadCommentText(d *datastream.DataStream) (*CommentText, error) {
	pos, err := readPoint(d)
	if err != nil {
		return nil, err
	}
	fontIdx, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	off := d.CurrentOffset()
	colorRaw, err := d.ReadU8()
	if err != nil {
		return nil, err
	}
	color, err := enums.ColorFromTag(colorRaw, off)
	if err != nil {
		return nil, err
	}
	off = d.CurrentOffset()
	rotRaw, err := d.ReadU8()
	if err != nil {
		return nil, err
	}
	rot, err := enums.RotationFromBits(rotRaw, off)
	if err != nil {
		return nil, err
	}
	text, err := d.ReadStringZeroTerminated()
	if err != nil {
		return nil, err
	}
	return &CommentText{Position: pos, TextFontIdx: fontIdx, Color: color, Rotation: rot, Text: text}, nil
}
