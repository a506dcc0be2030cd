package enums

import "github.com/orcadtools/schemparse/parseerr"

// PortType is the electrical role of a pin or port symbol.
type PortType uint32

const (
	PortTypeInput PortType = iota
	PortTypeOutput
	PortTypeBidirectional
	PortTypePassive
	PortTypeTristate
	PortTypeOpenCollector
	PortTypeOpenEmitter
	PortTypePower
)

var portTypeNames = map[PortType]string{
	PortTypeInput:         "Input",
	PortTypeOutput:        "Output",
	PortTypeBidirectional: "Bidirectional",
	PortTypePassive:       "Passive",
	PortTypeTristate:      "Tristate",
	PortTypeOpenCollector: "OpenCollector",
	PortTypeOpenEmitter:   "OpenEmitter",
	PortTypePower:         "Power",
}

// PortTypeFromTag is the total conversion from a raw u32 port type.
func PortTypeFromTag(raw uint32, offset int) (PortType, error) {
	p := PortType(raw)
	if _, ok := portTypeNames[p]; !ok {
		return 0, &parseerr.UnknownEnumValue{Kind: "PortType", Raw: raw, Offset: offset}
	}
	return p, nil
}

func (p PortType) Raw() uint32 { return uint32(p) }

func (p PortType) String() string {
	if n, ok := portTypeNames[p]; ok {
		return n
	}
	return "PortType(unknown)"
}

// PinShape is the graphical rendering of a pin's electrical marker.
type PinShape uint16

const (
	PinShapeLine PinShape = iota
	PinShapeClock
	PinShapeDot
	PinShapeDotClock
	PinShapeShort
	PinShapeDigitalSignal
	PinShapeNonLogic
)

var pinShapeNames = map[PinShape]string{
	PinShapeLine:          "Line",
	PinShapeClock:         "Clock",
	PinShapeDot:           "Dot",
	PinShapeDotClock:      "DotClock",
	PinShapeShort:         "Short",
	PinShapeDigitalSignal: "DigitalSignal",
	PinShapeNonLogic:      "NonLogic",
}

// PinShapeFromTag is the total conversion from a raw u16 pin shape.
func PinShapeFromTag(raw uint16, offset int) (PinShape, error) {
	p := PinShape(raw)
	if _, ok := pinShapeNames[p]; !ok {
		return 0, &parseerr.UnknownEnumValue{Kind: "PinShape", Raw: uint32(raw), Offset: offset}
	}
	return p, nil
}

func (p PinShape) Raw() uint16 { return uint16(p) }

func (p PinShape) String() string {
	if n, ok := pinShapeNames[p]; ok {
		return n
	}
	return "PinShape(unknown)"
}
