package stream

import (
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/futuredata"
	"github.com/orcadtools/schemparse/model"
	"github.com/orcadtools/schemparse/parseerr"
	"github.com/orcadtools/schemparse/record"
)

// ReadSchematic decodes a Views/<schematic>/Schematic.bin stream. Its
// own field shape was not retrieved from original_source (only its
// header class declaration was, StreamSchematic.hpp); Pages and
// Hierarchy are parsed as their own streams and attached by the
// assembler, so Schematic.bin's own content is limited to the
// schematic-level property record the corpus's other streams all
// begin with.
func ReadSchematic(d *datastream.DataStream, version enums.FileFormatVersion, textFontCount int) (*model.Schematic, error) {
	ft := futuredata.New()
	sch := &model.Schematic{}
	if d.IsEOF() {
		return sch, nil
	}
	rec, err := record.DispatchOneOf(d, ft, version, textFontCount, enums.StructureProperties, enums.StructureProperties2)
	if err != nil {
		return nil, err
	}
	switch rec.Tag {
	case enums.StructureProperties:
		sch.Name = rec.Properties.Name
	case enums.StructureProperties2:
		sch.Name = rec.Properties2.Name
	}
	if !d.IsEOF() {
		return nil, &parseerr.InvariantViolated{What: "expected end of schematic stream but did not reach it", Offset: d.CurrentOffset()}
	}
	return sch, nil
}

// ReadHierarchy decodes a Views/<schematic>/Hierarchy/Hierarchy.bin
// stream: a sequence of SthInHierarchy1 records running to EOF
// (grounded on original_source/src/Structures/StructSthInHierarchy1.cpp;
// no outer count field was recovered, so entries are read until the
// stream is exhausted).
func ReadHierarchy(d *datastream.DataStream, version enums.FileFormatVersion, textFontCount int) (*model.Hierarchy, error) {
	ft := futuredata.New()
	h := &model.Hierarchy{}
	for !d.IsEOF() {
		rec, err := record.DispatchOneOf(d, ft, version, textFontCount, enums.StructureSthInHierarchy1)
		if err != nil {
			return nil, err
		}
		h.Entries = append(h.Entries, rec.SthInHierarchy1)
	}
	return h, nil
}
