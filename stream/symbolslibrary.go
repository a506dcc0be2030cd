package stream

import (
	"github.com/orcadtools/schemparse/model"
)

// ReadSymbolsLibrary decodes the Library.bin stream's SymbolsLibrary
// facet: the collection of named symbols it fronts is assembled
// separately, one Symbols/* stream at a time, and attached by the
// assembler (spec.md §4.8) — Library.bin itself carries only the
// globals handled by ReadLibraryBin. ReadSymbolsLibrary exists as the
// explicit C7 entry point spec.md names, returning an empty shell the
// assembler populates.
func ReadSymbolsLibrary() *model.SymbolsLibrary {
	return &model.SymbolsLibrary{}
}
