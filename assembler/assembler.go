// Package assembler implements the library assembler (spec.md
// component C8): it walks an extracted container tree in the fixed
// order original_source/src/Parser.cpp Parser::parseLibrary observes,
// driving package stream's per-kind readers and accumulating their
// results into one model.Library. A failure reading any single stream
// increments FileErrCtr and is recorded as a Diagnostic; it never
// aborts the run. A failure resolving the container tree's required
// directories/files does abort the run, matching spec.md §7's
// "Unhandled errors outside stream scope... abort the run."
package assembler

import (
	"os"
	"path/filepath"

	"github.com/orcadtools/schemparse/container"
	"github.com/orcadtools/schemparse/datastream"
	"github.com/orcadtools/schemparse/enums"
	"github.com/orcadtools/schemparse/model"
	"github.com/orcadtools/schemparse/stream"
)

// Assemble extracts containerPath under a nonce-named scratch directory
// rooted at scratchBase (removed on every exit path, spec.md §5/§9),
// then parses every stream it contains into a model.Library.
func Assemble(containerPath string, version enums.FileFormatVersion, extractor container.Extractor, scratchBase string) (*model.Library, error) {
	if _, err := enums.FileTypeFromExtension(filepath.Ext(containerPath)); err != nil {
		return nil, err
	}

	scratchDir, err := container.NewScratchDir(scratchBase)
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(scratchDir)

	root, err := extractor.Extract(containerPath, scratchDir)
	if err != nil {
		return nil, err
	}

	fs, err := populateFilePaths(root.Dir)
	if err != nil {
		return nil, err
	}

	lib := &model.Library{}
	r := &run{lib: lib, version: version}

	r.directory(fs.ExportBlocksDir)
	r.directory(fs.GraphicsDir)
	r.directory(fs.PackagesDir)
	r.directory(fs.PartsDir)
	r.directory(fs.SymbolsDir)
	if fs.CellsDir != "" {
		r.directory(fs.CellsDir)
	}
	r.directory(fs.ViewsDir)

	if fs.AdminData != "" {
		r.adminData(fs.AdminData)
	}
	if fs.NetBundleMapData != "" {
		r.netBundleMapData(fs.NetBundleMapData)
	}
	if fs.HSObjects != "" {
		r.hsObjects(fs.HSObjects)
	}
	if fs.DsnStream != "" {
		r.dsnStream(fs.DsnStream)
	}
	r.cache(fs.Cache)

	lib.GraphicsTypes = r.types(fs.GraphicsTypes)
	lib.SymbolsTypes = r.types(fs.SymbolsTypes)

	r.libraryBin(fs.Library)

	for _, p := range fs.PackagesPaths {
		if pkg := r.pkg(p); pkg != nil {
			lib.Packages = append(lib.Packages, pkg)
		}
	}

	for _, p := range fs.SymbolsPaths {
		sym := r.symbol(p)
		if sym == nil {
			continue
		}
		if lib.SymbolsLibrary == nil {
			lib.SymbolsLibrary = stream.ReadSymbolsLibrary()
		}
		lib.SymbolsLibrary.Symbols = append(lib.SymbolsLibrary.Symbols, sym)
	}

	for i, schPath := range fs.Schematics {
		sch := r.schematic(schPath)
		if sch == nil {
			continue
		}
		if fs.Hierarchy[i] != "" {
			sch.Hierarchy = r.hierarchy(fs.Hierarchy[i])
		}
		for _, pagePath := range fs.Pages[i] {
			if page := r.page(pagePath); page != nil {
				sch.Pages = append(sch.Pages, page)
			}
		}
		lib.Schematics = append(lib.Schematics, sch)
	}

	return lib, nil
}

// run carries the bookkeeping state (spec.md §5, "counters fileCtr/
// fileErrCtr") threaded through one assembly pass.
type run struct {
	lib     *model.Library
	version enums.FileFormatVersion
}

// load reads path's raw bytes, incrementing fileCtr, and records a
// Diagnostic plus fileErrCtr on failure (original_source's parseFile,
// which wraps every single-stream parse in a try/catch that never
// propagates past the stream it occurred in).
func (r *run) load(path string) ([]byte, bool) {
	r.lib.FileCtr++
	raw, err := os.ReadFile(path)
	if err != nil {
		r.fail(path, err)
		return nil, false
	}
	return raw, true
}

func (r *run) fail(path string, err error) {
	r.lib.FileErrCtr++
	r.lib.Diagnostics = append(r.lib.Diagnostics, model.Diagnostic{Stream: path, Label: err.Error()})
}

func (r *run) directory(path string) {
	raw, ok := r.load(path)
	if !ok {
		return
	}
	if _, err := stream.ReadDirectory(datastream.New(raw)); err != nil {
		r.fail(path, err)
	}
}

func (r *run) types(path string) []model.TypeEntry {
	raw, ok := r.load(path)
	if !ok {
		return nil
	}
	entries, err := stream.ReadTypes(datastream.New(raw))
	if err != nil {
		r.fail(path, err)
		return nil
	}
	return entries
}

func (r *run) adminData(path string) {
	raw, ok := r.load(path)
	if !ok {
		return
	}
	r.lib.Admin = stream.ReadAdminData(raw)
}

func (r *run) netBundleMapData(path string) {
	raw, ok := r.load(path)
	if !ok {
		return
	}
	r.lib.NetBundleMap = stream.ReadNetBundleMapData(raw)
}

func (r *run) hsObjects(path string) {
	raw, ok := r.load(path)
	if !ok {
		return
	}
	r.lib.HSObjects = stream.ReadHSObjects(raw)
}

func (r *run) dsnStream(path string) {
	raw, ok := r.load(path)
	if !ok {
		return
	}
	r.lib.DsnStream = stream.ReadDsnStream(raw)
}

func (r *run) cache(path string) {
	raw, ok := r.load(path)
	if !ok {
		return
	}
	r.lib.Cache = stream.ReadCache(raw)
}

func (r *run) libraryBin(path string) {
	raw, ok := r.load(path)
	if !ok {
		return
	}
	globals, err := stream.ReadLibraryBin(datastream.New(raw))
	if err != nil {
		r.fail(path, err)
		return
	}
	r.lib.CodePage = globals.CodePage
	r.lib.StrLst = model.NewStringTable(globals.RawStrLst, globals.CodePage)
	r.lib.TextFonts = globals.TextFonts
	r.lib.SymbolsLibrary = stream.ReadSymbolsLibrary()
}

func (r *run) pkg(path string) *model.Package {
	raw, ok := r.load(path)
	if !ok {
		return nil
	}
	pkg, err := stream.ReadPackage(datastream.New(raw), r.version, len(r.lib.TextFonts))
	if err != nil {
		r.fail(path, err)
		return nil
	}
	return pkg
}

func (r *run) symbol(path string) *model.Symbol {
	raw, ok := r.load(path)
	if !ok {
		return nil
	}
	sym, err := stream.ReadSymbol(datastream.New(raw), r.version, len(r.lib.TextFonts))
	if err != nil {
		r.fail(path, err)
		return nil
	}
	return sym
}

func (r *run) schematic(path string) *model.Schematic {
	raw, ok := r.load(path)
	if !ok {
		return nil
	}
	sch, err := stream.ReadSchematic(datastream.New(raw), r.version, len(r.lib.TextFonts))
	if err != nil {
		r.fail(path, err)
		return nil
	}
	return sch
}

func (r *run) hierarchy(path string) *model.Hierarchy {
	raw, ok := r.load(path)
	if !ok {
		return nil
	}
	h, err := stream.ReadHierarchy(datastream.New(raw), r.version, len(r.lib.TextFonts))
	if err != nil {
		r.fail(path, err)
		return nil
	}
	return h
}

func (r *run) page(path string) *model.Page {
	raw, ok := r.load(path)
	if !ok {
		return nil
	}
	pg, err := stream.ReadPage(datastream.New(raw), r.version, len(r.lib.TextFonts))
	if err != nil {
		r.fail(path, err)
		return nil
	}
	return pg
}
