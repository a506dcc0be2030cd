package assembler

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/orcadtools/schemparse/parseerr"
)

// fileStructure resolves every path the assembler needs out of an
// extracted container tree, exactly mirroring the fixed layout
// original_source/src/Parser.cpp populateFilePaths asserts (spec.md §6,
// "Expected stream layout inside a library root"). Required entries
// missing from the tree abort the run with FilesystemMissing; optional
// entries (marked `?` in spec.md) are simply left blank when absent.
type fileStructure struct {
	Cache            string
	AdminData        string
	NetBundleMapData string
	HSObjects        string
	DsnStream        string

	ExportBlocksDir string
	GraphicsDir     string
	GraphicsTypes   string
	PackagesDir     string
	PackagesPaths   []string
	PartsDir        string
	SymbolsDir      string
	SymbolsTypes    string
	SymbolsPaths    []string
	CellsDir        string
	ViewsDir        string
	Library         string

	Schematics []string   // Views/<name>/Schematic.bin, one per schematic
	Hierarchy  []string   // Views/<name>/Hierarchy/Hierarchy.bin, "" if absent, aligned with Schematics
	Pages      [][]string // Views/<name>/Pages/*, aligned with Schematics
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &parseerr.FilesystemMissing{Path: path}
	}
	return nil
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return &parseerr.FilesystemMissing{Path: path}
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// populateFilePaths walks libDir and resolves fileStructure, matching
// original_source/src/Parser.cpp Parser::populateFilePaths's exact
// required/optional split and ordering.
func populateFilePaths(libDir string) (*fileStructure, error) {
	if err := requireDir(libDir); err != nil {
		return nil, err
	}
	fs := &fileStructure{}

	if p := filepath.Join(libDir, "AdminData.bin"); exists(p) {
		fs.AdminData = p
	}

	fs.Cache = filepath.Join(libDir, "Cache.bin")
	if err := requireFile(fs.Cache); err != nil {
		return nil, err
	}

	cells := filepath.Join(libDir, "Cells")
	if err := requireDir(cells); err != nil {
		return nil, err
	}
	if p := filepath.Join(libDir, "Cells Directory.bin"); exists(p) {
		fs.CellsDir = p
	}

	if p := filepath.Join(libDir, "HSObjects.bin"); exists(p) {
		fs.HSObjects = p
	}
	if p := filepath.Join(libDir, "DsnStream.bin"); exists(p) {
		fs.DsnStream = p
	}

	exportBlocks := filepath.Join(libDir, "ExportBlocks")
	if err := requireDir(exportBlocks); err != nil {
		return nil, err
	}
	fs.ExportBlocksDir = filepath.Join(libDir, "ExportBlocks Directory.bin")
	if err := requireFile(fs.ExportBlocksDir); err != nil {
		return nil, err
	}

	graphics := filepath.Join(libDir, "Graphics")
	if err := requireDir(graphics); err != nil {
		return nil, err
	}
	fs.GraphicsDir = filepath.Join(libDir, "Graphics Directory.bin")
	if err := requireFile(fs.GraphicsDir); err != nil {
		return nil, err
	}
	fs.GraphicsTypes = filepath.Join(graphics, "$Types$.bin")
	if err := requireFile(fs.GraphicsTypes); err != nil {
		return nil, err
	}

	fs.Library = filepath.Join(libDir, "Library.bin")
	if err := requireFile(fs.Library); err != nil {
		return nil, err
	}

	if p := filepath.Join(libDir, "NetBundleMapData.bin"); exists(p) {
		fs.NetBundleMapData = p
	}

	packages := filepath.Join(libDir, "Packages")
	if err := requireDir(packages); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(packages)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		fs.PackagesPaths = append(fs.PackagesPaths, filepath.Join(packages, e.Name()))
	}
	sort.Strings(fs.PackagesPaths)
	fs.PackagesDir = filepath.Join(libDir, "Packages Directory.bin")
	if err := requireFile(fs.PackagesDir); err != nil {
		return nil, err
	}

	parts := filepath.Join(libDir, "Parts")
	if err := requireDir(parts); err != nil {
		return nil, err
	}
	fs.PartsDir = filepath.Join(libDir, "Parts Directory.bin")
	if err := requireFile(fs.PartsDir); err != nil {
		return nil, err
	}

	symbols := filepath.Join(libDir, "Symbols")
	if err := requireDir(symbols); err != nil {
		return nil, err
	}
	fs.SymbolsDir = filepath.Join(libDir, "Symbols Directory.bin")
	if err := requireFile(fs.SymbolsDir); err != nil {
		return nil, err
	}
	fs.SymbolsTypes = filepath.Join(symbols, "$Types$.bin")
	if err := requireFile(fs.SymbolsTypes); err != nil {
		return nil, err
	}
	symbolEntries, err := os.ReadDir(symbols)
	if err != nil {
		return nil, err
	}
	for _, e := range symbolEntries {
		if e.Name() == "$Types$.bin" || e.Name() == "ERC.bin" {
			continue
		}
		fs.SymbolsPaths = append(fs.SymbolsPaths, filepath.Join(symbols, e.Name()))
	}
	sort.Strings(fs.SymbolsPaths)

	views := filepath.Join(libDir, "Views")
	if err := requireDir(views); err != nil {
		return nil, err
	}
	fs.ViewsDir = filepath.Join(libDir, "Views Directory.bin")
	if err := requireFile(fs.ViewsDir); err != nil {
		return nil, err
	}
	viewEntries, err := os.ReadDir(views)
	if err != nil {
		return nil, err
	}
	var schematicDirs []string
	for _, e := range viewEntries {
		if !e.IsDir() {
			return nil, &parseerr.InvariantViolated{What: "Views/ entry " + e.Name() + " is not a directory"}
		}
		schematicDirs = append(schematicDirs, filepath.Join(views, e.Name()))
	}
	sort.Strings(schematicDirs)

	for _, dir := range schematicDirs {
		schematicBin := filepath.Join(dir, "Schematic.bin")
		if err := requireFile(schematicBin); err != nil {
			return nil, err
		}
		fs.Schematics = append(fs.Schematics, schematicBin)

		hierarchyBin := filepath.Join(dir, "Hierarchy", "Hierarchy.bin")
		if !exists(hierarchyBin) {
			hierarchyBin = ""
		}
		fs.Hierarchy = append(fs.Hierarchy, hierarchyBin)

		var pages []string
		pagesDir := filepath.Join(dir, "Pages")
		if exists(pagesDir) {
			pageEntries, err := os.ReadDir(pagesDir)
			if err != nil {
				return nil, err
			}
			for _, e := range pageEntries {
				if e.IsDir() {
					return nil, &parseerr.InvariantViolated{What: "Pages/ entry " + e.Name() + " is a directory"}
				}
				pages = append(pages, filepath.Join(pagesDir, e.Name()))
			}
			sort.Strings(pages)
		}
		fs.Pages = append(fs.Pages, pages)
	}

	return fs, nil
}
