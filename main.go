package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/orcadtools/schemparse/assembler"
	"github.com/orcadtools/schemparse/container"
	"github.com/orcadtools/schemparse/enums"
)

func terminateIfErr(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	inPath := flag.String("in", "", "container file to parse (.olb, .obk, .dsn, .dbk)")
	outDir := flag.String("out", "", "scratch extraction directory (default: os.TempDir())")
	printTree := flag.Bool("tree", false, "print the container's stream tree and exit, without parsing")
	version := flag.String("version", "C", "file format version (A, B, or C)")
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		return
	}

	extractor := container.MSCFBExtractor{}

	if *printTree {
		terminateIfErr(extractor.PrintTree(*inPath, os.Stdout))
		return
	}

	ffv, err := enums.FileFormatVersionFromLetter(*version, 0)
	terminateIfErr(err)

	scratchBase := *outDir
	if scratchBase == "" {
		scratchBase = os.TempDir()
	}

	lib, err := assembler.Assemble(*inPath, ffv, extractor, scratchBase)
	terminateIfErr(err)

	summary := fmt.Sprintf("Errors in %d/%d files!", lib.FileErrCtr, lib.FileCtr)
	if lib.FileErrCtr == 0 {
		fmt.Println("OK: " + summary)
	} else {
		fmt.Println("ERROR: " + summary)
		os.Exit(1)
	}
}
