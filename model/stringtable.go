// Package model holds the assembled result tree (Library, Package,
// Symbol, Page, …) that the stream dispatcher (package stream) builds by
// driving the record readers (package record). It imports record for
// field types and record never imports model, so stream can depend on
// both model and record without an import cycle.
package model

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// StringTable is the library's global index-addressed string table
// (spec.md §3, "strLst"). Index 0 always means the empty string; lookups
// subtract one from a 1-based index.
type StringTable struct {
	entries []string
}

// NewStringTable decodes raw, NUL-free byte slices against codePage into
// a 1-based string table. Unrecognised code pages fall back to Windows-1252,
// matching util.ConvertFromCodepageToUtf8's default branch in the teacher
// repo this parser is grounded on.
func NewStringTable(raw [][]byte, codePage uint16) *StringTable {
	decoder := charmapFor(codePage)
	entries := make([]string, len(raw))
	for i, b := range raw {
		utf8, _, err := transform.Bytes(decoder.NewDecoder(), b)
		if err != nil {
			entries[i] = string(b)
			continue
		}
		entries[i] = string(utf8)
	}
	return &StringTable{entries: entries}
}

func charmapFor(codePage uint16) *charmap.Charmap {
	switch codePage {
	case 1250:
		return charmap.Windows1250
	case 1251:
		return charmap.Windows1251
	case 1252:
		return charmap.Windows1252
	default:
		return charmap.Windows1252
	}
}

// Len returns the number of stored entries in the table, empty strings
// included (the table's logical length excluding the synthetic index-0
// empty string).
func (t *StringTable) Len() int {
	return len(t.entries)
}

// Lookup resolves a 1-based string-table index. Index 0 yields the empty
// string; index k>0 yields entries[k-1] (spec.md §3, §8).
func (t *StringTable) Lookup(idx uint32) string {
	if idx == 0 {
		return ""
	}
	pos := int(idx) - 1
	if pos < 0 || pos >= len(t.entries) {
		return ""
	}
	return t.entries[pos]
}
