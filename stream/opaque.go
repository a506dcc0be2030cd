package stream

// ReadNetBundleMapData returns NetBundleMapData.bin verbatim: no field
// shape for this stream has been recovered (spec.md §9, "opaque byte
// regions"), but its presence/absence and raw bytes still matter to a
// round-trip-faithful Library (spec.md §3, "Library (root)").
func ReadNetBundleMapData(raw []byte) []byte {
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

// ReadCache returns Cache.bin verbatim. Cache.bin is required by every
// container (spec.md §6, "Expected stream layout") but its internal
// shape is out of scope: nothing downstream of assembly reads it back.
func ReadCache(raw []byte) []byte {
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

// ReadHSObjects returns HSObjects.bin verbatim, present only in
// FileFormatVersion C containers (original_source/src/Parser.cpp
// populateFilePaths, commented out pending that version gate).
func ReadHSObjects(raw []byte) []byte {
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

// ReadDsnStream returns DsnStream.bin verbatim, present only in
// schematic (.DSN/.DBK) containers at FileFormatVersion C
// (original_source/src/Parser.cpp populateFilePaths).
func ReadDsnStream(raw []byte) []byte {
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}
