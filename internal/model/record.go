package model

// RawRecord is one source note's properties plus the file metadata the data
// source flattens onto it (file.path, file.name, file.basename, file.folder).
// Keys may be plain names, literal dotted paths, or nested objects; values are
// whatever the source produced (strings, numbers, booleans, arrays, nested
// maps, or nil). Records are treated as opaque: all field access goes through
// the mapping configuration, never through an assumed shape.
type RawRecord map[string]any

// Clone returns a shallow copy of the record.
func (r RawRecord) Clone() RawRecord {
	out := make(RawRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
