package header

import "golang.org/x/net/http2/hpack"

// FromHPACK builds a Map from the header field list an HTTP/2 HPACK decoder
// emits, preserving decode order (pseudo-headers first, per RFC 7540
// §8.1.2.1). This is the entry point an HTTP/2 codec uses to hand a decoded
// header block to a Validator.
func FromHPACK(fields []hpack.HeaderField) Map {
	entries := make([]Entry, len(fields))
	for i, f := range fields {
		entries[i] = Entry{Name: f.Name, Value: f.Value}
	}
	return Map{Entries: entries}
}

// ToHPACK is the inverse of FromHPACK, used when re-encoding a header block
// after the validator has rewritten it in place (e.g. a normalized path).
func ToHPACK(m Map) []hpack.HeaderField {
	fields := make([]hpack.HeaderField, len(m.Entries))
	for i, e := range m.Entries {
		fields[i] = hpack.HeaderField{Name: e.Name, Value: e.Value}
	}
	return fields
}
