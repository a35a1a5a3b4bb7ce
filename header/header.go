// Package header defines the wire-agnostic data model the validators operate
// on: an ordered header multimap, the protocol tag that selects a validator,
// and the tri-valued verdicts every validation call returns.
package header

// Protocol selects which validator a Factory constructs.
type Protocol int

const (
	// HTTP09 is plain HTTP/0.9; handled by the HTTP/1.1 validator (no
	// headers to speak of, but the entry points must not panic).
	HTTP09 Protocol = iota
	// HTTP1 is HTTP/1.1 (RFC 9112).
	HTTP1
	// HTTP2 is HTTP/2 (RFC 7540).
	HTTP2
	// Other covers protocols UHV does not have version-specific semantics
	// for yet (e.g. HTTP/3); routed to the null validator.
	Other
)

func (p Protocol) String() string {
	switch p {
	case HTTP09:
		return "HTTP/0.9"
	case HTTP1:
		return "HTTP/1.1"
	case HTTP2:
		return "HTTP/2"
	default:
		return "other"
	}
}

// Entry is one (name, value) pair in a header map.
type Entry struct {
	Name  string
	Value string
}

// IsPseudo reports whether the entry's name is a pseudo-header (":method",
// ":path", ...).
func (e Entry) IsPseudo() bool {
	return len(e.Name) > 0 && e.Name[0] == ':'
}

// Map is an ordered multimap of header entries. The codec that owns a Map
// guarantees pseudo-headers precede regular headers and that ordering is
// preserved; it does not guarantee name uniqueness.
type Map struct {
	Entries []Entry
}

// Get returns the value of the first entry with the given name and whether
// it was found.
func (m *Map) Get(name string) (string, bool) {
	for _, e := range m.Entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

// Has reports whether an entry with the given name is present.
func (m *Map) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Set overwrites the value of the first entry with the given name, or
// appends a new entry if none exists.
func (m *Map) Set(name, value string) {
	for i := range m.Entries {
		if m.Entries[i].Name == name {
			m.Entries[i].Value = value
			return
		}
	}
	m.Entries = append(m.Entries, Entry{Name: name, Value: value})
}

// Remove deletes every entry with the given name.
func (m *Map) Remove(name string) {
	out := m.Entries[:0]
	for _, e := range m.Entries {
		if e.Name != name {
			out = append(out, e)
		}
	}
	m.Entries = out
}

// Clone returns a deep copy of the map, used by tests that assert
// non-mutation on reject (the purity property in spec §8).
func (m *Map) Clone() Map {
	cp := make([]Entry, len(m.Entries))
	copy(cp, m.Entries)
	return Map{Entries: cp}
}

// Verdict is the tri-valued result of a map or entry validation call.
type Verdict struct {
	Status Status
	Detail string
}

// Status is the discriminant of a Verdict.
type Status int

const (
	// Accept means the message (or entry) is well-formed.
	Accept Status = iota
	// Reject means validation failed; Detail names why.
	Reject
	// Redirect is only produced by request path normalization: the path
	// was rewritten and the caller should issue a redirect to it rather
	// than forward the request as-is.
	Redirect
)

// Accepted is the canonical accept verdict.
var Accepted = Verdict{Status: Accept}

// Rejected builds a reject verdict carrying detail.
func Rejected(detail string) Verdict {
	return Verdict{Status: Reject, Detail: detail}
}

// Redirected builds a redirect verdict carrying detail.
func Redirected(detail string) Verdict {
	return Verdict{Status: Redirect, Detail: detail}
}

// OK reports whether the verdict is not a rejection.
func (v Verdict) OK() bool { return v.Status != Reject }
