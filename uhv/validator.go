// Package uhv assembles the per-protocol header validators from the
// primitives in validation, pathnormalizer and charclass, the way azwaf's
// waf package assembles SecRule/Hyperscan primitives into one request-scoped
// engine. Each Validator is bound to a single stream and is not safe to
// share across streams.
package uhv

import "github.com/azwaf/uhv/header"

// Validator is the exposed contract (spec §6): a stream-scoped object the
// codec calls once per header entry as it decodes the wire, then once with
// the assembled map. Map validation may mutate the map (path rewrite,
// Content-Length removal).
type Validator interface {
	ValidateRequestHeaderEntry(name, value string) header.Verdict
	ValidateResponseHeaderEntry(name, value string) header.Verdict
	ValidateRequestHeaderMap(m *header.Map) header.Verdict
	ValidateResponseHeaderMap(m *header.Map) header.Verdict
}
