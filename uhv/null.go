package uhv

import "github.com/azwaf/uhv/header"

// nullValidator accepts every entry and every map unchanged (spec §4.7).
// Used for codecs that do not want UHV semantics, e.g. HTTP/3 in this
// iteration.
type nullValidator struct{}

func (nullValidator) ValidateRequestHeaderEntry(string, string) header.Verdict  { return header.Accepted }
func (nullValidator) ValidateResponseHeaderEntry(string, string) header.Verdict { return header.Accepted }
func (nullValidator) ValidateRequestHeaderMap(*header.Map) header.Verdict       { return header.Accepted }
func (nullValidator) ValidateResponseHeaderMap(*header.Map) header.Verdict      { return header.Accepted }
