package validation

import (
	"github.com/azwaf/uhv/charclass"
	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/reason"
)

// Method validates a :method value. When restrictToRegistry is set, only
// methods in the IANA HTTP Method Registry (plus the "*" asterisk-form) are
// accepted; otherwise any non-empty token is accepted.
func Method(v string, restrictToRegistry bool) header.Verdict {
	if restrictToRegistry {
		if !methodRegistry[v] {
			return header.Rejected(reason.InvalidMethod)
		}
		return header.Accepted
	}

	if v == "" {
		return header.Rejected(reason.InvalidMethod)
	}
	for i := 0; i < len(v); i++ {
		if !charclass.IsToken(v[i]) {
			return header.Rejected(reason.InvalidMethod)
		}
	}
	return header.Accepted
}
