package validation

import (
	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/reason"
)

// ContentLength validates a Content-Length value: it must be non-empty and
// the entire value must parse as a non-negative base-10 integer.
func ContentLength(v string) header.Verdict {
	if _, ok := parseWholeNumber(v); !ok {
		return header.Rejected(reason.InvalidContentLength)
	}
	return header.Accepted
}

// IsZero reports whether v is the literal Content-Length value "0", used by
// the CONNECT special-casing in both the HTTP/1.1 and HTTP/2 map contracts.
func IsZero(v string) bool {
	return v == "0"
}
