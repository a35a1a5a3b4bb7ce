package validation

import (
	"strings"

	"github.com/azwaf/uhv/charclass"
	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/reason"
)

// ConnectionSpecificHeaders are the header names HTTP/2 must reject
// outright: carrying connection-management semantics that have no meaning
// once multiplexed onto a single connection (RFC 7540 §8.1.2.2).
var ConnectionSpecificHeaders = map[string]bool{
	"transfer-encoding": true,
	"connection":        true,
	"upgrade":           true,
	"keep-alive":        true,
	"proxy-connection":  true,
}

// GenericHeaderName validates a non-pseudo header name: non-empty, every
// byte a token character, and (if rejectUnderscores is set) free of '_'.
func GenericHeaderName(name string, rejectUnderscores bool) header.Verdict {
	if name == "" {
		return header.Rejected(reason.EmptyHeaderName)
	}
	for i := 0; i < len(name); i++ {
		if !charclass.IsToken(name[i]) {
			return header.Rejected(reason.InvalidCharacters)
		}
	}
	if rejectUnderscores && strings.IndexByte(name, '_') >= 0 {
		return header.Rejected(reason.InvalidUnderscore)
	}
	return header.Accepted
}

// GenericHeaderValue validates a header value: every byte must be a
// field-vchar.
func GenericHeaderValue(value string) header.Verdict {
	for i := 0; i < len(value); i++ {
		if !charclass.IsFieldVChar(value[i]) {
			return header.Rejected(reason.InvalidCharacters)
		}
	}
	return header.Accepted
}
