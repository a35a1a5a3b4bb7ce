package validation

import (
	"github.com/azwaf/uhv/charclass"
	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/reason"
)

// Scheme validates a :scheme value per RFC 3986 §3.1. The validator accepts
// uppercase letters but does not rewrite the value to its canonical
// lowercase form; that normalization, if wanted, is the codec's job.
func Scheme(v string) header.Verdict {
	if v == "" || !charclass.IsAlpha(v[0]) {
		return header.Rejected(reason.InvalidScheme)
	}
	for i := 1; i < len(v); i++ {
		if !charclass.IsSchemeTail(v[i]) {
			return header.Rejected(reason.InvalidScheme)
		}
	}
	return header.Accepted
}
