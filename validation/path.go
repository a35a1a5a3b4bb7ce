package validation

import (
	"github.com/azwaf/uhv/charclass"
	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/reason"
)

// GenericPath validates a :path value at the character level only: every
// byte must be a pchar, a '/' segment separator, or '%' (the lead byte of a
// percent-encoded triplet; the triplet's own well-formedness is the path
// normalizer's job, not this check's). This is the per-entry dispatch used
// when the map phase is not running full normalization on the path.
func GenericPath(v string) header.Verdict {
	for i := 0; i < len(v); i++ {
		b := v[i]
		if !charclass.IsPChar(b) && b != '/' && b != '%' {
			return header.Rejected(reason.InvalidURL)
		}
	}
	return header.Accepted
}
