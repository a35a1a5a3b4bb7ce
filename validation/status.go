package validation

import (
	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/reason"
)

// StatusMode selects how strictly Status checks a parsed :status value.
type StatusMode int

const (
	// WholeNumber accepts any value that parses as a whole-number integer.
	WholeNumber StatusMode = iota
	// ValueRange additionally requires 100 <= n <= 599.
	ValueRange
	// OfficialStatusCodes additionally requires membership in the IANA
	// HTTP Status Code Registry.
	OfficialStatusCodes
)

// Status parses v as a whole-number ASCII integer (the entire value must be
// consumed; no leading sign; leading zeros are accepted, so "0200" parses as
// 200) and checks it against mode.
func Status(v string, mode StatusMode) header.Verdict {
	n, ok := parseWholeNumber(v)
	if !ok {
		return header.Rejected(reason.InvalidStatus)
	}

	switch mode {
	case ValueRange:
		if n < 100 || n > 599 {
			return header.Rejected(reason.InvalidStatus)
		}
	case OfficialStatusCodes:
		if !officialStatusCodes[n] {
			return header.Rejected(reason.InvalidStatus)
		}
	}
	return header.Accepted
}

// parseWholeNumber requires the entire string to be consumed as a
// non-negative base-10 integer with no leading '+' and no thousands
// separators; a value too large for int is rejected rather than wrapped.
// Used by both Status and ContentLength so that "full consumption required"
// (spec §9) is enforced identically in both.
func parseWholeNumber(v string) (int, bool) {
	if v == "" {
		return 0, false
	}
	const maxInt = int(^uint(0) >> 1)
	n := 0
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := int(c - '0')
		if n > (maxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}
