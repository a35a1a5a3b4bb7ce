// Package pathnormalizer implements the decode-and-resolve engine for a
// request's :path pseudo-header: percent-decoding with a policy-driven
// escaped-slash rule, dot-segment resolution, and slash collapsing, per
// RFC 3986 §5.2.4 as adapted by the header validator.
package pathnormalizer

import (
	"github.com/azwaf/uhv/charclass"
	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/reason"
)

// EscapedSlashesAction selects how a percent-encoded slash ("%2F" or "%5C")
// in the path is handled.
type EscapedSlashesAction int

const (
	// ImplementationDefault currently behaves like KeepEncoded.
	ImplementationDefault EscapedSlashesAction = iota
	// KeepEncoded normalizes the encoded octet to uppercase hex but does
	// not decode it.
	KeepEncoded
	// Reject fails the whole request when an encoded slash is found.
	Reject
	// UnescapeAndForward decodes the octet to a literal slash and
	// continues normalizing.
	UnescapeAndForward
	// UnescapeAndRedirect decodes the octet to a literal slash and marks
	// the eventual verdict as Redirect rather than Accept.
	UnescapeAndRedirect
)

// Options configures a single normalization call. The zero value is the
// all-defaults-off configuration from spec §3.
type Options struct {
	SkipNormalization   bool
	SkipMergingSlashes  bool
	EscapedSlashesAction EscapedSlashesAction
}

// Normalize decodes and resolves a request :path value. On Accept or
// Redirect, path is the rewritten, canonical path the caller should use.
// On Reject, path is meaningless and must be discarded.
func Normalize(input string, opts Options) (verdict header.Verdict, path string) {
	if opts.SkipNormalization {
		return header.Accepted, input
	}

	if len(input) == 0 || input[0] != '/' {
		return header.Rejected(reason.InvalidURL), ""
	}

	// buf holds the mutable working copy; it never grows past len(input)
	// because every rewrite rule shrinks or preserves length (merging
	// slashes, dot-segment collapse, and percent-decode all remove bytes
	// or leave the byte count unchanged).
	buf := []byte(input)
	read, write := 1, 1
	n := len(buf)
	redirect := false

	for read < n {
		ch := buf[read]
		prev := buf[write-1]

		switch {
		case ch == '%':
			result, decoded := decodeOctet(buf, read, n, opts.EscapedSlashesAction)
			switch result {
			case octetInvalid:
				return header.Rejected(reason.InvalidURL), ""
			case octetRejectSlash:
				return header.Rejected(reason.PathPercentEncodedSlash), ""
			case octetNormalized:
				// Valid encoding, not decoded: copy the three
				// (possibly hex-case-normalized) bytes.
				buf[write], buf[write+1], buf[write+2] = buf[read], buf[read+1], buf[read+2]
				write += 3
				read += 3
			case octetDecoded, octetDecodedRedirect:
				// The decoded byte was written into buf[read+2];
				// advance read to it so the next iteration
				// re-examines it as a normal path byte (this is how
				// a decoded "." or "/" still triggers dot-segment
				// and slash-merge handling).
				buf[read+2] = decoded
				read += 2
				if result == octetDecodedRedirect {
					redirect = true
				}
			}

		case ch == '.' && (read+1 == n || buf[read+1] == '/'):
			switch {
			case prev == '/':
				// "/./" — drop the dot segment.
				read += 2
			case prev == '.' && write >= 2 && buf[write-2] == '/':
				// "/../" — rewind past the parent segment.
				write -= 2
				if write == 0 {
					return header.Rejected(reason.InvalidURL), ""
				}
				for write > 0 && buf[write-1] != '/' {
					write--
				}
				read += 2
			default:
				// A dot that is just part of a larger segment
				// (e.g. "a..b" or a trailing "..." mid-segment).
				buf[write] = buf[read]
				write++
				read++
			}

		case ch == '/':
			if prev == '/' && !opts.SkipMergingSlashes {
				read++
			} else {
				buf[write] = buf[read]
				write++
				read++
			}

		default:
			if !charclass.IsPChar(ch) {
				return header.Rejected(reason.InvalidURL), ""
			}
			buf[write] = buf[read]
			write++
			read++
		}
	}

	path = string(buf[:write])
	if redirect {
		return header.Redirected(reason.PathPercentEncodedSlash), path
	}
	return header.Accepted, path
}

type octetResult int

const (
	octetInvalid octetResult = iota
	octetNormalized
	octetDecoded
	octetDecodedRedirect
	octetRejectSlash
)

// decodeOctet inspects the %XX triplet at buf[read:read+3], normalizing the
// hex digits to uppercase in place. It returns the classification from
// spec §4.3 step 1 and, for the decoded cases, the literal byte value.
func decodeOctet(buf []byte, read, n int, action EscapedSlashesAction) (octetResult, byte) {
	if read+2 >= n {
		return octetInvalid, 0
	}
	h1, h2 := buf[read+1], buf[read+2]
	if !charclass.IsHexDigit(h1) || !charclass.IsHexDigit(h2) {
		return octetInvalid, 0
	}

	h1 = charclass.ToUpperHex(h1)
	h2 = charclass.ToUpperHex(h2)
	buf[read+1], buf[read+2] = h1, h2

	b := charclass.HexValue(h1)<<4 | charclass.HexValue(h2)

	if charclass.IsUnreserved(b) {
		return octetDecoded, b
	}

	if b == '/' || b == '\\' {
		switch action {
		case Reject:
			return octetRejectSlash, 0
		case UnescapeAndForward:
			return octetDecoded, b
		case UnescapeAndRedirect:
			return octetDecodedRedirect, b
		default: // KeepEncoded, ImplementationDefault
			return octetNormalized, 0
		}
	}

	// A valid encoding of some other reserved/other byte: keep encoded.
	return octetNormalized, 0
}
