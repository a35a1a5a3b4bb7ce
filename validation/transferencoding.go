package validation

import (
	"strings"

	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/reason"
)

// TransferEncodingHTTP1 validates an HTTP/1.1 Transfer-Encoding value: it
// must equal "chunked" case-insensitively. UHV does not support
// transfer-codings other than chunked (RFC 9112 §6.1 allows a codec to
// reject anything else outright).
func TransferEncodingHTTP1(v string) header.Verdict {
	if !strings.EqualFold(v, "chunked") {
		return header.Rejected(reason.HTTP1InvalidTransferEncoding)
	}
	return header.Accepted
}

// TEHTTP2 validates an HTTP/2 TE header value: it must equal "trailers"
// case-insensitively (RFC 7540 §8.1.2.2).
func TEHTTP2(v string) header.Verdict {
	if !strings.EqualFold(v, "trailers") {
		return header.Rejected(reason.HTTP2InvalidTE)
	}
	return header.Accepted
}
