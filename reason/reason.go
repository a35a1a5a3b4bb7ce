// Package reason holds the stable response-code-detail strings UHV attaches
// to Reject verdicts. The calling codec treats these as opaque, testable
// identifiers and maps them to an HTTP status (typically 400, sometimes 404
// or 301 for a Redirect).
package reason

const (
	EmptyHeaderName    = "uhv.empty_header_name"
	InvalidPseudoHeader = "uhv.invalid_pseudo_header"
	InvalidCharacters  = "uhv.invalid_characters"
	InvalidUnderscore  = "uhv.invalid_underscore"
	InvalidMethod      = "uhv.invalid_method"
	InvalidScheme      = "uhv.invalid_scheme"
	InvalidHost        = "uhv.invalid_host"
	InvalidURL         = "uhv.invalid_url"
	InvalidStatus      = "uhv.invalid_status"
	InvalidContentLength = "uhv.invalid_content_length"

	HTTP1InvalidTransferEncoding          = "uhv.http1.invalid_transfer_encoding"
	HTTP1TransferEncodingNotAllowed       = "uhv.http1.transfer_encoding_not_allowed"
	HTTP1ContentLengthNotAllowed          = "uhv.http1.content_length_not_allowed"
	HTTP1ContentLengthAndChunkedNotAllowed = "uhv.http1.content_length_and_chunked_not_allowed"

	HTTP2InvalidTE                 = "uhv.http2.invalid_te"
	HTTP2ConnectionHeaderRejected  = "uhv.http2.connection_header_rejected"
	HTTP2ContentLengthNotAllowed   = "uhv.http2.content_length_not_allowed"

	PathPercentEncodedSlash = "uhv.path.percent_encoded_slash"
)
