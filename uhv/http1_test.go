package uhv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/logging"
	"github.com/azwaf/uhv/reason"
	"github.com/azwaf/uhv/uhvconfig"
)

func newTestHTTP1Validator(t *testing.T, cfg uhvconfig.Config) *http1Validator {
	t.Helper()
	v, err := newHTTP1Validator(cfg, logging.NullStreamLogger())
	require.NoError(t, err)
	return v
}

func requestMap(entries ...header.Entry) *header.Map {
	return &header.Map{Entries: entries}
}

func e(name, value string) header.Entry { return header.Entry{Name: name, Value: value} }

// Scenario 1 (spec §8): a plain GET is accepted unchanged.
func TestHTTP1RequestMapAcceptsPlainGet(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(e(":method", "GET"), e(":path", "/"), e("host", "envoy.com"))

	vd := v.ValidateRequestHeaderMap(m)

	require.True(t, vd.OK())
}

// Scenario 2: a non-OPTIONS asterisk-form path is rejected.
func TestHTTP1RequestMapRejectsAsteriskForNonOptions(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(e(":method", "GET"), e(":path", "*"), e("host", "envoy.com"))

	vd := v.ValidateRequestHeaderMap(m)

	require.Equal(t, header.Reject, vd.Status)
	require.Equal(t, reason.InvalidURL, vd.Detail)
}

func TestHTTP1RequestMapAllowsAsteriskForOptions(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(e(":method", "OPTIONS"), e(":path", "*"), e("host", "envoy.com"))

	vd := v.ValidateRequestHeaderMap(m)

	require.True(t, vd.OK())
}

// Scenario 3: Transfer-Encoding + Content-Length is rejected by default.
func TestHTTP1RequestMapRejectsChunkedAndContentLengthByDefault(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(
		e(":method", "GET"), e(":path", "/"), e("host", "envoy.com"),
		e("transfer-encoding", "chunked"), e("content-length", "10"),
	)

	vd := v.ValidateRequestHeaderMap(m)

	require.Equal(t, header.Reject, vd.Status)
	require.Equal(t, reason.HTTP1ContentLengthAndChunkedNotAllowed, vd.Detail)
}

// Scenario 4: with http1_allow_chunked_length, Content-Length is stripped.
func TestHTTP1RequestMapAllowsChunkedLengthWhenConfigured(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{HTTP1AllowChunkedLength: true})
	m := requestMap(
		e(":method", "GET"), e(":path", "/"), e("host", "envoy.com"),
		e("transfer-encoding", "chunked"), e("content-length", "10"),
	)

	vd := v.ValidateRequestHeaderMap(m)

	require.True(t, vd.OK())
	require.False(t, m.Has("content-length"))
}

func TestHTTP1RequestMapRejectsTransferEncodingOnConnect(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(
		e(":method", "CONNECT"), e(":path", "envoy.com:443"), e(":authority", "envoy.com:443"),
		e("transfer-encoding", "chunked"),
	)

	vd := v.ValidateRequestHeaderMap(m)

	require.Equal(t, header.Reject, vd.Status)
	require.Equal(t, reason.HTTP1TransferEncodingNotAllowed, vd.Detail)
}

func TestHTTP1RequestMapStripsZeroContentLengthOnConnect(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(
		e(":method", "CONNECT"), e(":path", "envoy.com:443"), e(":authority", "envoy.com:443"),
		e("content-length", "0"),
	)

	vd := v.ValidateRequestHeaderMap(m)

	require.True(t, vd.OK())
	require.False(t, m.Has("content-length"))
}

func TestHTTP1RequestMapRejectsNonZeroContentLengthOnConnect(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(
		e(":method", "CONNECT"), e(":path", "envoy.com:443"), e(":authority", "envoy.com:443"),
		e("content-length", "5"),
	)

	vd := v.ValidateRequestHeaderMap(m)

	require.Equal(t, header.Reject, vd.Status)
	require.Equal(t, reason.HTTP1ContentLengthNotAllowed, vd.Detail)
}

// Scenario 5: CONNECT's :path must be authority-form.
func TestHTTP1RequestMapAcceptsConnectAuthorityForm(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(e(":method", "CONNECT"), e(":path", "www.envoy.com:443"), e(":authority", "www.envoy.com:443"))

	vd := v.ValidateRequestHeaderMap(m)

	require.True(t, vd.OK())
}

func TestHTTP1RequestMapRejectsConnectWithUserinfoInPath(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(e(":method", "CONNECT"), e(":path", "user@www.envoy.com:443"), e(":authority", "www.envoy.com:443"))

	vd := v.ValidateRequestHeaderMap(m)

	require.Equal(t, header.Reject, vd.Status)
	require.Equal(t, reason.InvalidHost, vd.Detail)
}

func TestHTTP1RequestMapRewritesDotSegmentPath(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(e(":method", "GET"), e(":path", "/a/./b/../c"), e("host", "envoy.com"))

	vd := v.ValidateRequestHeaderMap(m)

	require.True(t, vd.OK())
	path, _ := m.Get(":path")
	require.Equal(t, "/a/c", path)
}

func TestHTTP1RequestMapRejectsMissingRequiredPseudo(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})

	m := requestMap(e(":path", "/"), e("host", "envoy.com"))
	vd := v.ValidateRequestHeaderMap(m)
	require.Equal(t, header.Reject, vd.Status)
	require.Equal(t, reason.InvalidPseudoHeader, vd.Detail)

	m = requestMap(e(":method", "GET"), e(":path", "/"))
	vd = v.ValidateRequestHeaderMap(m)
	require.Equal(t, header.Reject, vd.Status)
	require.Equal(t, reason.InvalidHost, vd.Detail)
}

func TestHTTP1RequestMapRejectsUnrecognizedPseudoHeader(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(e(":method", "GET"), e(":path", "/"), e("host", "envoy.com"), e(":bogus", "x"))

	vd := v.ValidateRequestHeaderMap(m)

	require.Equal(t, header.Reject, vd.Status)
	require.Equal(t, reason.InvalidPseudoHeader, vd.Detail)
}

func TestHTTP1RequestMapPurityOnReject(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(e(":method", "GET"), e(":path", "/.."), e("host", "envoy.com"))
	before := m.Clone()

	vd := v.ValidateRequestHeaderMap(m)

	require.Equal(t, header.Reject, vd.Status)
	require.Equal(t, before, *m)
}

// Scenario 15/16: response map.
func TestHTTP1ResponseMapAccepts(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(e(":status", "200"), e("x-foo", "bar"))

	vd := v.ValidateResponseHeaderMap(m)

	require.True(t, vd.OK())
}

func TestHTTP1ResponseMapRejectsOutOfRangeStatus(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{})
	m := requestMap(e(":status", "1024"))

	vd := v.ValidateResponseHeaderMap(m)

	require.Equal(t, header.Reject, vd.Status)
	require.Equal(t, reason.InvalidStatus, vd.Detail)
}

func TestHTTP1RequestMapRestrictsMethods(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{RestrictHTTPMethods: true})
	m := requestMap(e(":method", "BREW"), e(":path", "/"), e("host", "envoy.com"))

	vd := v.ValidateRequestHeaderMap(m)

	require.Equal(t, header.Reject, vd.Status)
	require.Equal(t, reason.InvalidMethod, vd.Detail)
}

func TestHTTP1RequestMapRejectsUnderscoreWhenConfigured(t *testing.T) {
	v := newTestHTTP1Validator(t, uhvconfig.Config{RejectHeadersWithUnderscores: true})
	m := requestMap(e(":method", "GET"), e(":path", "/"), e("host", "envoy.com"), e("x_foo", "bar"))

	vd := v.ValidateRequestHeaderMap(m)

	require.Equal(t, header.Reject, vd.Status)
	require.Equal(t, reason.InvalidUnderscore, vd.Detail)
}
