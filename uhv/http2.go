package uhv

import (
	"github.com/azwaf/uhv/charclass"
	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/logging"
	"github.com/azwaf/uhv/reason"
	"github.com/azwaf/uhv/uhvconfig"
	"github.com/azwaf/uhv/validation"
)

var http2AllowedPseudoHeaders = map[string]bool{
	":method": true, ":scheme": true, ":authority": true, ":path": true,
}

// http2AllowedPseudoHeadersConnect is the CONNECT allow-set, extended with
// :protocol for RFC 8441 extended CONNECT (WebSocket-over-HTTP/2 bootstrap).
var http2AllowedPseudoHeadersConnect = map[string]bool{
	":method": true, ":authority": true, ":protocol": true,
}

// http2Validator implements the HTTP/2 validator (spec §4.6).
type http2Validator struct {
	base
}

func newHTTP2Validator(cfg uhvconfig.Config, log logging.StreamLogger) (*http2Validator, error) {
	b, err := newBase(cfg, log)
	if err != nil {
		return nil, err
	}
	return &http2Validator{base: b}, nil
}

func (v *http2Validator) ValidateRequestHeaderEntry(name, value string) header.Verdict {
	if name == "" {
		return header.Rejected(reason.EmptyHeaderName)
	}
	switch name {
	case ":method":
		return v.validateMethod(value)
	case ":authority", "host":
		return v.validateHost(value)
	case ":scheme":
		return v.validateScheme(value)
	case ":path":
		// The structural check runs in the map phase (normalizePath);
		// an individual :path entry always passes here.
		return header.Accepted
	case ":protocol":
		return validateProtocolHeader(value)
	case "te":
		return validation.TEHTTP2(value)
	case "content-length":
		return v.validateContentLength(value)
	}
	if name[0] == ':' {
		return header.Rejected(reason.InvalidPseudoHeader)
	}
	if nv := v.validateGenericHeaderNameHTTP2(name); nv.Status == header.Reject {
		return nv
	}
	return v.validateGenericHeaderValue(value)
}

func (v *http2Validator) ValidateResponseHeaderEntry(name, value string) header.Verdict {
	if name == "" {
		return header.Rejected(reason.EmptyHeaderName)
	}
	switch name {
	case ":status":
		return v.validateStatus(validation.ValueRange, value)
	case "content-length":
		return v.validateContentLength(value)
	}
	if name[0] == ':' {
		return header.Rejected(reason.InvalidPseudoHeader)
	}
	if nv := v.validateGenericHeaderNameHTTP2(name); nv.Status == header.Reject {
		return nv
	}
	return v.validateGenericHeaderValue(value)
}

// validateGenericHeaderNameHTTP2 overrides the shared generic-name check to
// reject connection-specific header names outright (RFC 7540 §8.1.2.2):
// any message containing them is malformed once multiplexed onto a single
// connection.
func (v *http2Validator) validateGenericHeaderNameHTTP2(name string) header.Verdict {
	if validation.ConnectionSpecificHeaders[name] {
		return header.Rejected(reason.HTTP2ConnectionHeaderRejected)
	}
	return v.validateGenericHeaderName(name)
}

// validateProtocolHeader validates the RFC 8441 :protocol pseudo-header
// value as a token, the same character class :method values are held to.
func validateProtocolHeader(value string) header.Verdict {
	if value == "" {
		return header.Rejected(reason.InvalidPseudoHeader)
	}
	for i := 0; i < len(value); i++ {
		if !charclass.IsToken(value[i]) {
			return header.Rejected(reason.InvalidPseudoHeader)
		}
	}
	return header.Accepted
}

func (v *http2Validator) ValidateRequestHeaderMap(m *header.Map) header.Verdict {
	vd := v.validateRequestHeaderMap(m)
	v.log.MapVerdict(vd)
	return vd
}

func (v *http2Validator) validateRequestHeaderMap(m *header.Map) header.Verdict {
	if vd := requirePseudo(m, ":method"); vd.Status == header.Reject {
		return vd
	}
	method, _ := m.Get(":method")
	isConnect := method == "CONNECT"

	scheme, hasScheme := m.Get(":scheme")
	path, hasPath := m.Get(":path")
	authority, hasAuthority := m.Get(":authority")

	if !isConnect {
		if !hasScheme || scheme == "" {
			return header.Rejected(reason.InvalidScheme)
		}
		if !hasPath || path == "" {
			return header.Rejected(reason.InvalidURL)
		}
	} else {
		if hasScheme && scheme != "" {
			return header.Rejected(reason.InvalidScheme)
		}
		if hasPath && path != "" {
			return header.Rejected(reason.InvalidURL)
		}
		if !hasAuthority || authority == "" {
			return header.Rejected(reason.InvalidHost)
		}
	}

	isOptions := method == "OPTIONS"
	if !isOptions && path == "*" {
		return header.Rejected(reason.InvalidURL)
	}

	// HTTP/2 has no Transfer-Encoding; CONNECT requests may still carry a
	// Content-Length, which must be exactly "0" (mirrors the HTTP/1.1
	// CONNECT special-case, spec §4.5 step 4).
	if isConnect {
		if cl, hasCL := m.Get("content-length"); hasCL {
			if validation.IsZero(cl) {
				m.Remove("content-length")
			} else {
				return header.Rejected(reason.HTTP2ContentLengthNotAllowed)
			}
		}
	}

	if !isConnect {
		if vd := v.normalizePath(m, path); vd.Status != header.Accept {
			return vd
		}
	}

	allowed := http2AllowedPseudoHeaders
	if isConnect {
		allowed = http2AllowedPseudoHeadersConnect
	}
	return iterateEntries(m, func(name, value string) header.Verdict {
		if name == "" || (name[0] == ':' && !allowed[name]) {
			return header.Rejected(reason.InvalidPseudoHeader)
		}
		return v.ValidateRequestHeaderEntry(name, value)
	})
}

func (v *http2Validator) ValidateResponseHeaderMap(m *header.Map) header.Verdict {
	vd := v.validateResponseHeaderMap(m)
	v.log.MapVerdict(vd)
	return vd
}

func (v *http2Validator) validateResponseHeaderMap(m *header.Map) header.Verdict {
	if vd := requirePseudo(m, ":status"); vd.Status == header.Reject {
		return vd
	}
	return iterateEntries(m, func(name, value string) header.Verdict {
		if name == "" || (name[0] == ':' && name != ":status") {
			return header.Rejected(reason.InvalidPseudoHeader)
		}
		return v.ValidateResponseHeaderEntry(name, value)
	})
}
