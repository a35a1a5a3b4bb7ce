package uhv

import (
	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/logging"
	"github.com/azwaf/uhv/reason"
	"github.com/azwaf/uhv/uhvconfig"
	"github.com/azwaf/uhv/validation"
)

var http1AllowedPseudoHeaders = map[string]bool{
	":method": true, ":scheme": true, ":authority": true, ":path": true,
}

// http1Validator implements the HTTP/1.1 and HTTP/0.9 validator (spec §4.5).
// HTTP/0.9 carries no headers in practice; the same entry points are used so
// that a codec calling them for an HTTP/0.9 stream never panics.
type http1Validator struct {
	base
}

func newHTTP1Validator(cfg uhvconfig.Config, log logging.StreamLogger) (*http1Validator, error) {
	b, err := newBase(cfg, log)
	if err != nil {
		return nil, err
	}
	return &http1Validator{base: b}, nil
}

func (v *http1Validator) ValidateRequestHeaderEntry(name, value string) header.Verdict {
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
		return v.validateGenericPath(value)
	case "transfer-encoding":
		return validation.TransferEncodingHTTP1(value)
	case "content-length":
		return v.validateContentLength(value)
	}
	if name[0] == ':' {
		return header.Rejected(reason.InvalidPseudoHeader)
	}
	if nv := v.validateGenericHeaderName(name); nv.Status == header.Reject {
		return nv
	}
	return v.validateGenericHeaderValue(value)
}

func (v *http1Validator) ValidateResponseHeaderEntry(name, value string) header.Verdict {
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
	if nv := v.validateGenericHeaderName(name); nv.Status == header.Reject {
		return nv
	}
	return v.validateGenericHeaderValue(value)
}

func (v *http1Validator) ValidateRequestHeaderMap(m *header.Map) header.Verdict {
	vd := v.validateRequestHeaderMap(m)
	v.log.MapVerdict(vd)
	return vd
}

func (v *http1Validator) validateRequestHeaderMap(m *header.Map) header.Verdict {
	method, _ := m.Get(":method")
	path, _ := m.Get(":path")
	host, hasHost := m.Get(":authority")
	if !hasHost || host == "" {
		host, hasHost = m.Get("host")
	}

	// Step 1: required pseudo headers.
	if vd := requirePseudo(m, ":method"); vd.Status == header.Reject {
		return vd
	}
	if vd := requirePseudo(m, ":path"); vd.Status == header.Reject {
		return vd
	}
	if !hasHost || host == "" {
		return header.Rejected(reason.InvalidHost)
	}

	isConnect := method == "CONNECT"
	isOptions := method == "OPTIONS"
	if !isOptions && path == "*" {
		return header.Rejected(reason.InvalidURL)
	}

	// Step 2: Transfer-Encoding / Content-Length interaction.
	te, hasTE := m.Get("transfer-encoding")
	cl, hasCL := m.Get("content-length")
	if hasTE {
		if isConnect {
			return header.Rejected(reason.HTTP1TransferEncodingNotAllowed)
		}
		if vd := validation.TransferEncodingHTTP1(te); vd.Status == header.Reject {
			return vd
		}
		if hasCL {
			if !v.cfg.HTTP1AllowChunkedLength {
				return header.Rejected(reason.HTTP1ContentLengthAndChunkedNotAllowed)
			}
			m.Remove("content-length")
		}
	} else if hasCL && isConnect {
		if validation.IsZero(cl) {
			m.Remove("content-length")
		} else {
			return header.Rejected(reason.HTTP1ContentLengthNotAllowed)
		}
	}

	// Step 3: normalize or validate :path.
	if isConnect {
		if vd := v.validateHost(path); vd.Status == header.Reject {
			return vd
		}
	} else if vd := v.normalizePath(m, path); vd.Status != header.Accept {
		return vd
	}

	// Step 4: iterate remaining entries.
	return iterateEntries(m, func(name, value string) header.Verdict {
		if name == "" || (name[0] == ':' && !http1AllowedPseudoHeaders[name]) {
			return header.Rejected(reason.InvalidPseudoHeader)
		}
		return v.ValidateRequestHeaderEntry(name, value)
	})
}

func (v *http1Validator) ValidateResponseHeaderMap(m *header.Map) header.Verdict {
	vd := v.validateResponseHeaderMap(m)
	v.log.MapVerdict(vd)
	return vd
}

func (v *http1Validator) validateResponseHeaderMap(m *header.Map) header.Verdict {
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
