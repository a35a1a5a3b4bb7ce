package validation

import (
	"strings"

	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/reason"
)

// Host validates a Host/:authority value. Userinfo ("user@host") is
// rejected outright. If a port is present it must be 1-5 ASCII digits
// parsing to an integer in [1, 65534]; reg-name/IP-literal syntax of the
// host part itself is intentionally left to the routing layer, per spec.
//
// Note the upper bound is 65534, not 65535: this preserves the original
// validator's off-by-one behavior rather than "fixing" it to the RFC-legal
// 65535, since the calling codec may already depend on the existing bound.
func Host(v string) header.Verdict {
	if strings.ContainsRune(v, '@') {
		return header.Rejected(reason.InvalidHost)
	}

	hostPart := v
	portPart := ""
	hasPort := false
	if i := strings.IndexByte(v, ':'); i >= 0 {
		hostPart = v[:i]
		portPart = v[i+1:]
		hasPort = true
	}

	if hostPart == "" {
		return header.Rejected(reason.InvalidHost)
	}

	if hasPort {
		if len(portPart) == 0 || len(portPart) > 5 {
			return header.Rejected(reason.InvalidHost)
		}
		port := 0
		for i := 0; i < len(portPart); i++ {
			c := portPart[i]
			if c < '0' || c > '9' {
				return header.Rejected(reason.InvalidHost)
			}
			port = port*10 + int(c-'0')
		}
		if port < 1 || port > 65534 {
			return header.Rejected(reason.InvalidHost)
		}
	}

	return header.Accepted
}
