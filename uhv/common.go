package uhv

import (
	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/logging"
	"github.com/azwaf/uhv/pathnormalizer"
	"github.com/azwaf/uhv/reason"
	"github.com/azwaf/uhv/uhvconfig"
	"github.com/azwaf/uhv/validation"
)

// base holds the primitives and configuration shared between the HTTP/1.1
// and HTTP/2 validators, mirroring how the RFC guidance for most of these
// checks does not vary by codec version.
type base struct {
	cfg      uhvconfig.Config
	pathOpts pathnormalizer.Options
	log      logging.StreamLogger
}

func newBase(cfg uhvconfig.Config, log logging.StreamLogger) (base, error) {
	opts, err := cfg.PathNormalization.ToOptions()
	if err != nil {
		return base{}, err
	}
	return base{cfg: cfg, pathOpts: opts, log: log}, nil
}

func (b base) validateMethod(v string) header.Verdict {
	return validation.Method(v, b.cfg.RestrictHTTPMethods)
}

func (b base) validateStatus(mode validation.StatusMode, v string) header.Verdict {
	return validation.Status(v, mode)
}

func (b base) validateGenericHeaderName(name string) header.Verdict {
	return validation.GenericHeaderName(name, b.cfg.RejectHeadersWithUnderscores)
}

func (b base) validateGenericHeaderValue(v string) header.Verdict {
	return validation.GenericHeaderValue(v)
}

func (b base) validateContentLength(v string) header.Verdict {
	return validation.ContentLength(v)
}

func (b base) validateScheme(v string) header.Verdict {
	return validation.Scheme(v)
}

func (b base) validateHost(v string) header.Verdict {
	return validation.Host(v)
}

func (b base) validateGenericPath(v string) header.Verdict {
	return validation.GenericPath(v)
}

// normalizePath runs the path normalizer unless configured off or the path
// is not origin-form (doesn't start with '/'), and mutates m's :path entry
// in place on Accept or Redirect.
func (b base) normalizePath(m *header.Map, path string) header.Verdict {
	if b.pathOpts.SkipNormalization || path == "" || path[0] != '/' {
		return header.Accepted
	}
	v, rewritten := pathnormalizer.Normalize(path, b.pathOpts)
	if v.Status != header.Reject {
		m.Set(":path", rewritten)
	}
	return v
}

// requirePseudo rejects if name is missing or empty in m.
func requirePseudo(m *header.Map, name string) header.Verdict {
	v, ok := m.Get(name)
	if !ok || v == "" {
		return header.Rejected(reason.InvalidPseudoHeader)
	}
	return header.Accepted
}

// iterateEntries walks m in order, calling validate on every entry.
// Iteration stops at the first Reject or Redirect, matching the
// first-failure-wins ordering guarantee (spec §5).
func iterateEntries(m *header.Map, validate func(name, value string) header.Verdict) header.Verdict {
	for _, e := range m.Entries {
		if v := validate(e.Name, e.Value); v.Status != header.Accept {
			return v
		}
	}
	return header.Accepted
}
