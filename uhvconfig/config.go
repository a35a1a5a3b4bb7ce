// Package uhvconfig holds the validator configuration surface (spec §3):
// a set of booleans that all default off, plus the path-normalization
// sub-config. It is intentionally thin — the surrounding proxy is expected
// to own the broader listener/route configuration and hand UHV only this
// slice of it, the way azwaf's own top-level config.Main is a bare
// passthrough for the pieces each engine actually needs.
package uhvconfig

import (
	"fmt"
	"os"

	"github.com/azwaf/uhv/pathnormalizer"
	"gopkg.in/yaml.v3"
)

// Config is the validator configuration, enumerated in spec §3.
type Config struct {
	RestrictHTTPMethods          bool                `yaml:"restrict_http_methods"`
	RejectHeadersWithUnderscores bool                `yaml:"reject_headers_with_underscores"`
	HTTP1AllowChunkedLength      bool                `yaml:"http1_allow_chunked_length"`
	PathNormalization            PathNormalization   `yaml:"path_normalization"`
}

// PathNormalization is the path-normalizer sub-config.
type PathNormalization struct {
	SkipNormalization    bool   `yaml:"skip_normalization"`
	SkipMergingSlashes   bool   `yaml:"skip_merging_slashes"`
	EscapedSlashesAction string `yaml:"escaped_slashes_action"`
}

// ToOptions translates the YAML-facing string enum into the strongly typed
// pathnormalizer.Options the path normalizer consumes.
func (p PathNormalization) ToOptions() (pathnormalizer.Options, error) {
	opts := pathnormalizer.Options{
		SkipNormalization:  p.SkipNormalization,
		SkipMergingSlashes: p.SkipMergingSlashes,
	}

	switch p.EscapedSlashesAction {
	case "", "IMPLEMENTATION_DEFAULT":
		opts.EscapedSlashesAction = pathnormalizer.ImplementationDefault
	case "KEEP_ENCODED":
		opts.EscapedSlashesAction = pathnormalizer.KeepEncoded
	case "REJECT":
		opts.EscapedSlashesAction = pathnormalizer.Reject
	case "UNESCAPE_AND_FORWARD":
		opts.EscapedSlashesAction = pathnormalizer.UnescapeAndForward
	case "UNESCAPE_AND_REDIRECT":
		opts.EscapedSlashesAction = pathnormalizer.UnescapeAndRedirect
	default:
		return opts, fmt.Errorf("uhvconfig: unknown escaped_slashes_action %q", p.EscapedSlashesAction)
	}
	return opts, nil
}

// Load reads and parses a YAML configuration file. Callers embedding UHV
// directly in Go code are free to build a Config literal instead; Load
// exists for the standalone CLI and for proxies that keep their whole
// configuration tree in YAML.
func Load(path string) (Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("uhvconfig: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("uhvconfig: parsing %s: %w", path, err)
	}
	return c, nil
}
