package uhv

import (
	"github.com/rs/zerolog"

	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/logging"
	"github.com/azwaf/uhv/uhvconfig"
)

// Factory builds a Validator for each new stream (spec §6). It holds only
// the immutable configuration and a base logger; Create allocates a fresh
// Validator per call, so a Factory is safe for concurrent use even though
// the Validators it returns are not.
type Factory struct {
	cfg     uhvconfig.Config
	baseLog zerolog.Logger
}

// NewFactory builds a Factory from a loaded configuration and the base
// logger every stream's sub-logger derives from.
func NewFactory(cfg uhvconfig.Config, baseLog zerolog.Logger) *Factory {
	return &Factory{cfg: cfg, baseLog: baseLog}
}

// Create returns the Validator for protocol, tagged with txID for logging.
// HTTP2 gets the HTTP/2 validator; HTTP1 and HTTP09 share the HTTP/1.1
// validator; anything else gets the null validator, matching the upstream
// factory's protocol switch.
func (f *Factory) Create(protocol header.Protocol, txID string) (Validator, error) {
	switch protocol {
	case header.HTTP2:
		return newHTTP2Validator(f.cfg, logging.NewStreamLogger(f.baseLog, txID))
	case header.HTTP1, header.HTTP09:
		return newHTTP1Validator(f.cfg, logging.NewStreamLogger(f.baseLog, txID))
	default:
		return nullValidator{}, nil
	}
}
