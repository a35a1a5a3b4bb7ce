// Package logging bridges UHV's verdicts to structured zerolog output, the
// way azwaf's own logging package bridges SecRule/WAF results to a
// customer-facing log entry: a small wrapper type holding a zerolog.Logger,
// which the factory derives afresh for each stream.
package logging

import (
	"github.com/rs/zerolog"

	"github.com/azwaf/uhv/header"
)

// StreamLogger logs the validation outcome for one stream. NewStreamLogger
// derives it from the factory's base logger plus a transaction ID, the way
// azwaf/grpc.StartServer derives a per-request sub-logger via
// logger.With().Str("txid", ...).
type StreamLogger struct {
	logger zerolog.Logger
}

// NewStreamLogger derives a per-stream logger tagged with txID.
func NewStreamLogger(base zerolog.Logger, txID string) StreamLogger {
	return StreamLogger{logger: base.With().Str("txid", txID).Logger()}
}

// EntryRejected logs a single header entry rejection at debug level.
func (l StreamLogger) EntryRejected(name, value, detail string) {
	l.logger.Debug().
		Str("header", name).
		Str("value", value).
		Str("detail", detail).
		Msg("header entry rejected")
}

// MapVerdict logs the outcome of a full header-map validation.
func (l StreamLogger) MapVerdict(v header.Verdict) {
	switch v.Status {
	case header.Accept:
		l.logger.Debug().Msg("header map accepted")
	case header.Redirect:
		l.logger.Info().Str("detail", v.Detail).Msg("header map redirected")
	case header.Reject:
		l.logger.Info().Str("detail", v.Detail).Msg("header map rejected")
	}
}

// NullStreamLogger returns a StreamLogger that discards everything, used
// when building validators in tests. The null validator holds no logger.
func NullStreamLogger() StreamLogger {
	return StreamLogger{logger: zerolog.Nop()}
}
