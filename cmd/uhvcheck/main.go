// Command uhvcheck assembles a Factory from a config file and runs a single
// synthetic request through it, printing the resulting verdict. It exists
// as a quick way to exercise the validator against a crafted header set
// without standing up a proxy.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/azwaf/uhv/header"
	"github.com/azwaf/uhv/uhv"
	"github.com/azwaf/uhv/uhvconfig"
)

func main() {
	logLevel := flag.String("loglevel", "error", "sets log level. Can be one of: debug, info, warn, error, fatal, panic.")
	configFile := flag.String("config", "", "if set, load validator configuration from this YAML file; otherwise all-defaults-off is used")
	protocolArg := flag.String("protocol", "h1", "protocol of the synthetic request: h09, h1, h2, other")
	headerArgs := flag.String("headers", ":method=GET,:path=/,host=envoy.com", "comma-separated name=value pairs making up the request header map")
	flag.Parse()

	loglevel, _ := zerolog.ParseLevel(*logLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(loglevel).With().Timestamp().Logger()

	cfg := uhvconfig.Config{}
	if *configFile != "" {
		var err error
		cfg, err = uhvconfig.Load(*configFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("Error while loading validator configuration")
		}
	}

	protocol, err := parseProtocol(*protocolArg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error while parsing protocol")
	}

	m, err := parseHeaders(*headerArgs)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error while parsing headers")
	}

	f := uhv.NewFactory(cfg, logger)
	v, err := f.Create(protocol, "uhvcheck")
	if err != nil {
		logger.Fatal().Err(err).Msg("Error while creating validator")
	}

	verdict := v.ValidateRequestHeaderMap(&m)
	switch verdict.Status {
	case header.Accept:
		fmt.Println("accept")
	case header.Reject:
		fmt.Printf("reject: %s\n", verdict.Detail)
		os.Exit(1)
	case header.Redirect:
		path, _ := m.Get(":path")
		fmt.Printf("redirect: %s (rewritten path %s)\n", verdict.Detail, path)
	}
}

func parseProtocol(s string) (header.Protocol, error) {
	switch strings.ToLower(s) {
	case "h09", "http09", "http/0.9":
		return header.HTTP09, nil
	case "h1", "http1", "http/1.1":
		return header.HTTP1, nil
	case "h2", "http2", "http/2":
		return header.HTTP2, nil
	case "other":
		return header.Other, nil
	default:
		return header.Other, fmt.Errorf("unrecognized protocol %q", s)
	}
}

func parseHeaders(s string) (header.Map, error) {
	var m header.Map
	if s == "" {
		return m, nil
	}
	for _, pair := range strings.Split(s, ",") {
		i := strings.IndexByte(pair, '=')
		if i < 0 {
			return m, fmt.Errorf("malformed header pair %q, expected name=value", pair)
		}
		m.Entries = append(m.Entries, header.Entry{Name: pair[:i], Value: pair[i+1:]})
	}
	return m, nil
}
