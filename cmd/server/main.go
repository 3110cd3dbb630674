package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	multibank "github.com/mayowa-kalejaiye/multi-bank-integration"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg multibank.Config
	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()
	cfgfl, err := os.Open(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening config file")
	}
	if err = yaml.NewDecoder(cfgfl).Decode(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("error decoding config file")
	}

	primary, err := cfg.Primary.Build()
	if err != nil {
		logger.Fatal().Err(err).Msg("error building primary account")
	}

	svc, err := multibank.NewService(primary, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting service")
	}

	for _, lc := range cfg.Linked {
		acct, err := lc.Build()
		if err != nil {
			logger.Fatal().Err(err).Str("provider", lc.Provider).Msg("error building linked account")
		}
		if err = svc.Registry().Link(acct); err != nil {
			logger.Fatal().Err(err).Str("provider", lc.Provider).Msg("error linking account")
		}
	}

	requests := cfg.Limits.Requests
	if requests <= 0 {
		requests = 64
	}
	var wrapped multibank.Service = svc
	for _, mw := range []multibank.Middleware{
		multibank.NewLimitMiddleware(multibank.NewServiceLimits(requests)),
		multibank.NewValidationMiddleware(),
	} {
		wrapped = mw(wrapped)
	}
	hndlr := multibank.NewHTTPHandler(wrapped, &logger)

	listen := cfg.Listen
	if listen == "" {
		listen = ":3000"
	}
	logger.Info().Str("listen", listen).Msg("server starting")
	if err := http.ListenAndServe(listen, hndlr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
