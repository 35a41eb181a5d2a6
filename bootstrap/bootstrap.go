package bootstrap

import (
	"fmt"
	"net/http"
	"os"
	"ovis/cardmap/config"
	"ovis/cardmap/consul"
	"ovis/cardmap/topology"
	"ovis/cardmap/web"

	"github.com/rs/zerolog"
)

func Web(configFilename string) {
	cfg, err := config.Parse(configFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration problem: %s, continuing with defaults\n", err)
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	var store topology.KeyStore
	if cfg.Consul.Address != "" {
		consulStore, err := consul.New(cfg.Consul.Address, logger.With().Str("component", "consul").Logger())
		if err != nil {
			logger.Error().Err(err).Msg("cannot initialize consul gateway")
			os.Exit(1)
		}
		store = consulStore
	} else {
		logger.Warn().Msg("no consul address configured, topology queries will fail")
	}
	service := topology.NewService(store, topology.ServiceOptions{
		FlpHardwarePath: cfg.Consul.FlpHardwarePath,
		ReadoutPath:     cfg.Consul.ReadoutPath,
		QcPath:          cfg.Consul.QcPath,
		Hostname:        cfg.Consul.Hostname,
		Port:            cfg.Consul.Port,
	}, logger.With().Str("component", "topology").Logger())

	webenv := web.New(cfg, logger.With().Str("component", "web").Logger(), service)
	server := http.Server{
		Addr:    cfg.Web.Listen,
		Handler: webenv,
	}
	logger.Info().Str("addr", server.Addr).Msg("starting server")
	if err := server.ListenAndServe(); err != nil {
		logger.Error().Err(err).Msg("serve failed")
		os.Exit(1)
	}
}
