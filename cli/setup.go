package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mwantia/cmdargs/catalog"
	"github.com/mwantia/cmdargs/cmd"
	"github.com/mwantia/cmdargs/cmd/builtin"
	"github.com/mwantia/cmdargs/log"
)

func newLogger(cfg *Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return log.New(log.Config{
		Name:       "cmdargs",
		Level:      level,
		File:       cfg.LogFile,
		Writer:     os.Stderr,
		NoTerminal: true,
		JSON:       cfg.LogJSON,
	}), nil
}

// newManager registers the builtins followed by every catalog command found
// in the configured files and Consul prefix.
func newManager(ctx context.Context, cfg *Config, logger *log.Logger) (*cmd.Manager, error) {
	m, err := cmd.NewManager(cmd.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	if err := builtin.InitBuiltin(m); err != nil {
		return nil, fmt.Errorf("failed to register builtin commands: %w", err)
	}

	if len(cfg.Catalog) > 0 {
		schemas, err := catalog.NewLoader(logger).LoadFiles(ctx, cfg.Catalog...)
		if err != nil {
			return nil, err
		}
		if err := catalog.Register(m, schemas); err != nil {
			return nil, err
		}
	}

	if cfg.Consul.Address != "" {
		source, err := catalog.NewConsulSource(&catalog.ConsulSourceConfig{
			Address:    cfg.Consul.Address,
			Token:      cfg.Consul.Token,
			Datacenter: cfg.Consul.Datacenter,
			Prefix:     cfg.Consul.Prefix,
			Logger:     logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create consul source: %w", err)
		}

		schemas, err := source.Load(ctx)
		if err != nil {
			return nil, err
		}
		if err := catalog.Register(m, schemas); err != nil {
			return nil, err
		}
	}

	return m, nil
}
