package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// ClientConfig configures the command-line client.
type ClientConfig struct {
	// HTTPAddress is the base address of the account service, with or
	// without scheme (e.g. "localhost:8080", "https://accounts.example.com").
	// Env: CLIENT_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request made by the client.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig merges CLIENT_* environment variables with flags parsed
// from args and returns the positional arguments left after the flags.
// Flags override environment variables.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := new(ClientConfig)
	if err := env.ParseWithOptions(envCfg, env.Options{Prefix: "CLIENT_"}); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	flagCfg := new(ClientConfig)
	fs.StringVar(&flagCfg.HTTPAddress, "addr", "", "Account service address")
	fs.DurationVar(&flagCfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := &ClientConfig{
		HTTPAddress:    DefaultHTTPAddress,
		RequestTimeout: 10 * time.Second,
	}
	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, errors.Join(err, fmt.Errorf("address=%q timeout=%s", cfg.HTTPAddress, cfg.RequestTimeout))
	}

	return cfg, fs.Args(), nil
}
