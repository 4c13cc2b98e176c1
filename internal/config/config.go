// Package config loads the bridge settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gabapcia/walletbridge/internal/networkregistry"
	"github.com/gabapcia/walletbridge/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// ErrMissingWalletKey is returned by WalletKey when no key is configured and
// none can be prompted for.
var ErrMissingWalletKey = errors.New("WALLET_PRIVATE_KEY is not set")

// Config contains every setting read from the environment.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// WalletPrivateKey is optional here so commands that never sign can run
	// without it. Use WalletKey to read it.
	WalletPrivateKey string `envconfig:"WALLET_PRIVATE_KEY" validate:"omitempty,hexkey"`

	NetworksFile     string `envconfig:"NETWORKS_FILE" validate:"omitempty,file"`
	DefaultChainID   uint64 `envconfig:"DEFAULT_CHAIN_ID" default:"11155111" validate:"gt=0"`
	InfuraAPIKey     string `envconfig:"INFURA_API_KEY"`
	AlchemyAPIKey    string `envconfig:"ALCHEMY_API_KEY"`
	ChainstackAPIKey string `envconfig:"CHAINSTACK_API_KEY"`

	ListenAddr  string        `envconfig:"LISTEN_ADDR" default:"localhost:8545" validate:"hostname_port"`
	RPCTimeout  time.Duration `envconfig:"RPC_TIMEOUT" default:"30s" validate:"gt=0"`
	RPCRetryMax int           `envconfig:"RPC_RETRY_MAX" default:"4" validate:"gte=0"`

	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	OTELEnabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"walletbridge" validate:"required"`

	prompt func() (string, error)
}

type options struct {
	prompt func() (string, error)
}

// Option configures Load.
type Option func(*options)

// WithPrompt replaces the terminal prompt used by WalletKey.
func WithPrompt(f func() (string, error)) Option {
	return func(o *options) {
		o.prompt = f
	}
}

// Load reads and validates the configuration.
func Load(opts ...Option) (Config, error) {
	o := options{prompt: terminalPrompt(os.Stdin, os.Stderr)}
	for _, opt := range opts {
		opt(&o)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	cfg.prompt = o.prompt
	return cfg, nil
}

// Secrets returns the provider keys used to fill RPC URL templates.
func (c Config) Secrets() networkregistry.Secrets {
	return networkregistry.Secrets{
		InfuraAPIKey:     c.InfuraAPIKey,
		AlchemyAPIKey:    c.AlchemyAPIKey,
		ChainstackAPIKey: c.ChainstackAPIKey,
	}
}

// WalletKey returns the configured private key. When none is set it asks for
// one on the terminal.
func (c Config) WalletKey() (string, error) {
	if c.WalletPrivateKey != "" {
		return c.WalletPrivateKey, nil
	}
	if c.prompt == nil {
		return "", ErrMissingWalletKey
	}

	key, err := c.prompt()
	if err != nil {
		return "", err
	}

	key = strings.TrimSpace(key)
	if err := validator.Var(key, "required,hexkey"); err != nil {
		return "", err
	}
	return key, nil
}

// terminalPrompt reads the key from in without echo. It gives up with
// ErrMissingWalletKey when in is not a terminal.
func terminalPrompt(in *os.File, out io.Writer) func() (string, error) {
	return func() (string, error) {
		fd := int(in.Fd())
		if !term.IsTerminal(fd) {
			return "", ErrMissingWalletKey
		}

		_, _ = fmt.Fprint(out, "Wallet private key: ")
		raw, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read private key: %w", err)
		}

		return string(raw), nil
	}
}
