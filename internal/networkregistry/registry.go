// Package networkregistry resolves chain ids to the network descriptors the
// bridge can connect to.
//
// Descriptors are a JSON object keyed by decimal chain id:
//
//	{"11155111": {"chainId": 11155111, "name": "Sepolia", "rpcUrl": "https://sepolia.infura.io/v3/{INFURA_API_KEY}"}}
//
// A built-in set is embedded in the binary and may be replaced with a file.
// RPC URL templates may carry provider placeholders that are filled from
// Secrets when a network is resolved.
package networkregistry

import (
	"cmp"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/gabapcia/walletbridge/internal/pkg/validator"
)

// DefaultChainID is the network used when nothing else is configured.
const DefaultChainID uint64 = 11155111

// Placeholder tokens recognized in RPC URL templates.
const (
	InfuraPlaceholder     = "{INFURA_API_KEY}"
	AlchemyPlaceholder    = "{ALCHEMY_API_KEY}"
	ChainstackPlaceholder = "{CHAINSTACK_API_KEY}"
)

var (
	// ErrUnknownNetwork is returned when no descriptor exists for a chain id.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrInvalidDescriptor is returned when a descriptor set cannot be loaded.
	ErrInvalidDescriptor = errors.New("invalid network descriptor")
)

//go:embed networks.json
var defaultDescriptors []byte

// Network is a resolved network descriptor. Values are never mutated after
// Resolve returns them.
type Network struct {
	ChainID        uint64 `json:"chainId" validate:"gt=0"`
	Name           string `json:"name" validate:"required"`
	RPCURLTemplate string `json:"rpcUrl" validate:"required,rpcurl"`

	// RPCURL is the template with every placeholder that had a secret
	// substituted. Tokens without a secret are left as is.
	RPCURL string `json:"-"`
}

// Secrets holds the provider API keys used to fill URL templates.
type Secrets struct {
	InfuraAPIKey     string
	AlchemyAPIKey    string
	ChainstackAPIKey string
}

// Registry looks networks up by chain id.
type Registry interface {
	// Resolve returns the descriptor for chainID with its RPC URL filled in,
	// or ErrUnknownNetwork.
	Resolve(chainID uint64) (Network, error)

	// List returns every known network resolved, ordered by chain id.
	List() []Network
}

type config struct {
	source  io.Reader
	secrets Secrets
}

// Option configures New.
type Option func(*config)

// WithDescriptors replaces the embedded descriptor set with the JSON read
// from r.
func WithDescriptors(r io.Reader) Option {
	return func(c *config) {
		c.source = r
	}
}

// WithSecrets sets the provider keys used for placeholder substitution.
func WithSecrets(s Secrets) Option {
	return func(c *config) {
		c.secrets = s
	}
}

type registry struct {
	networks map[string]Network
	replacer *strings.Replacer
}

var _ Registry = (*registry)(nil)

// New loads and validates a descriptor set.
func New(opts ...Option) (*registry, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	raw := defaultDescriptors
	if cfg.source != nil {
		b, err := io.ReadAll(cfg.source)
		if err != nil {
			return nil, fmt.Errorf("read network descriptors: %w", err)
		}
		raw = b
	}

	networks, err := parseDescriptors(raw)
	if err != nil {
		return nil, err
	}

	return &registry{
		networks: networks,
		replacer: newReplacer(cfg.secrets),
	}, nil
}

// NewFromFile is New with the descriptors read from path. An empty path keeps
// the embedded set.
func NewFromFile(path string, opts ...Option) (*registry, error) {
	if path == "" {
		return New(opts...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open network descriptors: %w", err)
	}
	defer f.Close()

	return New(append(opts, WithDescriptors(f))...)
}

func parseDescriptors(raw []byte) (map[string]Network, error) {
	var networks map[string]Network
	if err := json.Unmarshal(raw, &networks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}

	if len(networks) == 0 {
		return nil, fmt.Errorf("%w: no networks defined", ErrInvalidDescriptor)
	}

	var errs []error
	for key, network := range networks {
		if err := validator.Validate(network); err != nil {
			errs = append(errs, fmt.Errorf("network %q: %w", key, err))
			continue
		}

		if key != strconv.FormatUint(network.ChainID, 10) {
			errs = append(errs, fmt.Errorf("network %q: key does not match chainId %d", key, network.ChainID))
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrInvalidDescriptor}, errs...)...)
	}

	return networks, nil
}

// newReplacer only substitutes placeholders whose secret is set.
func newReplacer(s Secrets) *strings.Replacer {
	var pairs []string
	for token, secret := range map[string]string{
		InfuraPlaceholder:     s.InfuraAPIKey,
		AlchemyPlaceholder:    s.AlchemyAPIKey,
		ChainstackPlaceholder: s.ChainstackAPIKey,
	} {
		if secret != "" {
			pairs = append(pairs, token, secret)
		}
	}

	return strings.NewReplacer(pairs...)
}

func (r *registry) resolve(n Network) Network {
	n.RPCURL = r.replacer.Replace(n.RPCURLTemplate)
	return n
}

func (r *registry) Resolve(chainID uint64) (Network, error) {
	n, ok := r.networks[strconv.FormatUint(chainID, 10)]
	if !ok {
		return Network{}, fmt.Errorf("%w: chain id %d", ErrUnknownNetwork, chainID)
	}

	return r.resolve(n), nil
}

func (r *registry) List() []Network {
	list := make([]Network, 0, len(r.networks))
	for n := range maps.Values(r.networks) {
		list = append(list, r.resolve(n))
	}

	slices.SortFunc(list, func(a, b Network) int {
		return cmp.Compare(a.ChainID, b.ChainID)
	})

	return list
}
