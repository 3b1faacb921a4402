package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/consul/api"
	"github.com/mwantia/cmdargs/log"
)

type kvLister interface {
	List(prefix string, q *api.QueryOptions) (api.KVPairs, *api.QueryMeta, error)
}

// ConsulSource reads schema files stored as values below a Consul KV prefix.
// Every value holds the content of one schema file.
type ConsulSource struct {
	kv     kvLister
	logger *log.Logger

	config *ConsulSourceConfig
}

// ConsulSourceConfig contains configuration options for the Consul source
type ConsulSourceConfig struct {
	// Address of the Consul server (default: "127.0.0.1:8500")
	Address string

	// Token for Consul ACL authentication (optional)
	Token string

	// Datacenter to use (optional)
	Datacenter string

	// Namespace for Consul Enterprise (optional)
	Namespace string

	// Prefix listed for schema values (default: "cmdargs/commands/")
	Prefix string

	Logger *log.Logger
}

func NewConsulSource(config *ConsulSourceConfig) (*ConsulSource, error) {
	if config == nil {
		config = &ConsulSourceConfig{}
	}

	if config.Address == "" {
		config.Address = "127.0.0.1:8500"
	}
	if config.Prefix == "" {
		config.Prefix = "cmdargs/commands/"
	}

	clientConfig := api.DefaultConfig()
	clientConfig.Address = config.Address
	if config.Token != "" {
		clientConfig.Token = config.Token
	}
	if config.Datacenter != "" {
		clientConfig.Datacenter = config.Datacenter
	}
	if config.Namespace != "" {
		clientConfig.Namespace = config.Namespace
	}

	client, err := api.NewClient(clientConfig)
	if err != nil {
		return nil, err
	}

	return newConsulSource(client.KV(), config), nil
}

func newConsulSource(kv kvLister, config *ConsulSourceConfig) *ConsulSource {
	logger := config.Logger
	if logger == nil {
		logger = log.Nop()
	}
	return &ConsulSource{
		kv:     kv,
		logger: logger.Named("consul"),
		config: config,
	}
}

// Load lists the configured prefix and decodes every value found.
func (cs *ConsulSource) Load(ctx context.Context) ([]*Schema, error) {
	pairs, _, err := cs.kv.List(cs.config.Prefix, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", cs.config.Prefix, err)
	}

	var schemas []*Schema
	seen := make(map[string]string)
	for _, pair := range pairs {
		if pair == nil || strings.HasSuffix(pair.Key, "/") || len(pair.Value) == 0 {
			continue
		}

		decoded, err := Decode(pair.Key, pair.Value)
		if err != nil {
			return nil, err
		}
		if schemas, err = merge(schemas, seen, decoded); err != nil {
			return nil, err
		}
	}

	cs.logger.Debug("Loaded %d command schemas below %s", len(schemas), cs.config.Prefix)
	return schemas, nil
}
