package config

import (
	"fmt"
	"os"
)

// ClientConfig is the configuration of the command-line client together
// with the positional arguments (the command and its operands) left over
// after flag parsing.
type ClientConfig struct {
	// Adapter contains the server address, token and timeout.
	Adapter Adapter

	// Log contains logging settings.
	Log Log

	// Args holds the positional command-line arguments.
	Args []string
}

// GetClientConfig builds and validates the client configuration from the
// process environment and command-line arguments.
func GetClientConfig() (*ClientConfig, error) {
	return LoadClientConfig(os.Args[1:])
}

// LoadClientConfig builds the client configuration using args as the
// command-line arguments. Source priority matches [LoadStructuredConfig].
func LoadClientConfig(args []string) (*ClientConfig, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(parseClientFlags, args).
		withJSON().
		withDefaults()

	cfg, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Log:     cfg.Log,
		Args:    b.args,
	}

	return clientCfg, clientCfg.validate()
}
