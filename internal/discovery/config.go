// Package discovery holds the handler discovery configuration and the
// naming conventions for handler implementations.
//
// Handler implementations are searched under a set of namespaces
// (Go package paths). The set used to live in a process wide property;
// it is now an explicit Config owned by whoever performs the search.
package discovery

import (
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

const (
	// EnvName is the environment variable listing namespaces to search
	// for handler implementations, separated by NamespaceSeparator.
	EnvName = "EXTURL_HANDLER_NAMESPACES"

	// NamespaceSeparator joins namespaces in EnvName and in the string
	// form of a Config.
	NamespaceSeparator = "|"
)

// Config is the ordered set of namespaces that may contain handler
// implementations. Append is de-duplicating, and nothing is ever
// removed during the process lifetime.
type Config struct {
	mu         sync.Mutex
	namespaces []string
}

// NewConfig creates a Config from the given namespaces.
func NewConfig(namespaces ...string) *Config {
	c := &Config{}
	for _, ns := range namespaces {
		c.Append(ns)
	}
	return c
}

// FromEnv creates a Config from the EnvName environment variable.
func FromEnv() *Config {
	return NewConfig(strings.Split(os.Getenv(EnvName), NamespaceSeparator)...)
}

type fileConfig struct {
	Namespaces []string `toml:"namespaces"`
}

// LoadFile creates a Config from a TOML file holding a `namespaces`
// string array.
func LoadFile(path string) (*Config, error) {
	var f fileConfig
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, err
	}
	return NewConfig(f.Namespaces...), nil
}

// Append adds a namespace to the search set unless it is empty or
// already present.
func (c *Config) Append(namespace string) {
	if namespace == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ns := range c.namespaces {
		if ns == namespace {
			return
		}
	}
	c.namespaces = append(c.namespaces, namespace)
}

// Namespaces returns a copy of the search set in append order.
func (c *Config) Namespaces() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.namespaces...)
}

// String returns the search set joined with NamespaceSeparator, the
// same form EnvName uses.
func (c *Config) String() string {
	return strings.Join(c.Namespaces(), NamespaceSeparator)
}
