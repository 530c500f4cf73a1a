package exturl

import (
	"github.com/exturl/exturl/internal/discovery"
	"github.com/exturl/exturl/internal/urlerr"
)

// DiscoveryConfig is the set of namespaces that may contain handler
// implementations. It is passed explicitly to whoever performs the
// handler search instead of living in a hidden process wide property.
type DiscoveryConfig = discovery.Config

// NewDiscoveryConfig creates a DiscoveryConfig from the given
// namespaces.
func NewDiscoveryConfig(namespaces ...string) *DiscoveryConfig {
	return discovery.NewConfig(namespaces...)
}

// DiscoveryFromEnv creates a DiscoveryConfig from the
// EXTURL_HANDLER_NAMESPACES environment variable.
func DiscoveryFromEnv() *DiscoveryConfig {
	return discovery.FromEnv()
}

// NewConventionHandler builds a Handler whose scheme is derived by
// convention from the package of impl: the implementation must be a
// top level type named "Handler" outside of the builtin namespace, and
// the scheme is the last segment of its package path. The parent
// namespace is appended to disc for handler discovery.
//
// cfg.Scheme must be left empty; convention violations are fatal
// configuration errors and are never retried.
func NewConventionHandler(impl interface{}, disc *DiscoveryConfig, cfg HandlerConfig) (*Handler, error) {
	if cfg.Scheme != "" {
		return nil, urlerr.New(ErrInvalidScheme, nil, "the scheme %q must not be set explicitly on a convention handler", cfg.Scheme)
	}

	scheme, err := discovery.DeriveScheme(impl, disc)
	if err != nil {
		return nil, err
	}

	cfg.Scheme = scheme
	return NewHandler(cfg)
}
