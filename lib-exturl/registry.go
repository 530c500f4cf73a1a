package exturl

import (
	"sort"
	"sync"

	"github.com/exturl/exturl/internal/urlerr"
)

// Registry is the process wide lookup from URL scheme to Handler.
//
// Only one handler per scheme may be registered; registering the same
// scheme twice is a caller error.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]*Handler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]*Handler)}
}

// DefaultRegistry is the registry used by the package level functions.
var DefaultRegistry = NewRegistry()

// Register adds h under its scheme. It fails with ErrDuplicateScheme
// if the scheme already has a handler.
func (r *Registry) Register(h *Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[h.Scheme()]; ok {
		return urlerr.New(ErrDuplicateScheme, nil, "scheme %q", h.Scheme())
	}
	r.handlers[h.Scheme()] = h
	return nil
}

// Lookup returns the handler for scheme, or nil if none is registered.
func (r *Registry) Lookup(scheme string) *Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.handlers[scheme]
}

// Schemes returns the registered schemes in sorted order.
func (r *Registry) Schemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ss := make([]string, 0, len(r.handlers))
	for s := range r.handlers {
		ss = append(ss, s)
	}
	sort.Strings(ss)
	return ss
}

// FactoryCount returns how many factories the handler of scheme has,
// or 0 if the scheme is not registered.
func (r *Registry) FactoryCount(scheme string) int {
	if h := r.Lookup(scheme); h != nil {
		return h.FactoryCount()
	}
	return 0
}

// OpenConnection parses rawURL, looks its scheme up, and dispatches.
func (r *Registry) OpenConnection(rawURL string) (Connection, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, urlerr.New(ErrMissingScheme, nil, "%q", rawURL)
	}

	h := r.Lookup(u.Scheme)
	if h == nil {
		return nil, urlerr.New(ErrUnsupportedScheme, nil, "%q", u.Scheme)
	}
	return h.OpenConnection(u)
}

// Register adds h to the DefaultRegistry.
func Register(h *Handler) error {
	return DefaultRegistry.Register(h)
}

// Lookup finds a handler in the DefaultRegistry.
func Lookup(scheme string) *Handler {
	return DefaultRegistry.Lookup(scheme)
}

// OpenConnection opens rawURL via the DefaultRegistry.
func OpenConnection(rawURL string) (Connection, error) {
	return DefaultRegistry.OpenConnection(rawURL)
}
