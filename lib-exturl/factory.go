package exturl

import (
	"io"

	"github.com/google/uuid"
)

// ProxyType is how a Proxy reaches the target.
type ProxyType int

const (
	ProxyDirect ProxyType = iota
	ProxyHTTP
	ProxySOCKS
)

// Proxy describes the proxy through which a connection will be made.
type Proxy struct {
	Type    ProxyType
	Address string
}

// NoProxy means a direct connection without any proxy.
var NoProxy = &Proxy{Type: ProxyDirect}

// Connection is an open transport connection for a URL.
//
// Opening is synchronous and not cancellable by this layer; timeout
// and cancellation belong to the connection itself.
type Connection interface {
	io.Closer

	// URL returns the URL this connection was opened for.
	URL() *URL

	// ID returns the identifier of this connection, for logging.
	ID() uuid.UUID
}

// ConnectionInfo is a ready made Connection core that factories can
// embed into their connection types.
type ConnectionInfo struct {
	url *URL
	id  uuid.UUID
}

// NewConnectionInfo assigns a fresh connection ID for u.
func NewConnectionInfo(u *URL) ConnectionInfo {
	return ConnectionInfo{url: u, id: uuid.New()}
}

func (c ConnectionInfo) URL() *URL {
	return c.url
}

func (c ConnectionInfo) ID() uuid.UUID {
	return c.id
}

// ConnectionFactory opens connections for the sub-protocols it knows.
//
// Factories are owned by exactly one Handler, created before the
// handler and never mutated afterwards.
type ConnectionFactory interface {
	// Priority orders factories inside a handler. Lower values are
	// probed first; ties keep their registration order.
	Priority() int

	// Supports reports whether this factory applies to the URL and its
	// sub-protocol chain. It must be a pure predicate.
	Supports(u *URL, subProtocols []string) bool

	// Create opens a connection, or returns (nil, nil) to decline even
	// though Supports matched. Declining is not an error: dispatch
	// moves on to the next factory.
	Create(u *URL, subProtocols []string, proxy *Proxy) (Connection, error)
}
