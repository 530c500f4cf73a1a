package exturl

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/exturl/exturl/internal/telemetry"
	"github.com/exturl/exturl/internal/urlerr"
)

// FallbackFunc opens a connection when every factory either did not
// support the URL or declined. It may return (nil, nil) to signal that
// the URL stays unsupported.
type FallbackFunc func(u *URL, proxy *Proxy) (Connection, error)

// HandlerConfig is the first phase of building a Handler. Fill it,
// then call NewHandler.
type HandlerConfig struct {
	// Scheme is the outer URL scheme this handler owns.
	Scheme string

	// Factories are probed in ascending Priority order. Ties keep the
	// order they appear here.
	Factories []ConnectionFactory

	// Fallback, if set, runs after all factories passed. Without it an
	// unsupported URL surfaces as ErrUnsupportedURL.
	Fallback FallbackFunc

	// Logger for the dispatch path. nil means no logging.
	Logger *zerolog.Logger

	// Collector for dispatch metrics. nil means no metrics.
	Collector telemetry.Collector
}

// Handler dispatches connection opening for one URL scheme. It is
// immutable once built and safe for concurrent use.
type Handler struct {
	scheme    string
	factories []ConnectionFactory
	fallback  FallbackFunc
	log       zerolog.Logger
	collector telemetry.Collector
}

// NewHandler is the second phase of building a Handler: it validates
// the scheme, sorts the factories by priority, and freezes the result.
func NewHandler(cfg HandlerConfig) (*Handler, error) {
	if err := validateScheme(cfg.Scheme); err != nil {
		return nil, err
	}

	factories := append([]ConnectionFactory(nil), cfg.Factories...)
	sort.SliceStable(factories, func(i, j int) bool {
		return factories[i].Priority() < factories[j].Priority()
	})

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("scheme", cfg.Scheme).Logger()
	}

	collector := cfg.Collector
	if collector == nil {
		collector = telemetry.Noop()
	}

	return &Handler{
		scheme:    cfg.Scheme,
		factories: factories,
		fallback:  cfg.Fallback,
		log:       log,
		collector: collector,
	}, nil
}

func validateScheme(scheme string) error {
	if scheme == "" {
		return urlerr.New(ErrMissingScheme, nil, "a handler needs a scheme")
	}
	for i, c := range scheme {
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return urlerr.New(ErrInvalidScheme, nil, "%q is not a valid scheme", scheme)
		}
	}
	return nil
}

// Scheme returns the outer URL scheme this handler owns.
func (h *Handler) Scheme() string {
	return h.scheme
}

// FactoryCount returns how many factories this handler probes.
func (h *Handler) FactoryCount() int {
	return len(h.factories)
}

func (h *Handler) String() string {
	return fmt.Sprintf("exturl.Handler{scheme=%s, factories=%d}", h.scheme, len(h.factories))
}

// OpenConnection opens a connection for u without a proxy.
func (h *Handler) OpenConnection(u *URL) (Connection, error) {
	return h.OpenConnectionProxy(u, NoProxy)
}

// OpenConnectionProxy opens a connection for u through proxy.
//
// Factories are probed in priority order; the first one that supports
// the URL and does not decline wins. If none opens a connection the
// fallback runs, and without a fallback the call fails with
// ErrUnsupportedURL.
func (h *Handler) OpenConnectionProxy(u *URL, proxy *Proxy) (Connection, error) {
	if u == nil {
		return nil, urlerr.New(ErrInvalidURL, nil, "no URL to open")
	}
	if proxy == nil {
		proxy = NoProxy
	}

	start := time.Now()
	defer func() {
		h.collector.ObserveOpenDuration(h.scheme, time.Since(start).Seconds())
	}()

	subProtocols := u.SubProtocols()

	for _, f := range h.factories {
		if !f.Supports(u, subProtocols) {
			continue
		}

		conn, err := f.Create(u, subProtocols, proxy)
		if err != nil {
			h.collector.IncDispatch(h.scheme, telemetry.ResultError)
			h.log.Warn().Err(err).Stringer("url", u).Msg("failed to open connection")
			return nil, err
		}
		if conn == nil {
			// declined despite matching; keep probing.
			h.log.Debug().Stringer("url", u).Msg("factory declined")
			continue
		}

		h.collector.IncDispatch(h.scheme, telemetry.ResultConnected)
		h.log.Debug().Stringer("url", u).Stringer("connection", conn.ID()).Msg("connection opened")
		return conn, nil
	}

	return h.openFallbackConnection(u, proxy)
}

func (h *Handler) openFallbackConnection(u *URL, proxy *Proxy) (Connection, error) {
	if h.fallback != nil {
		conn, err := h.fallback(u, proxy)
		if err != nil {
			h.collector.IncDispatch(h.scheme, telemetry.ResultError)
			return nil, err
		}
		if conn != nil {
			h.collector.IncDispatch(h.scheme, telemetry.ResultFallback)
			h.log.Debug().Stringer("url", u).Msg("fallback connection opened")
			return conn, nil
		}
	}

	h.collector.IncDispatch(h.scheme, telemetry.ResultUnsupported)
	return nil, urlerr.New(ErrUnsupportedURL, nil, "cannot open connection for %s", u)
}
