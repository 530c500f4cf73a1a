package exturl_test

import (
	"errors"
	"testing"

	"github.com/exturl/exturl/internal/discovery"
	exturl "github.com/exturl/exturl/lib-exturl"
)

func TestNewConventionHandler_violations(t *testing.T) {
	disc := exturl.NewDiscoveryConfig()

	// anonymous types cannot name a scheme; this is the Go shape of a
	// handler type nested somewhere it does not belong.
	_, err := exturl.NewConventionHandler(struct{}{}, disc, exturl.HandlerConfig{})
	if !errors.Is(err, discovery.ErrNotTopLevel) {
		t.Errorf("expected ErrNotTopLevel but got %v", err)
	}

	// a convention handler must not set the scheme explicitly.
	_, err = exturl.NewConventionHandler(struct{}{}, disc, exturl.HandlerConfig{Scheme: "jdbc"})
	if !errors.Is(err, exturl.ErrInvalidScheme) {
		t.Errorf("expected ErrInvalidScheme but got %v", err)
	}

	if got := disc.Namespaces(); len(got) != 0 {
		t.Errorf("a failed registration must not advertise namespaces, but got %v", got)
	}
}
