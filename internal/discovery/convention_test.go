package discovery_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exturl/exturl/internal/discovery"
)

// Handler obeys every convention: named, top level, and outside of the
// builtin namespace.
type Handler struct{}

// NotHandler violates the type name convention.
type NotHandler struct{}

func TestCheckConvention(t *testing.T) {
	tests := []struct {
		Name      string
		TypeName  string
		Namespace string
		Err       error
	}{
		{"valid", "Handler", "github.com/acme/handlers/jdbc", nil},
		{"unnamed type", "", "github.com/acme/handlers/jdbc", discovery.ErrNotTopLevel},
		{"wrong type name", "JDBCHandler", "github.com/acme/handlers/jdbc", discovery.ErrWrongTypeName},
		{"empty namespace", "Handler", "", discovery.ErrEmptyNamespace},
		{"builtin namespace", "Handler", "net/url", discovery.ErrBadNamespace},
		{"below builtin namespace", "Handler", "net/url/jdbc", discovery.ErrBadNamespace},
		{"builtin-like prefix is fine", "Handler", "net/urlext", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			err := discovery.CheckConvention(tt.TypeName, tt.Namespace)
			if tt.Err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.Err)
			}
		})
	}
}

func TestValidateConvention(t *testing.T) {
	assert.NoError(t, discovery.ValidateConvention(reflect.TypeOf(Handler{})))
	assert.NoError(t, discovery.ValidateConvention(reflect.TypeOf(&Handler{})))

	assert.ErrorIs(t, discovery.ValidateConvention(reflect.TypeOf(struct{}{})), discovery.ErrNotTopLevel)
	assert.ErrorIs(t, discovery.ValidateConvention(nil), discovery.ErrNotTopLevel)
	assert.ErrorIs(t, discovery.ValidateConvention(reflect.TypeOf(NotHandler{})), discovery.ErrWrongTypeName)
}

func TestDeriveScheme(t *testing.T) {
	cfg := discovery.NewConfig()

	pkg := reflect.TypeOf(Handler{}).PkgPath()

	scheme, err := discovery.DeriveScheme(&Handler{}, cfg)
	require.NoError(t, err)

	assert.Equal(t, discovery.SchemeOf(pkg), scheme)
	assert.Equal(t, []string{discovery.ParentOf(pkg)}, cfg.Namespaces())

	// a second registration must not duplicate the namespace.
	_, err = discovery.DeriveScheme(Handler{}, cfg)
	require.NoError(t, err)
	assert.Len(t, cfg.Namespaces(), 1)

	_, err = discovery.DeriveScheme(struct{}{}, cfg)
	assert.ErrorIs(t, err, discovery.ErrNotTopLevel)
}

func TestSchemeOf(t *testing.T) {
	tests := []struct {
		Namespace string
		Scheme    string
		Parent    string
	}{
		{"github.com/acme/handlers/jdbc", "jdbc", "github.com/acme/handlers"},
		{"jdbc", "jdbc", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.Scheme, discovery.SchemeOf(tt.Namespace))
		assert.Equal(t, tt.Parent, discovery.ParentOf(tt.Namespace))
	}
}
