package discovery

import (
	"errors"
	"reflect"
	"strings"

	"github.com/exturl/exturl/internal/urlerr"
)

const (
	// ConventionTypeName is the simple name a convention based handler
	// implementation must have.
	ConventionTypeName = "Handler"

	// BuiltinPackagePrefix is the namespace reserved for the builtin
	// handlers of the platform. Convention based implementations must
	// not claim it.
	BuiltinPackagePrefix = "net/url"
)

// Convention violations are unrecoverable configuration errors. They
// are reported once at construction time and never retried.
var (
	ErrNotTopLevel    = errors.New("handler implementation must be a named top level type")
	ErrWrongTypeName  = errors.New("handler implementation has a wrong type name")
	ErrBadNamespace   = errors.New("handler implementation is in a forbidden namespace")
	ErrEmptyNamespace = errors.New("handler implementation must not be in the root namespace")
)

// CheckConvention validates a handler implementation described by its
// simple type name and its namespace (package path).
func CheckConvention(typeName, namespace string) error {
	if typeName == "" {
		return urlerr.New(ErrNotTopLevel, nil, "the type has no name")
	}
	if typeName != ConventionTypeName {
		return urlerr.New(ErrWrongTypeName, nil, "the type must be named %q, actual: %q", ConventionTypeName, typeName)
	}
	if namespace == "" {
		return urlerr.New(ErrEmptyNamespace, nil, "the type %q has no namespace", typeName)
	}
	if namespace == BuiltinPackagePrefix || strings.HasPrefix(namespace, BuiltinPackagePrefix+"/") {
		return urlerr.New(ErrBadNamespace, nil, "the namespace %q is reserved for builtin handlers", namespace)
	}
	return nil
}

// ValidateConvention validates a handler implementation type via
// reflection. Unnamed types, such as anonymous structs, fail the top
// level check because they cannot name a scheme.
func ValidateConvention(t reflect.Type) error {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return urlerr.New(ErrNotTopLevel, nil, "the implementation type is unknown")
	}
	return CheckConvention(t.Name(), t.PkgPath())
}

// SchemeOf derives the scheme name from a namespace: its last segment.
func SchemeOf(namespace string) string {
	if i := strings.LastIndexByte(namespace, '/'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// ParentOf returns the namespace one level up, or an empty string if
// there is no parent. The parent is what gets advertised for handler
// search.
func ParentOf(namespace string) string {
	if i := strings.LastIndexByte(namespace, '/'); i >= 0 {
		return namespace[:i]
	}
	return ""
}

// DeriveScheme validates impl against the handler conventions, derives
// the scheme name from its namespace, and records the parent namespace
// in cfg for discovery.
func DeriveScheme(impl interface{}, cfg *Config) (string, error) {
	t := reflect.TypeOf(impl)
	if err := ValidateConvention(t); err != nil {
		return "", err
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	namespace := t.PkgPath()

	if cfg != nil {
		cfg.Append(ParentOf(namespace))
	}
	return SchemeOf(namespace), nil
}
