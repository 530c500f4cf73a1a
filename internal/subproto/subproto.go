// Package subproto implements the sub-protocol encoding of exturl.
//
// A URL like "jdbc:mysql://localhost/mydb" carries the sub-protocol
// "mysql" inside its scheme. Because the platform parser accepts only a
// single scheme, the chain is moved into a matrix parameter on the
// path before parsing: "jdbc://localhost/mydb;_sp=mysql".
package subproto

import (
	"strings"
)

// MatrixName is the reserved matrix parameter key that carries the
// sub-protocol chain through the platform parser.
const MatrixName = "_sp"

// Split splits a composite scheme text into sub-protocol tokens.
// Empty tokens are dropped, so "mysql" and ":mysql:" both give
// ["mysql"].
func Split(scheme string) []string {
	var tokens []string
	for _, t := range strings.Split(scheme, ":") {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// BuildMatrix serializes values into a single matrix segment like
// ";name=v1,v2". It returns an empty string if there is no value.
func BuildMatrix(name string, values []string) string {
	if name == "" || len(values) == 0 {
		return ""
	}
	return ";" + name + "=" + strings.Join(values, ",")
}

// ParseMatrix recovers matrix parameters from a path. When the same
// key appears more than once, the last occurrence wins because it is
// the one appended by the most recent rewrite pass.
func ParseMatrix(path string) map[string][]string {
	segments := strings.Split(path, ";")
	if len(segments) < 2 {
		return nil
	}

	matrix := make(map[string][]string)
	for _, seg := range segments[1:] {
		key, value, ok := strings.Cut(seg, "=")
		if !ok || key == "" {
			continue
		}
		var values []string
		for _, v := range strings.Split(value, ",") {
			if v != "" {
				values = append(values, v)
			}
		}
		matrix[key] = values
	}
	return matrix
}

// LastMatrix returns the values of the matrix parameter named name,
// or nil if the path has no such parameter.
func LastMatrix(path, name string) []string {
	return ParseMatrix(path)[name]
}

// TrimMatrix strips every matrix segment from a path, leaving the
// application visible part only.
func TrimMatrix(path string) string {
	trimmed, _, _ := strings.Cut(path, ";")
	return trimmed
}

// RewriteSpec rewrites a composite scheme spec into the single scheme
// form. scheme is the outer scheme text, start the index just past the
// outer scheme colon, end the index of the first "://", and limit the
// end of the parseable region (the end of spec, or the start of the
// fragment).
//
// The text between start and end is the colon delimited sub-protocol
// chain. It is encoded as a matrix parameter and inserted just before
// the query marker, or appended at the end if the spec has no query.
// When end <= start there is no sub-protocol and spec is returned
// unchanged.
func RewriteSpec(scheme, spec string, start, end, limit int) string {
	if end <= start {
		return spec
	}

	tokens := Split(spec[start:end])
	if len(tokens) == 0 {
		return spec
	}
	matrix := BuildMatrix(MatrixName, tokens)

	rewritten := scheme + spec[end:limit]

	// The query marker is located on the rewritten buffer, not on the
	// original spec. The scheme is shorter than the prefix it replaces,
	// so an offset taken from the original text would skip past markers
	// near the authority.
	at := len(rewritten)
	if i := strings.Index(rewritten[len(scheme):], "?"); i >= 0 {
		at = len(scheme) + i
	}

	// The matrix belongs to the path component. If there is no path
	// before the insertion point, the matrix would leak into the
	// authority when the result is parsed, so a root path is opened
	// first.
	if !strings.Contains(rewritten[len(scheme)+3:at], "/") {
		matrix = "/" + matrix
	}

	return rewritten[:at] + matrix + rewritten[at:]
}
