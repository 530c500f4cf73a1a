package exturl

import (
	"hash/fnv"
	"net/url"
	"strings"

	"github.com/exturl/exturl/internal/subproto"
	"github.com/exturl/exturl/internal/urlerr"
)

// URL is a resource locator that may carry a sub-protocol chain, like
// "jdbc:mysql://localhost:3307/mydb".
type URL url.URL

// ParseURL parses string as a URL.
//
// When the scheme embeds a sub-protocol chain, the raw spec is first
// rewritten into the canonical single scheme form carrying the chain
// as the "_sp" matrix parameter, and the rewritten spec is handed to
// the platform parser. "jdbc:mysql://localhost/mydb?charset=UTF-8#top"
// parses the same as "jdbc://localhost/mydb;_sp=mysql?charset=UTF-8#top".
//
// Parsing an already canonical spec is a no-op rewrite, so re-parsing
// the String form of a parsed URL gives back an equal URL.
func ParseURL(s string) (*URL, error) {
	u, err := url.Parse(normalizeSpec(s))
	if err != nil {
		return nil, urlerr.New(ErrInvalidURL, err, "")
	}
	return (*URL)(u), nil
}

// normalizeSpec applies the sub-protocol rewrite to a raw spec if its
// scheme embeds a chain. Malformed specs are returned unchanged and
// left to the platform parser.
func normalizeSpec(spec string) string {
	start := strings.IndexByte(spec, ':') + 1
	if start <= 0 {
		return spec
	}

	limit := len(spec)
	if f := strings.IndexByte(spec, '#'); f >= 0 {
		limit = f
	}

	// The chain sits between the scheme colon and the first "://". A
	// "://" at or before the scheme colon, or inside the fragment,
	// means there is no sub-protocol.
	end := strings.Index(spec, "://")
	if end <= start || end >= limit {
		return spec
	}

	return subproto.RewriteSpec(spec[:start-1], spec, start, end, limit) + spec[limit:]
}

// ToURL converts the URL to *url.URL in the standard library.
func (u *URL) ToURL() *url.URL {
	return (*url.URL)(u)
}

// SubProtocols returns the sub-protocol chain of the URL, in their
// original order. It returns an empty slice, never nil, if the URL has
// no sub-protocol.
//
// The chain is read from the "_sp" matrix parameter of a canonical
// URL. For a URL that was built without the rewrite, such as a raw
// &url.URL{Scheme: "jdbc", Opaque: "mysql://..."}, the chain is
// recovered from the opaque part instead.
func (u *URL) SubProtocols() []string {
	if s := subproto.LastMatrix(u.Path, subproto.MatrixName); len(s) > 0 {
		return s
	}

	if i := strings.Index(u.Opaque, "://"); i > 0 {
		if s := subproto.Split(u.Opaque[:i]); len(s) > 0 {
			return s
		}
	}

	return []string{}
}

// ResolvePath returns the application visible path of the URL, with the
// matrix parameters stripped.
func (u *URL) ResolvePath() string {
	return subproto.TrimMatrix(u.Path)
}

// ResolveAuthority returns the authority part of the URL, including
// the user information if any.
func (u *URL) ResolveAuthority() string {
	host := u.Host
	if u.User != nil {
		return u.User.String() + "@" + host
	}
	return host
}

// Canonical returns the canonical form of the URL. A URL parsed by
// ParseURL is canonical already; a URL built by hand around an opaque
// composite form is rewritten first.
func (u *URL) Canonical() *URL {
	if !strings.Contains(u.Opaque, "://") {
		return u
	}

	c, err := ParseURL(u.ToURL().String())
	if err != nil {
		return u
	}
	return c
}

// String returns the canonical string form of the URL. Equal URLs have
// byte-identical String forms, and the form is what Equal and Hash are
// defined over.
func (u *URL) String() string {
	return u.Canonical().ToURL().String()
}

// Equal reports whether two URLs are the same locator. URLs compare by
// canonical string form, not field by field, because canonicalization
// moves sub-protocol information that raw fields would miss.
func Equal(a, b *URL) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

// Hash returns a hash of the canonical string form. Equal URLs always
// hash the same, a nil URL included.
func Hash(u *URL) uint64 {
	h := fnv.New64a()
	if u != nil {
		h.Write([]byte(u.String()))
	}
	return h.Sum64()
}

// HostsEqual reports whether two URLs point at the same host, by raw
// textual comparison. There is no DNS resolution and no case folding.
func HostsEqual(a, b *URL) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ToURL().Hostname() == b.ToURL().Hostname()
}
