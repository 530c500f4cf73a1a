// internal is internal packages for exturl.
//
// Internal packages do not depend on each other.
// Dependencies to other packages are implemented as an interface like
// endpoint.Registry.
//
// The urlerr package and the meta package are exception cases for this
// rule. These are used by the other packages.
package internal
