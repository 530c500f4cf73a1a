// Package exturl dispatches connection opening over URLs whose scheme
// embeds sub-protocols, like "jdbc:mysql://localhost:3307/mydb".
//
// A single registered scheme can support an open ended family of
// sub-protocols: the chain between the outer scheme and "://" is moved
// into the reserved "_sp" matrix parameter so the platform parser can
// consume the spec, and a priority ordered list of ConnectionFactory
// implementations decides how to open the connection.
//
// A Handler is built in two phases: fill a HandlerConfig, then call
// NewHandler, which sorts the factories and freezes them. After that
// the handler is safe for concurrent use.
package exturl
