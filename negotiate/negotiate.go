// Package negotiate selects the best-matching media type from a client's
// Accept preference list against a server-offered list.
package negotiate

import "github.com/munnerz/goautoneg"

// Negotiator picks the best match for an Accept header value from an ordered
// list of offered media types. Implementations return the empty string when
// nothing is acceptable, and must be safe for concurrent use.
type Negotiator interface {
	Best(accept string, offered []string) string
}

// Func adapts a plain function to the Negotiator interface.
type Func func(accept string, offered []string) string

// Best implements Negotiator.
func (f Func) Best(accept string, offered []string) string {
	return f(accept, offered)
}

type autoNegotiator struct{}

// Default returns the standard Negotiator, which performs RFC 9110 content
// negotiation honoring quality factors and wildcards in the Accept header.
func Default() Negotiator {
	return autoNegotiator{}
}

func (autoNegotiator) Best(accept string, offered []string) string {
	return goautoneg.Negotiate(accept, offered)
}
