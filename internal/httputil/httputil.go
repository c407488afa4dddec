// Package httputil provides media-type helpers shared by the contract store
// and the negotiation layer.
package httputil

import (
	"mime"
	"strings"
)

// NormalizeMediaType lowers the case of a media type and strips any
// parameters (e.g. "Application/JSON; charset=utf-8" -> "application/json").
// Values that do not parse as a media type are returned lowercased and
// trimmed, so callers can still attempt an exact match.
func NormalizeMediaType(value string) string {
	parsed, _, err := mime.ParseMediaType(value)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(value))
	}
	return parsed
}

// MatchMediaType checks if a declared pattern matches a media type.
// Supports wildcards like "application/*" and "*/*". Both sides are expected
// to be normalized already.
func MatchMediaType(pattern, mediaType string) bool {
	if pattern == "*/*" {
		return true
	}

	if strings.HasSuffix(pattern, "/*") {
		prefix := pattern[:len(pattern)-1]
		return strings.HasPrefix(mediaType, prefix)
	}

	return pattern == mediaType
}

// IsValidMediaType validates a media type string according to RFC 2045/2046.
// Handles wildcards (*/* and type/*) and prevents invalid combinations
// (*/subtype).
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}

	if strings.HasSuffix(mediaType, "/*") {
		// Check format: type/* (e.g., application/*)
		parts := strings.Split(mediaType, "/")
		if len(parts) == 2 && parts[0] != "" && parts[0] != "*" {
			return true
		}
		return false
	}

	// A wildcard type with a concrete subtype is never a valid pattern,
	// even though mime.ParseMediaType parses it as an ordinary token.
	if strings.HasPrefix(mediaType, "*/") {
		return false
	}

	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}
