// Package util provides common utility functions and constants used across the
// ssh-picker application. This package is intentionally kept dependency-free
// (no imports from other internal/* packages) to serve as a shared foundation
// without introducing circular dependencies.
package util

import "strings"

// DefaultString returns the fallback value if v is empty or consists entirely
// of whitespace; otherwise it returns v unchanged.
//
// Examples:
//
//	DefaultString("hello", "world")  → "hello"   // non-empty → kept
//	DefaultString("",      "world")  → "world"   // empty → fallback
//	DefaultString("  ",    "world")  → "world"   // whitespace-only → fallback
//	DefaultString("  hi",  "world")  → "  hi"    // leading space but non-blank → kept
func DefaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// OrUnknown returns "?" if s is empty or consists entirely of whitespace;
// otherwise it returns s unchanged.
//
// The host list and the interactive picker render unset User and HostName
// values this way, e.g. "beta (?@10.0.0.2:22)".
func OrUnknown(s string) string {
	return DefaultString(s, Unknown)
}
