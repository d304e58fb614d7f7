// Package util provides common utility functions and constants used across the
// ssh-picker application. This package is intentionally kept dependency-free
// (no imports from other internal/* packages) to serve as a shared foundation
// without introducing circular dependencies.
package util

const (
	// DefaultSSHPort is shown for hosts whose block has no usable Port line.
	// It is display-only: ssh itself resolves the real port from the config.
	// Used by: internal/model (EffectivePort) and internal/ui (FormatHost).
	DefaultSSHPort uint16 = 22

	// DefaultSSHBinary is the client executable looked up on PATH when the
	// application settings do not name another one.
	DefaultSSHBinary = "ssh"

	// Unknown is the placeholder rendered for unset User and HostName values.
	Unknown = "?"

	// MaxConfigLineBytes bounds a single line of the ssh config. bufio.Scanner
	// defaults to 64KiB, which long ProxyCommand lines can exceed.
	// Used by: internal/config/parser.go (parse).
	MaxConfigLineBytes = 1024 * 1024
)
