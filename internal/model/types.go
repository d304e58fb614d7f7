package model

import "github.com/treykane/ssh-picker/internal/util"

// HostRecord is one Host block extracted from an ssh config file.
//
// Empty HostName and User mean the attribute was not set in the block. Port is
// nil when the block had no Port line or its value was not a valid port.
type HostRecord struct {
	Alias    string  `json:"alias"`
	HostName string  `json:"host_name,omitempty"`
	User     string  `json:"user,omitempty"`
	Port     *uint16 `json:"port,omitempty"`
}

// EffectivePort returns the configured port or the ssh default.
func (h HostRecord) EffectivePort() uint16 {
	if h.Port == nil {
		return util.DefaultSSHPort
	}
	return *h.Port
}

// HasPort reports whether the block set a parseable Port.
func (h HostRecord) HasPort() bool {
	return h.Port != nil
}
