package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/treykane/ssh-picker/internal/model"
	"github.com/treykane/ssh-picker/internal/util"
)

// FormatHost renders h as "<alias> (<user>@<hostname>:<port>)", with "?" for
// an unset user or hostname and 22 for an unset port.
func FormatHost(h model.HostRecord) string {
	return fmt.Sprintf("%s (%s@%s:%d)", h.Alias, util.OrUnknown(h.User), util.OrUnknown(h.HostName), h.EffectivePort())
}

// PrintList writes a header and one 1-indexed line per host, in order.
func PrintList(w io.Writer, hosts []model.HostRecord) error {
	if _, err := fmt.Fprintln(w, "Available SSH hosts:"); err != nil {
		return err
	}
	for i, h := range hosts {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, FormatHost(h)); err != nil {
			return err
		}
	}
	return nil
}

// PrintJSON writes hosts as an indented JSON array.
func PrintJSON(w io.Writer, hosts []model.HostRecord) error {
	if hosts == nil {
		hosts = []model.HostRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(hosts)
}
