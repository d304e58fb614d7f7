package ui

import (
	"fmt"

	"github.com/treykane/ssh-picker/internal/apperr"
	"github.com/treykane/ssh-picker/internal/model"
)

const opSelect = "select host"

// DefaultPrompt is shown above the host list when no prompt is configured.
const DefaultPrompt = "Select an SSH host"

// Selector asks the user to pick one of items. defaultIndex is highlighted
// initially. It returns the index of the chosen item.
type Selector interface {
	Select(prompt string, items []string, defaultIndex int) (int, error)
}

// ChooseHost presents hosts through sel and returns the index of the chosen
// record. The first host is the default choice.
func ChooseHost(sel Selector, prompt string, hosts []model.HostRecord) (int, error) {
	if len(hosts) == 0 {
		return -1, apperr.New(apperr.NoHostsAvailable, opSelect, "", nil)
	}
	items := make([]string, len(hosts))
	for i, h := range hosts {
		items[i] = FormatHost(h)
	}
	idx, err := sel.Select(prompt, items, 0)
	if err != nil {
		return -1, apperr.New(apperr.SelectionFailed, opSelect, "", err)
	}
	if idx < 0 || idx >= len(hosts) {
		return -1, apperr.New(apperr.SelectionFailed, opSelect, "", fmt.Errorf("index %d out of range for %d hosts", idx, len(hosts)))
	}
	return idx, nil
}
