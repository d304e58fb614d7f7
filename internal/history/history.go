// Package history remembers when each host alias was last connected to.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/treykane/ssh-picker/internal/appconfig"
	"github.com/treykane/ssh-picker/internal/model"
)

type store struct {
	LastUsed map[string]int64 `json:"last_used"`
}

func filePath() (string, error) {
	dir, err := appconfig.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// Touch records a successful connection to alias.
func Touch(alias string) error {
	st, err := load()
	if err != nil {
		return err
	}
	st.LastUsed[alias] = time.Now().Unix()
	return save(st)
}

// LastUsed returns last successful connection timestamps by alias.
func LastUsed() (map[string]int64, error) {
	st, err := load()
	if err != nil {
		return nil, err
	}
	return st.LastUsed, nil
}

// SortHostsRecent returns a new slice ordered by last use, most recent first.
// Hosts with equal timestamps, including never-used ones, keep file order.
func SortHostsRecent(hosts []model.HostRecord, lastUsed map[string]int64) []model.HostRecord {
	out := append([]model.HostRecord(nil), hosts...)
	sort.SliceStable(out, func(i, j int) bool {
		return lastUsed[out[i].Alias] > lastUsed[out[j].Alias]
	})
	return out
}

func load() (store, error) {
	path, err := filePath()
	if err != nil {
		return store{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store{LastUsed: map[string]int64{}}, nil
		}
		return store{}, err
	}
	var st store
	if err := json.Unmarshal(b, &st); err != nil {
		// A corrupt history file is replaced on the next Touch.
		return store{LastUsed: map[string]int64{}}, nil
	}
	if st.LastUsed == nil {
		st.LastUsed = map[string]int64{}
	}
	return st, nil
}

func save(st store) error {
	path, err := filePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
