package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/treykane/ssh-picker/internal/model"
)

func TestTouchAndLastUsed(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := Touch("api"); err != nil {
		t.Fatalf("touch: %v", err)
	}
	got, err := LastUsed()
	if err != nil {
		t.Fatalf("last used: %v", err)
	}
	if got["api"] <= 0 {
		t.Fatalf("expected timestamp for api, got %+v", got)
	}
}

func TestLastUsed_CorruptFileIsEmpty(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, "ssh-picker")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "history.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LastUsed()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %+v", got)
	}
}

func TestSortHostsRecent(t *testing.T) {
	hosts := []model.HostRecord{
		{Alias: "db"},
		{Alias: "api"},
		{Alias: "cache"},
		{Alias: "bastion"},
	}
	now := time.Now().Unix()
	sorted := SortHostsRecent(hosts, map[string]int64{
		"api": now,
		"db":  now - 60,
	})
	got := make([]string, len(sorted))
	for i, h := range sorted {
		got[i] = h.Alias
	}
	// Never-used hosts keep their file order after the used ones.
	want := []string{"api", "db", "cache", "bastion"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if hosts[0].Alias != "db" {
		t.Fatal("input slice must not be reordered")
	}
}
