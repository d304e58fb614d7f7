package ui

import (
	"errors"
	"testing"

	"github.com/treykane/ssh-picker/internal/apperr"
	"github.com/treykane/ssh-picker/internal/model"
)

type fakeSelector struct {
	idx       int
	err       error
	called    bool
	gotPrompt string
	gotItems  []string
	gotDef    int
}

func (f *fakeSelector) Select(prompt string, items []string, defaultIndex int) (int, error) {
	f.called = true
	f.gotPrompt = prompt
	f.gotItems = items
	f.gotDef = defaultIndex
	return f.idx, f.err
}

var testHosts = []model.HostRecord{
	{Alias: "alpha", HostName: "10.0.0.1", User: "root", Port: port(2222)},
	{Alias: "beta", HostName: "10.0.0.2"},
}

func TestChooseHost_FirstIndexReturnsFirstRecord(t *testing.T) {
	sel := &fakeSelector{idx: 0}
	idx, err := ChooseHost(sel, DefaultPrompt, testHosts)
	if err != nil {
		t.Fatal(err)
	}
	if testHosts[idx].Alias != "alpha" {
		t.Fatalf("expected alpha, got %s", testHosts[idx].Alias)
	}
	if sel.gotDef != 0 {
		t.Fatalf("expected default index 0, got %d", sel.gotDef)
	}
	if sel.gotPrompt != DefaultPrompt {
		t.Fatalf("unexpected prompt %q", sel.gotPrompt)
	}
	want := []string{"alpha (root@10.0.0.1:2222)", "beta (?@10.0.0.2:22)"}
	for i := range want {
		if sel.gotItems[i] != want[i] {
			t.Fatalf("item %d: want %q, got %q", i, want[i], sel.gotItems[i])
		}
	}
}

func TestChooseHost_NoHostsAvailable(t *testing.T) {
	sel := &fakeSelector{}
	_, err := ChooseHost(sel, DefaultPrompt, nil)
	if !errors.Is(err, apperr.ErrNoHostsAvailable) {
		t.Fatalf("expected NoHostsAvailable, got %v", err)
	}
	if sel.called {
		t.Fatal("selector must not run without hosts")
	}
}

func TestChooseHost_SelectionFailed(t *testing.T) {
	cause := errors.New("terminal went away")
	_, err := ChooseHost(&fakeSelector{idx: -1, err: cause}, DefaultPrompt, testHosts)
	if !errors.Is(err, apperr.ErrSelectionFailed) {
		t.Fatalf("expected SelectionFailed, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be wrapped, got %v", err)
	}

	_, err = ChooseHost(&fakeSelector{idx: 5}, DefaultPrompt, testHosts)
	if !errors.Is(err, apperr.ErrSelectionFailed) {
		t.Fatalf("expected SelectionFailed for out-of-range index, got %v", err)
	}
}
