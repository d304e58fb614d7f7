package apperr

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

func TestErrorIsMatchesKind(t *testing.T) {
	err := New(NotFound, "resolve config path", "/tmp/none", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected %v to match ErrNotFound", err)
	}
	if errors.Is(err, ErrUnreadable) {
		t.Fatalf("did not expect %v to match ErrUnreadable", err)
	}
	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Fatal("expected wrapped error to match ErrNotFound")
	}
	if KindOf(wrapped) != NotFound {
		t.Fatalf("unexpected kind: %v", KindOf(wrapped))
	}
}

func TestErrorUnwrapsCause(t *testing.T) {
	err := New(Unreadable, "open ssh config", "/etc/x", fs.ErrPermission)
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
}

func TestErrorMessageCarriesContext(t *testing.T) {
	err := New(MissingEnvironment, "resolve config path", "HOME", nil)
	got := UserMessage(err)
	for _, want := range []string{"resolve config path", "environment variable not set", "HOME"} {
		if !strings.Contains(got, want) {
			t.Fatalf("message %q missing %q", got, want)
		}
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Fatalf("nil error: got %d", got)
	}
	if got := ExitCode(errors.New("plain")); got != 1 {
		t.Fatalf("plain error: got %d", got)
	}
	if got := ExitCode(New(NoHostsDefined, "parse", "", nil)); got != 1 {
		t.Fatalf("no hosts: got %d", got)
	}
}

func TestExitCodePropagatesSSHStatus(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	runErr := exec.Command("sh", "-c", "exit 7").Run()
	err := New(ConnectionFailed, "connect", "alpha", runErr)
	if got := ExitCode(err); got != 7 {
		t.Fatalf("expected ssh exit status 7, got %d", got)
	}
}
