// Package apperr defines the error kinds ssh-picker reports to the user.
//
// Every failure that reaches main is an *Error carrying the Kind, the
// operation that failed and the offending path, variable or alias. Callers
// test for a kind with errors.Is against the exported sentinels:
//
//	if errors.Is(err, apperr.ErrNotFound) { ... }
package apperr

import (
	"errors"
	"os/exec"
	"strings"
)

// Kind classifies a failure.
type Kind int

const (
	KindUnknown Kind = iota
	MissingEnvironment
	NotFound
	Unreadable
	NoHostsDefined
	NoHostsAvailable
	SelectionFailed
	ConnectionFailed
)

func (k Kind) String() string {
	switch k {
	case MissingEnvironment:
		return "environment variable not set"
	case NotFound:
		return "ssh config not found"
	case Unreadable:
		return "ssh config unreadable"
	case NoHostsDefined:
		return "no Host entries defined"
	case NoHostsAvailable:
		return "no hosts available"
	case SelectionFailed:
		return "host selection failed"
	case ConnectionFailed:
		return "ssh connection failed"
	default:
		return "operation failed"
	}
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrMissingEnvironment = &Error{Kind: MissingEnvironment}
	ErrNotFound           = &Error{Kind: NotFound}
	ErrUnreadable         = &Error{Kind: Unreadable}
	ErrNoHostsDefined     = &Error{Kind: NoHostsDefined}
	ErrNoHostsAvailable   = &Error{Kind: NoHostsAvailable}
	ErrSelectionFailed    = &Error{Kind: SelectionFailed}
	ErrConnectionFailed   = &Error{Kind: ConnectionFailed}
)

// Error is a classified failure with the context needed to report it.
type Error struct {
	Kind   Kind
	Op     string
	Target string
	Err    error
}

// New returns an *Error. target and err may be empty.
func New(kind Kind, op, target string, err error) error {
	return &Error{Kind: kind, Op: op, Target: target, Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Target != "" {
		b.WriteString(": ")
		b.WriteString(e.Target)
	}
	if e.Err != nil {
		b.WriteString(" (")
		b.WriteString(e.Err.Error())
		b.WriteString(")")
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels, which carry only a Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Target == "" && t.Err == nil && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UserMessage returns the text printed for err before the process exits.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return "ssh-picker: " + err.Error()
}

// ExitCode maps err to a process exit status. A ConnectionFailed caused by
// ssh exiting non-zero propagates the ssh status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if KindOf(err) == ConnectionFailed {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return exitErr.ExitCode()
		}
	}
	return 1
}
