// Package sshclient launches the system ssh client against a host alias.
//
// This package does NOT implement the SSH protocol. It shells out to the ssh
// binary with the alias as its only argument, so OpenSSH resolves HostName,
// User, Port and every other directive from the user's config itself.
//
// The child inherits the parent's standard streams and the caller blocks
// until it exits. Arguments are passed through exec.Command's argv, never a
// shell, so aliases containing shell metacharacters are passed through as-is.
package sshclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/treykane/ssh-picker/internal/apperr"
	"github.com/treykane/ssh-picker/internal/util"
)

const opConnect = "connect"

// Client runs interactive ssh sessions.
//
// The zero value is not useful; use New() to create a Client instance.
type Client struct {
	// Binary is the executable name or path, resolved through PATH.
	Binary string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a Client wired to the process's standard streams. An empty
// binary selects "ssh".
func New(binary string) *Client {
	return &Client{
		Binary: util.DefaultString(binary, util.DefaultSSHBinary),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// EnsureBinary checks that the ssh binary can be found.
func (c *Client) EnsureBinary() error {
	if _, err := exec.LookPath(c.Binary); err != nil {
		return apperr.New(apperr.ConnectionFailed, "locate ssh binary", c.Binary, err)
	}
	return nil
}

// ConnectCommand creates the exec.Cmd for an interactive session to alias.
// The alias is the only argument. The command is not started.
func (c *Client) ConnectCommand(ctx context.Context, alias string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Binary, alias)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	return cmd
}

// Connect runs ssh against alias and waits for it to exit. A non-zero exit
// status, or a failure to start the process, is reported as ConnectionFailed
// wrapping the underlying *exec.ExitError or start error.
func (c *Client) Connect(ctx context.Context, alias string) error {
	cmd := c.ConnectCommand(ctx, alias)
	logrus.WithFields(logrus.Fields{
		"binary": c.Binary,
		"alias":  alias,
	}).Debug("launching ssh")

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			err = fmt.Errorf("ssh exited with status %d: %w", exitErr.ExitCode(), err)
		}
		return apperr.New(apperr.ConnectionFailed, opConnect, alias, err)
	}
	logrus.WithField("alias", alias).Debug("ssh session closed")
	return nil
}
