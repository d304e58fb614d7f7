// Package main is the entry point for the ssh-picker binary.
//
// ssh-picker reads the Host blocks of ~/.ssh/config, lets the user choose one
// in a terminal picker and runs `ssh <alias>` for it.
//
// Usage:
//
//	ssh-picker                 # pick a host and connect
//	ssh-picker --list          # print the parsed hosts and exit
//	ssh-picker -c ./config -l  # list hosts from another config file
//
// The CLI is constructed in internal/cli. This file runs it and turns errors
// into a message on stderr and a non-zero exit status.
package main

import (
	"fmt"
	"os"

	"github.com/treykane/ssh-picker/internal/apperr"
	"github.com/treykane/ssh-picker/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, apperr.UserMessage(err))
		os.Exit(apperr.ExitCode(err))
	}
}
