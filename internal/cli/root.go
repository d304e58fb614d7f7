// Package cli provides the command-line interface for ssh-picker.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/treykane/ssh-picker/internal/appconfig"
	"github.com/treykane/ssh-picker/internal/config"
	"github.com/treykane/ssh-picker/internal/history"
	"github.com/treykane/ssh-picker/internal/model"
	"github.com/treykane/ssh-picker/internal/sshclient"
	"github.com/treykane/ssh-picker/internal/ui"
)

// Launcher starts the ssh session for a chosen alias.
type Launcher interface {
	EnsureBinary() error
	Connect(ctx context.Context, alias string) error
}

// deps builds the interactive collaborators from the loaded settings.
type deps struct {
	selector func(cfg appconfig.Config) ui.Selector
	launcher func(cfg appconfig.Config) Launcher
}

func defaultDeps() deps {
	return deps{
		selector: func(cfg appconfig.Config) ui.Selector {
			return ui.NewTerminalSelector(cfg.UI.AltScreen)
		},
		launcher: func(cfg appconfig.Config) Launcher {
			return sshclient.New(cfg.SSHBinary)
		},
	}
}

type options struct {
	configPath string
	list       bool
	jsonOut    bool
	recent     bool
	verbose    bool
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultDeps())
}

func newRootCommand(d deps) *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:           "ssh-picker",
		Short:         "Interactive SSH host picker from ~/.ssh/config",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setLogrus(cmd.ErrOrStderr(), opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts, d)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "ssh config file (default ~/.ssh/config)")
	flags.BoolVarP(&opts.list, "list", "l", false, "list hosts instead of connecting")
	flags.BoolVar(&opts.jsonOut, "json", false, "list hosts as JSON (implies --list)")
	flags.BoolVar(&opts.recent, "recent", false, "order hosts by most recent connection")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return root
}

func run(ctx context.Context, out io.Writer, opts options, d deps) error {
	cfg, err := appconfig.Load()
	if err != nil {
		logrus.Warnf("using default settings: %v", err)
		cfg = appconfig.Default()
	}

	path, err := config.ResolvePath(opts.configPath)
	if err != nil {
		return err
	}
	listMode := opts.list || opts.jsonOut
	if opts.jsonOut {
		logrus.Debugf("config path: %s", path)
	} else {
		fmt.Fprintf(out, "Config path: %s\n", path)
	}

	res, err := config.ParseFile(path)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		logrus.Debug(w)
	}
	hosts := res.Hosts
	if opts.recent {
		hosts = sortRecent(hosts)
	}

	if listMode {
		if opts.jsonOut {
			return ui.PrintJSON(out, hosts)
		}
		return ui.PrintList(out, hosts)
	}
	return connect(ctx, out, cfg, hosts, d)
}

func connect(ctx context.Context, out io.Writer, cfg appconfig.Config, hosts []model.HostRecord, d deps) error {
	launcher := d.launcher(cfg)
	if err := launcher.EnsureBinary(); err != nil {
		return err
	}

	idx, err := ui.ChooseHost(d.selector(cfg), cfg.UI.Prompt, hosts)
	if err != nil {
		return err
	}
	host := hosts[idx]

	fmt.Fprintf(out, "Connecting to: %s\n", host.Alias)
	if err := launcher.Connect(ctx, host.Alias); err != nil {
		return err
	}
	if err := history.Touch(host.Alias); err != nil {
		logrus.Warnf("failed to record connection history: %v", err)
	}
	return nil
}

func sortRecent(hosts []model.HostRecord) []model.HostRecord {
	lastUsed, err := history.LastUsed()
	if err != nil {
		logrus.Warnf("failed to load connection history: %v", err)
		return hosts
	}
	return history.SortHostsRecent(hosts, lastUsed)
}

func setLogrus(w io.Writer, verbose bool) {
	logrus.SetLevel(logrus.InfoLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	logrus.SetOutput(w)
}
