package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/cellterm/audio"
	"github.com/lixenwraith/cellterm/terminal"
)

type rootOptions struct {
	color   string
	logFile string
	bell    bool
}

// app bundles what every subcommand needs once the terminal is open
type app struct {
	session *terminal.Session
	color   terminal.ColorMode
	logger  *slog.Logger
	bell    *audio.Bell
	closers []io.Closer
	closed  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "cellterm",
		Short:         "Raw-mode terminal cell buffer demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.color, "color", "auto", "emit colors: auto, always or never")
	flags.StringVar(&opts.logFile, "log-file", "", "write debug logs to this file")
	flags.BoolVar(&opts.bell, "bell", false, "play an audible bell on ctrl_g")

	cmd.AddCommand(newPaintCmd(opts), newKeysCmd(opts))
	return cmd
}

// open builds the logger, the optional bell and the terminal session
func (o *rootOptions) open() (*app, error) {
	a, err := o.openWithoutSession()
	if err != nil {
		return nil, err
	}

	s, err := terminal.Open(terminal.Options{Color: a.color, Logger: a.logger})
	if err != nil {
		a.close()
		return nil, err
	}
	a.session = s
	return a, nil
}

// openWithoutSession is open for frontends that manage the terminal themselves
func (o *rootOptions) openWithoutSession() (*app, error) {
	mode, ok := terminal.ParseColorMode(o.color)
	if !ok {
		return nil, fmt.Errorf("invalid --color %q", o.color)
	}

	a := &app{color: mode, logger: slog.New(slog.DiscardHandler)}
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		a.logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if o.bell {
		cfg := audio.LoadConfig()
		a.bell = audio.NewBell(cfg)
		if err := a.bell.Init(); err != nil {
			// Non-fatal, run without sound
			a.logger.Warn("bell unavailable", "error", err)
		}
	}
	return a, nil
}

// close restores the terminal first, then releases everything else
func (a *app) close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var err error
	if a.session != nil {
		err = a.session.Close()
	}
	if a.bell != nil {
		a.bell.Close()
	}
	for _, c := range a.closers {
		c.Close()
	}
	return err
}

func (a *app) ring() {
	if a.bell != nil {
		a.bell.Ring()
		return
	}
	os.Stdout.Write([]byte{terminal.KeyCtrlG})
}
