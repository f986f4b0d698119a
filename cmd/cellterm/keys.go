package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/cellterm/terminal"
)

func newKeysCmd(root *rootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show each decoded key event; q or ctrl_c quits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.open()
			if err != nil {
				return err
			}
			defer a.close()
			defer a.session.Recover()

			if err := runKeys(a, raw); err != nil {
				return err
			}
			return a.close()
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "read single bytes without ESC pairing")
	return cmd
}

// keyLog keeps the most recent lines that fit the screen
type keyLog struct {
	lines []string
	max   int
}

func (l *keyLog) add(s string) {
	if l.max <= 0 {
		return
	}
	if len(l.lines) >= l.max {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:l.max-1]
	}
	l.lines = append(l.lines, s)
}

func formatEvent(ev terminal.Event) string {
	prefix := "none"
	if ev.Alt() {
		prefix = "escape"
	}
	return fmt.Sprintf("%-20s prefix=%-6s key=0x%02x", ev.String(), prefix, ev.Key)
}

func renderKeys(buf *terminal.CellBuffer, log *keyLog, raw bool) {
	buf.Clear(terminal.EmptyCell)
	mode := "paired"
	if raw {
		mode = "raw"
	}
	buf.PrintStyled(0, 0, "key events ("+mode+")  q or ctrl_c quits", terminal.ColorBlack, terminal.ColorCyan)
	for i, line := range log.lines {
		buf.Print(1, i+1, line)
	}
}

func runKeys(a *app, raw bool) error {
	s := a.session
	r := s.Renderer()

	buf, err := s.NewBuffer()
	if err != nil {
		return err
	}
	log := &keyLog{max: buf.Height() - 1}

	poll := s.Poll
	if raw {
		poll = s.PollNoPrefix
	}

	if err := r.ClearScreen(); err != nil {
		return err
	}
	for {
		renderKeys(buf, log, raw)
		if err := r.Refresh(buf); err != nil {
			return err
		}

		ev, err := poll()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		a.logger.Debug("key", "event", ev.String(), "raw", raw)

		if ev.Is('q') || ev.Is(terminal.KeyCtrlC) {
			return nil
		}
		if ev.Is(terminal.KeyCtrlG) {
			a.ring()
		}
		log.add(formatEvent(ev))
	}
}
