package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pomobar/pomobar/internal/ipc"
	"github.com/pomobar/pomobar/internal/notify"
	"github.com/pomobar/pomobar/internal/session"
)

var (
	displayWorkFlag  time.Duration
	displayBreakFlag time.Duration
	displayOnceFlag  bool
)

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Run the timer and print the status line",
	Long: `Run the long-lived display process.

It binds the control socket, owns the timer, and prints one status line
per cycle to stdout. Point your status bar at this command and bind the
client subcommands (toggle, end, lock, time) to clicks and scrolls.

Starting a second display takes over the socket; the previous instance
stops receiving commands.`,
	Example: `  pomobar display
  pomobar display --work 50m --break 10m`,
	Args: cobra.NoArgs,
	RunE: runDisplay,
}

func init() {
	displayCmd.Flags().DurationVar(&displayWorkFlag, "work", 0, "work phase length (overrides config)")
	displayCmd.Flags().DurationVar(&displayBreakFlag, "break", 0, "break phase length (overrides config)")
	displayCmd.Flags().BoolVar(&displayOnceFlag, "once", false, "run a single cycle and exit (for debugging bar integration)")
	rootCmd.AddCommand(displayCmd)
}

func runDisplay(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	work := cfg.Durations.Work
	if displayWorkFlag > 0 {
		work = displayWorkFlag
	}
	brk := cfg.Durations.Break
	if displayBreakFlag > 0 {
		brk = displayBreakFlag
	}

	var notifier notify.Notifier = notify.Discard{}
	if !cfg.Notify.Disabled {
		notifier = notify.NewDesktop("pomobar")
	}

	sess := session.New(session.Config{
		WorkDuration:  work,
		BreakDuration: brk,
		Glyphs: session.Glyphs{
			Work:   cfg.Render.WorkGlyph,
			Break:  cfg.Render.BreakGlyph,
			Paused: cfg.Render.PausedGlyph,
		},
		WorkDone: session.Message{
			Summary: cfg.Notify.WorkDone.Summary,
			Body:    cfg.Notify.WorkDone.Body,
		},
		BreakDone: session.Message{
			Summary: cfg.Notify.BreakDone.Summary,
			Body:    cfg.Notify.BreakDone.Body,
		},
		Notifier: notifier,
	})

	listener, err := ipc.Listen(socketPath(cfg), cfg.Render.Tick)
	if err != nil {
		return fmt.Errorf("bind control socket: %w", err)
	}
	defer listener.Close()

	if displayOnceFlag {
		return listener.Cycle(sess)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return listener.Run(ctx, sess)
}
