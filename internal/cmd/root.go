// Package cmd implements the pomobar CLI commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pomobar/pomobar/internal/config"
	"github.com/pomobar/pomobar/internal/ipc"
	"github.com/pomobar/pomobar/internal/protocol"
	"github.com/pomobar/pomobar/internal/ui"
)

var (
	version    = "dev"
	cfgFile    string
	noColor    bool
	socketFlag string
)

// SetVersion sets the version string (called from main).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pomobar",
	Short: "Work/break countdown for status bars",
	Long: `pomobar keeps a pomodoro-style work/break countdown behind a status
bar widget.

The display mode owns the timer and prints one status line per cycle to
stdout; bar click and scroll bindings invoke the client subcommands,
each of which sends a single command to the running display and exits.

Get started:
  pomobar display     Run the timer and print the status line
  pomobar toggle      Start or pause the clock
  pomobar end         Finish the current phase
  pomobar time +60    Move the clock (run 'pomobar lock' first)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pomobar/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&socketFlag, "socket", "", "control socket path (default is $XDG_RUNTIME_DIR/pomobar.sock)")

	// Version flag
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("pomobar version {{.Version}}\n")
}

func initConfig() {
	if noColor {
		os.Setenv("NO_COLOR", "1")
	}
}

// loadConfig returns the effective configuration, honoring --config.
func loadConfig() *config.Config {
	if cfgFile != "" {
		cfg, err := config.LoadFromPath(cfgFile)
		if err != nil {
			ui.Warningf("could not read %s, using defaults: %v", cfgFile, err)
			return config.DefaultConfig()
		}
		return cfg
	}
	return config.LoadOrDefault()
}

// socketPath resolves the control endpoint: flag, then config, then
// the runtime-directory default.
func socketPath(cfg *config.Config) string {
	if socketFlag != "" {
		return socketFlag
	}
	if cfg.Socket.Path != "" {
		return cfg.Socket.Path
	}
	return ipc.SocketPath()
}

// send delivers one command to the running display.
func send(c protocol.Command) error {
	return ipc.Send(socketPath(loadConfig()), c)
}
