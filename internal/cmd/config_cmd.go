package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pomobar/pomobar/internal/config"
	"github.com/pomobar/pomobar/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `View and generate pomobar configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default configuration to the standard location
($XDG_CONFIG_HOME/pomobar/config.yaml), or to --config if given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	ui.Header("Pomobar Configuration")
	if cfg.ConfigPath() != "" {
		ui.KeyValue("Config File", cfg.ConfigPath())
	} else {
		ui.KeyValue("Config File", ui.Dim("(defaults)"))
	}
	ui.KeyValue("Socket", socketPath(cfg))
	ui.NewLine()

	notifications := ui.Green("enabled")
	if cfg.Notify.Disabled {
		notifications = ui.Dim("disabled")
	}

	table := ui.NewTable([]string{"Setting", "Value"})
	table.AddRow([]string{"work duration", cfg.Durations.Work.String()})
	table.AddRow([]string{"break duration", cfg.Durations.Break.String()})
	table.AddRow([]string{"tick", cfg.Render.Tick.String()})
	table.AddRow([]string{"work glyph", cfg.Render.WorkGlyph})
	table.AddRow([]string{"break glyph", cfg.Render.BreakGlyph})
	table.AddRow([]string{"paused glyph", cfg.Render.PausedGlyph})
	table.AddRow([]string{"notifications", notifications})
	table.Render()

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	ui.Successf("wrote %s", path)
	return nil
}
