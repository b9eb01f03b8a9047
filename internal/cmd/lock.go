package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pomobar/pomobar/internal/protocol"
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Toggle the time-adjustment lock",
	Long: `Toggle whether 'pomobar time' adjustments are accepted.

The display starts locked so an accidental scroll cannot reshape the
clock.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return send(protocol.Command{Kind: protocol.ToggleLock})
	},
}

func init() {
	rootCmd.AddCommand(lockCmd)
}
