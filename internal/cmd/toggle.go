package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pomobar/pomobar/internal/protocol"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Start or pause the clock",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return send(protocol.Command{Kind: protocol.Toggle})
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
