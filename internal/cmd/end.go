package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pomobar/pomobar/internal/protocol"
)

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "Finish the current phase",
	Long: `Finish the current phase and move to the next one.

Work alternates with break; the new phase always starts paused with a
fresh clock.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return send(protocol.Command{Kind: protocol.Complete})
	},
}

func init() {
	rootCmd.AddCommand(endCmd)
}
