package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pomobar/pomobar/internal/protocol"
)

var timeCmd = &cobra.Command{
	Use:   "time <±seconds>",
	Short: "Move the clock forward or back",
	Long: `Adjust the remaining time by a signed number of seconds.

The display rejects adjustments while locked; run 'pomobar lock' first.`,
	Example: `  pomobar time +60    # add a minute
  pomobar time -300   # drop five minutes`,
	// Flag parsing is off so a bare "-300" reaches Args instead of
	// being rejected as an unknown flag.
	DisableFlagParsing: true,
	Args:               cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "-h" || args[0] == "--help" {
			return cmd.Help()
		}
		c, err := parseTimeAdjust(args[0])
		if err != nil {
			return err
		}
		return send(c)
	},
}

func init() {
	rootCmd.AddCommand(timeCmd)
}

// parseTimeAdjust maps a signed seconds argument onto an AdjustTime
// command. A leading + or no sign adds, a leading - subtracts; the
// magnitude must be plain digits.
func parseTimeAdjust(arg string) (protocol.Command, error) {
	magnitude := arg
	dir := protocol.Add
	switch {
	case strings.HasPrefix(arg, "+"):
		magnitude = arg[1:]
	case strings.HasPrefix(arg, "-"):
		dir = protocol.Subtract
		magnitude = arg[1:]
	}

	if magnitude == "" || !isDigits(magnitude) {
		return protocol.Command{}, fmt.Errorf("invalid adjustment %q: want a whole number of seconds like +60 or -300", arg)
	}
	amount, err := strconv.Atoi(magnitude)
	if err != nil {
		return protocol.Command{}, fmt.Errorf("invalid adjustment %q: %w", arg, err)
	}

	return protocol.Command{Kind: protocol.AdjustTime, Dir: dir, Amount: amount}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
