package main

import (
	"github.com/aretw0/steptree/internal/cli"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <record>",
	Short: "Play a recorded build back with its original timing",
	Long: `Reads a record file of "<stdout|stderr> <delay_ms> <line>" lines and writes
each line to the matching stream once its delay has elapsed. Pipe stderr into
'steptree run' to watch a recorded build again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		factor, _ := cmd.Flags().GetFloat64("factor")
		skip, _ := cmd.Flags().GetFloat64("skip")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.Replay(ctx, cli.ReplayOptions{
			Input:  args[0],
			Factor: factor,
			Skip:   skip,
		})
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().Float64("factor", 1.0, "Speed up the replay by this factor")
	replayCmd.Flags().Float64("skip", 0.0, "Race through the first seconds of the record")
}
