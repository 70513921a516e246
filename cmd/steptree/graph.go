package main

import (
	"github.com/aretw0/steptree/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the step tree as a Mermaid diagram",
	Long:  `Ingests the log and outputs a Mermaid diagram (graph TD) of the step hierarchy.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		applyRunFlags(cmd, &cfg)

		opts := cli.RunOptions{Config: cfg}
		if len(args) > 0 {
			opts.Input = args[0]
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.ExecuteGraph(ctx, opts)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addIngestFlags(graphCmd)
}
