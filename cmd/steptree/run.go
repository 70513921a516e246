package main

import (
	"github.com/aretw0/steptree/internal/cli"
	"github.com/aretw0/steptree/internal/config"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Build and print the step tree of a log",
	Long: `Reads an internal-json log (stdin when no file or "-" is given), forwards
free-text messages to stdout and bad lines to stderr, then prints the tree.
On a structural violation the partial tree is printed and the command fails.`,
	Args: cobra.MaximumNArgs(1),
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
		return cli.Execute(ctx, opts)
	},
}

// applyRunFlags overrides config values with the flags set on the command line.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("prefix") {
		cfg.Prefix, _ = flags.GetString("prefix")
	}
	if flags.Changed("passthrough") {
		cfg.Passthrough, _ = flags.GetBool("passthrough")
	}
	if flags.Changed("lenient") {
		cfg.Lenient, _ = flags.GetBool("lenient")
	}
	if flags.Changed("indent") {
		cfg.Indent, _ = flags.GetInt("indent")
	}
	if flags.Changed("max-level") {
		cfg.MaxLevel, _ = flags.GetUint8("max-level")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
}

func addIngestFlags(cmd *cobra.Command) {
	cmd.Flags().String("prefix", "", `Require this leading token on structured lines (e.g. "@nix")`)
	cmd.Flags().Bool("passthrough", false, "Forward lines without the prefix as plain messages")
	cmd.Flags().Bool("lenient", false, "Report structural violations and keep going")
	cmd.Flags().Uint8("max-level", 0, "Drop messages above this verbosity level (0 keeps all)")
}

func init() {
	rootCmd.AddCommand(runCmd)

	addIngestFlags(runCmd)
	runCmd.Flags().StringP("format", "f", config.FormatAuto, "Output format: auto, text, color, markdown or json")
	runCmd.Flags().Int("indent", 2, "Spaces per tree level")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address while ingesting")

	// Make 'run' the default if no command is provided.
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.LocalNonPersistentFlags())
}
