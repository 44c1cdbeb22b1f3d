// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"rollr/cmd/tui"
	"rollr/internal/dice"
	"rollr/internal/logger"
	"rollr/internal/throw"
)

var version = "dev"

type options struct {
	output      string
	seed        uint64
	verbose     bool
	interactive bool
	completion  string
}

// newRootCmd builds the rollr command. Any positional text is accepted:
// unusable dice expressions fall back to 1D6 rather than failing.
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "rollr [DICE | f | flip | flipcoin]",
		Short: "Roll dice or flip a coin",
		Long: `Rolls dice described as <count>D<sides>, e.g. 2D20 or d8 (case-insensitive).

Supported dice: D3 D4 D5 D6 D7 D8 D10 D12 D14 D16 D20 D24 D30 D50 D60 D100.
Anything that is not a valid expression rolls a single D6. An unsupported
side count keeps the requested count but rolls D6 instead.

Use f, flip or flipcoin to flip a coin.`,
		Example: "  rollr\n  rollr 2D20\n  rollr d8\n  rollr flip\n  rollr --output yaml 4d6",
		Version: version,
		Args:    cobra.ArbitraryArgs,

		// No argument text makes the command fail, flags included.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		ValidArgsFunction:  diceCompletionFunc,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.InitLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.completion != "" {
				return writeCompletion(cmd.Root(), cmd.OutOrStdout(), opts.completion)
			}

			roller := throw.NewRoller(nil)
			if cmd.Flags().Changed("seed") {
				roller = throw.NewSeededRoller(opts.seed)
				logger.Debug("Using seeded roller.", "seed", opts.seed)
			}

			if opts.interactive {
				return tui.RunTUI(roller)
			}
			return run(cmd, args, opts, roller)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", string(formatText), "output format: text or yaml")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed the random generator for reproducible results")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "write debug logs to stderr")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "start an interactive roller")
	cmd.Flags().StringVar(&opts.completion, "completion", "", "print a completion script for bash, zsh, fish or powershell")
	_ = cmd.Flags().MarkHidden("completion")
	cmd.SetFlagErrorFunc(flagErrorRoll)
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(formatText), string(formatYAML)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// run handles a single roll or flip and prints it.
func run(cmd *cobra.Command, args []string, opts *options, roller *throw.Roller) error {
	format, err := parseFormat(opts.output)
	if err != nil {
		logger.Warn("Falling back to text output.", "error", err)
		format = formatText
	}
	w := cmd.OutOrStdout()

	if len(args) > 1 {
		logger.Warn("Ignoring extra arguments.", "args", args[1:])
	}

	if len(args) > 0 && dice.IsCoinFlip(args[0]) {
		heads := roller.FlipCoin()
		logger.Debug("Flipped coin.", "heads", heads)
		return printFlip(w, format, heads)
	}

	req := dice.ParseArgs(args)
	if len(args) > 0 {
		logger.Debug("Parsed dice expression.", "arg", args[0], "request", req.String())
	}
	res := roller.Roll(req)
	return printRoll(w, format, res)
}

// flagErrorRoll is used when flags cannot be parsed, e.g. "-o" without a
// value. The run still succeeds with the default roll.
func flagErrorRoll(cmd *cobra.Command, err error) error {
	logger.InitLogger(cmd.ErrOrStderr(), false)
	logger.Warn("Ignoring unusable flags.", "error", err)
	return printRoll(cmd.OutOrStdout(), formatText, throw.NewRoller(nil).Roll(dice.DefaultRequest()))
}

// runCLI executes cmd and returns the process exit code.
func runCLI(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		logger.Error("Command failed.", "error", err)
		errorColor.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func RunCLI() {
	if code := runCLI(newRootCmd(), os.Stderr); code != 0 {
		os.Exit(code)
	}
}
