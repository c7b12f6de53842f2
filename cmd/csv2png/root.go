package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/csv2png"
)

func run(ctx context.Context, args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var (
		debugMode  bool
		configPath string
		nullStr    string
		idColumns  []string
		idWidth    int
	)

	cmd := &cobra.Command{
		Use:   "csv2png <in-file> [<in-file>...]",
		Short: "Render CSV files as PNG table images",
		Long: `Reads CSV data from each input file, formats it as a table with
locale-aware numeric formatting, and writes the table as a PNG image
next to the input (report.csv becomes report.png).

Numeric columns are thousands-separated with the number of fractional
digits observed in the data. Columns named in the identifier list
(default: SESSION_ID) are rendered as fixed-width integers without
grouping, so IDs and hashes stay verbatim. Null cells render as a
configurable placeholder.`,
		Args:    cobra.ArbitraryArgs,
		Version: Version,
		// Errors are reported once, centrally, by run().
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(debugMode, cmd.ErrOrStderr())

			// No arguments means the user wants the usage text, not an error.
			if len(args) == 0 {
				return cmd.Help()
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("null") {
				cfg.NullPlaceholder = nullStr
			}
			if cmd.Flags().Changed("id-column") {
				cfg.IdentifierColumns = idColumns
			}
			if cmd.Flags().Changed("id-width") {
				cfg.IdentifierWidth = idWidth
			}
			if cfg.IdentifierWidth <= 0 {
				return fmt.Errorf("--id-width must be positive, got %d", cfg.IdentifierWidth)
			}

			conv := csv2png.NewConverter(cfg)
			return conv.ConvertAll(cmd.Context(), args)
		},
	}

	defaults := csv2png.DefaultConfig()
	cmd.Flags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/csv2png/config.yaml)")
	cmd.Flags().StringVar(&nullStr, "null", defaults.NullPlaceholder, "placeholder for null cells")
	cmd.Flags().StringSliceVar(&idColumns, "id-column", defaults.IdentifierColumns, "column name treated as an identifier (repeatable, replaces the default set)")
	cmd.Flags().IntVar(&idWidth, "id-width", defaults.IdentifierWidth, "field width for identifier columns")

	return cmd
}
