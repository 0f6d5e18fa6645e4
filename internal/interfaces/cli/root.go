package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/boardkit/internal/infrastructure/logger"
)

var Version = "dev"

func NewRootCommand() *cobra.Command {
	ctx := NewContext()
	var showVersion bool

	rootCmd := &cobra.Command{
		Use:           "boardkit",
		Short:         "Canvas board toolkit",
		Long:          "Boardkit manages a canvas board document holding card and iframe shapes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), Version)
				os.Exit(0)
			}
			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			cmd.SetContext(logger.WithOperation(parent, cmd.CommandPath()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToolbar(cmd.Context(), ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.ConfigDir, "config", "c", ".", "Configuration directory")
	rootCmd.PersistentFlags().StringVarP(&ctx.Document, "doc", "d", "", "Board document file (overrides the config)")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(newShapeCommand(ctx))
	rootCmd.AddCommand(newToolbarCommand(ctx))
	rootCmd.AddCommand(newMetaCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))

	return rootCmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
