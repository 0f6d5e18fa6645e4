package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lite-lake/boardkit/internal/infrastructure/logger"
)

func newStatsCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show shape counts and this process's operation timings",
		Long: `Show shape counts for the document.

Operation timings are kept in memory by the running process only, so a
one-shot invocation reports just the operations it performed itself.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd.Context(), ctx, func(b *Board) error {
				runStats(cmd.OutOrStdout(), b)
				return nil
			})
		},
	}
}

func runStats(w io.Writer, b *Board) {
	counts := make(map[string]int)
	for _, s := range b.Editor.Shapes() {
		counts[s.Type]++
	}

	fmt.Fprintf(w, "Document: %s\n", b.Store.Path())
	fmt.Fprintln(w, "Shapes:")
	for _, typ := range b.Shapes.Types() {
		fmt.Fprintf(w, "  - %s: %d\n", typ, counts[typ])
	}

	names := logger.OperationNames()
	if len(names) == 0 {
		return
	}
	metrics := logger.GetMetrics()
	fmt.Fprintln(w, "Operations (this process):")
	for _, name := range names {
		s := metrics[name]
		fmt.Fprintf(w, "  - %s: %d total, %d failed, %.2fms avg\n", name, s.Total, s.Failed, s.AvgLatencyMs)
	}
}
