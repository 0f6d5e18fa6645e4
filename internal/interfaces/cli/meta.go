package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lite-lake/boardkit/internal/domain/entity"
	"github.com/lite-lake/boardkit/internal/domain/valueobject"
)

func newMetaCommand(ctx *Context) *cobra.Command {
	metaCmd := &cobra.Command{
		Use:   "meta",
		Short: "Inspect the initial metadata chain",
	}

	metaCmd.AddCommand(&cobra.Command{
		Use:   "resolve <type>",
		Short: "Show the metadata a new shape of <type> would get",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd.Context(), ctx, func(b *Board) error {
				return runMetaResolve(cmd.OutOrStdout(), b, args[0])
			})
		},
	})

	return metaCmd
}

func runMetaResolve(w io.Writer, b *Board, shapeType string) error {
	reg, err := b.Hub.Registry()
	if err != nil {
		return err
	}

	probe := &entity.Shape{ID: valueobject.NewShapeID(), Type: shapeType, Props: entity.Props{}}
	if util, ok := b.Shapes.Get(shapeType); ok {
		probe.Props = util.DefaultProps()
	}
	meta := reg.Resolve(probe)

	fmt.Fprintf(w, "Type: %s (handlers: %d)\n", shapeType, reg.Len())
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %v\n", k, meta[k])
	}
	return nil
}
