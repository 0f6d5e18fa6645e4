package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/lite-lake/boardkit/internal/domain"
	"github.com/lite-lake/boardkit/internal/domain/entity"
	"github.com/lite-lake/boardkit/internal/domain/valueobject"
)

var titleCaser = cases.Title(language.English)

func newShapeCommand(ctx *Context) *cobra.Command {
	shapeCmd := &cobra.Command{
		Use:   "shape",
		Short: "Manage board shapes",
		Long:  "Create, list, inspect, resize and delete the shapes on the board.",
	}

	shapeCmd.AddCommand(newShapeCreateCommand(ctx))
	shapeCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd.Context(), ctx, func(b *Board) error {
				return runShapeList(cmd.OutOrStdout(), b)
			})
		},
	})
	shapeCmd.AddCommand(newShapeShowCommand(ctx))
	shapeCmd.AddCommand(newShapeDeleteCommand(ctx))
	shapeCmd.AddCommand(newShapeResizeCommand(ctx))

	return shapeCmd
}

func newShapeCreateCommand(ctx *Context) *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a shape",
	}

	createCmd.AddCommand(&cobra.Command{
		Use:   "card",
		Short: "Create a card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd.Context(), ctx, func(b *Board) error {
				shape, err := b.Toolbar.CreateCard(cmd.Context())
				if err != nil {
					return err
				}
				return saveCreated(cmd.Context(), cmd.OutOrStdout(), b, shape)
			})
		},
	})

	var url string
	iframeCmd := &cobra.Command{
		Use:   "iframe",
		Short: "Embed a web page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd.Context(), ctx, func(b *Board) error {
				shape, err := b.Toolbar.CreateIframe(cmd.Context(), url)
				if err != nil {
					return err
				}
				if shape == nil {
					return domain.RequiredField("url")
				}
				return saveCreated(cmd.Context(), cmd.OutOrStdout(), b, shape)
			})
		},
	}
	iframeCmd.Flags().StringVarP(&url, "url", "u", "", "Target URL address")
	createCmd.AddCommand(iframeCmd)

	return createCmd
}

func saveCreated(ctx context.Context, w io.Writer, b *Board, shape *entity.Shape) error {
	if err := b.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(w, "✓ created %s %s\n", shape.Type, shape.ID)
	return nil
}

func runShapeList(w io.Writer, b *Board) error {
	all := b.Editor.Shapes()
	if len(all) == 0 {
		fmt.Fprintln(w, "No shapes.")
		return nil
	}

	byType := make(map[string][]*entity.Shape)
	for _, s := range all {
		byType[s.Type] = append(byType[s.Type], s)
	}

	for _, typ := range b.Shapes.Types() {
		list := byType[typ]
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(w, "%ss:\n", titleCaser.String(typ))
		for _, s := range list {
			width, height := s.Size()
			line := fmt.Sprintf("  - %s (%gx%g at %g,%g", s.ID, width, height, s.X, s.Y)
			if url := s.Props.String("url"); url != "" {
				line += ", url: " + url
			}
			fmt.Fprintln(w, line+")")
		}
	}
	return nil
}

func newShapeShowCommand(ctx *Context) *cobra.Command {
	var render bool

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show shape details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd.Context(), ctx, func(b *Board) error {
				return runShapeShow(cmd.OutOrStdout(), b, args[0], render)
			})
		},
	}
	showCmd.Flags().BoolVar(&render, "render", false, "Print the rendered markup")

	return showCmd
}

func runShapeShow(w io.Writer, b *Board, rawID string, render bool) error {
	shape, err := lookupShape(b, rawID)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(shape)
	if err != nil {
		return fmt.Errorf("marshaling shape: %w", err)
	}
	fmt.Fprintf(w, "%s: %s\n", titleCaser.String(shape.Type), shape.ID)
	fmt.Fprint(w, string(data))

	if render {
		util, ok := b.Shapes.Get(shape.Type)
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownShapeType, shape.Type)
		}
		fmt.Fprintln(w, "---")
		fmt.Fprintln(w, util.Render(shape))
		fmt.Fprintln(w, util.Indicator(shape))
	}
	return nil
}

func newShapeDeleteCommand(ctx *Context) *cobra.Command {
	var yes bool

	deleteCmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete shapes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd.Context(), ctx, func(b *Board) error {
				ids := make([]valueobject.ShapeID, 0, len(args))
				for _, raw := range args {
					shape, err := lookupShape(b, raw)
					if err != nil {
						return err
					}
					ids = append(ids, shape.ID)
				}
				if !yes && !Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete %d shape(s)?", len(ids)), false) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
				if err := b.Editor.DeleteShapes(ids...); err != nil {
					return err
				}
				if err := b.Save(cmd.Context()); err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Fprintf(cmd.OutOrStdout(), "✓ deleted %s\n", id)
				}
				return nil
			})
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return deleteCmd
}

func newShapeResizeCommand(ctx *Context) *cobra.Command {
	info := valueobject.ResizeInfo{ScaleX: 1, ScaleY: 1}

	resizeCmd := &cobra.Command{
		Use:   "resize <id>",
		Short: "Scale a shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd.Context(), ctx, func(b *Board) error {
				shape, err := lookupShape(b, args[0])
				if err != nil {
					return err
				}
				resized, err := b.Editor.ResizeShape(shape.ID, info)
				if err != nil {
					return err
				}
				if err := b.Save(cmd.Context()); err != nil {
					return err
				}
				width, height := resized.Size()
				fmt.Fprintf(cmd.OutOrStdout(), "✓ resized %s to %gx%g\n", resized.ID, width, height)
				return nil
			})
		},
	}
	resizeCmd.Flags().Float64Var(&info.ScaleX, "scale-x", 1, "Horizontal scale factor")
	resizeCmd.Flags().Float64Var(&info.ScaleY, "scale-y", 1, "Vertical scale factor")

	return resizeCmd
}

// lookupShape accepts a full id, an id without the "shape:" prefix, or a unique prefix of the body.
func lookupShape(b *Board, raw string) (*entity.Shape, error) {
	id, err := valueobject.ParseShapeID(raw)
	if err != nil {
		return nil, err
	}
	if shape, ok := b.Editor.GetShape(id); ok {
		return shape, nil
	}

	var match *entity.Shape
	for _, s := range b.Editor.Shapes() {
		if !strings.HasPrefix(string(s.ID), string(id)) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %q is ambiguous", domain.ErrInvalidID, raw)
		}
		match = s
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrShapeNotFound, raw)
	}
	return match, nil
}

func withBoard(ctx context.Context, c *Context, fn func(b *Board) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	b, err := c.Open(ctx)
	if err != nil {
		return err
	}
	defer b.Close()
	return fn(b)
}
