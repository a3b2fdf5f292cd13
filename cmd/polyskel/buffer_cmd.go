package main

import (
	"github.com/spf13/cobra"

	"github.com/kasprzak-oleander/polyskel/buffer"
	"github.com/kasprzak-oleander/polyskel/offset"
	"github.com/kasprzak-oleander/polyskel/polygon"
)

func newBufferCmd() *cobra.Command {
	var (
		distance float64
		rounded  bool
		arcStep  float64
	)

	cmd := &cobra.Command{
		Use:   "buffer <file>",
		Short: "Offset every polygon in a YAML polygon file by a signed distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mp, err := loadFile(args[0])
			if err != nil {
				return err
			}

			var out polygon.MultiPolygon
			if rounded {
				out, err = buffer.BufferMultiPolygonRounded(mp, distance, nil, []offset.Option{offset.WithArcStep(arcStep)})
			} else {
				out, err = buffer.BufferMultiPolygon(mp, distance)
			}
			if err != nil {
				return err
			}

			return printMultiPolygon(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().Float64Var(&distance, "distance", 0, "signed offset distance: negative deflates, positive inflates")
	cmd.Flags().BoolVar(&rounded, "rounded", false, "round convex corners instead of mitering them")
	cmd.Flags().Float64Var(&arcStep, "arc-step", 0.1, "angular step in radians used when --rounded is set")

	return cmd
}
