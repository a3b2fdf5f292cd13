package main

import (
	"github.com/spf13/cobra"

	"github.com/kasprzak-oleander/polyskel/buffer"
)

func newSkeletonCmd() *cobra.Command {
	var orientInward bool

	cmd := &cobra.Command{
		Use:   "skeleton <file>",
		Short: "Print the straight skeleton of a YAML polygon file as line segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mp, err := loadFile(args[0])
			if err != nil {
				return err
			}

			segments, err := buffer.SkeletonOfPolygonsToLineString(mp, orientInward)
			if err != nil {
				return err
			}

			printSegments(cmd.OutOrStdout(), segments)
			return nil
		},
	}

	cmd.Flags().BoolVar(&orientInward, "inward", true, "orient the wavefront to shrink inward rather than expand outward")

	return cmd
}
