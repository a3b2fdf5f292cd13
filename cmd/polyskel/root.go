package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "polyskel",
		Short:         "Offset polygons by simulating a straight-skeleton wavefront",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newBufferCmd())
	root.AddCommand(newSkeletonCmd())

	return root
}
