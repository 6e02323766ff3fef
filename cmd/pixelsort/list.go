package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/pixelsort/format"
	"github.com/BeatGlow/pixelsort/scalar"
)

func newMethodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the sort methods",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, m := range scalar.Methods() {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
		},
	}
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported image formats",
		Long: `List the supported image formats.

Images can be written as png, jpeg, gif, bmp or tiff. WebP input is decoded but
can not be written.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, f := range format.Formats() {
				mode := "read"
				if f.CanEncode() {
					mode = "read/write"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-5s %-6s %s\n", f, f.Extension(), mode)
			}
		},
	}
}
