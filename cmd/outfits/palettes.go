package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phenrril/stylematch/internal/colormatch"
)

func palettesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "Lista las paletas por tono de piel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer tw.Flush()
			fmt.Fprintln(tw, "SKIN TONE\tPALETTE\tDESCRIPTION")
			for _, p := range colormatch.Presets() {
				fmt.Fprintf(tw, "%s\t%v\t%s\n", p.SkinTone, p.Palette, p.Description)
			}
			return nil
		},
	}
}
