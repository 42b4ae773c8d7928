package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phenrril/stylematch/internal/colormatch"
)

func harmonyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "harmony <colorA> <colorB>",
		Short: "Clasifica la armonía entre dos colores",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := colormatch.NormalizeHex(args[0])
			if err != nil {
				return err
			}
			b, err := colormatch.NormalizeHex(args[1])
			if err != nil {
				return err
			}
			res, err := colormatch.Evaluate(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s + %s: %s (%d)\n", a, b, res.Harmony, res.Score)
			return nil
		},
	}
}
