package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phenrril/stylematch/internal/logging"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "outfits",
		Short: "Arma conjuntos de ropa a partir de una planilla y una paleta",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(v.GetString("log-level"), v.GetString("log-format"), cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "warn", "nivel de log (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "formato de log (console, json)")
	_ = v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log-format", root.PersistentFlags().Lookup("log-format"))

	v.SetEnvPrefix("OUTFITS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(composeCmd(v))
	root.AddCommand(harmonyCmd())
	root.AddCommand(palettesCmd())
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
