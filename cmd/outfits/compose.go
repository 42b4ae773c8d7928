package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phenrril/stylematch/internal/adapters/catalog/xlsx"
	"github.com/phenrril/stylematch/internal/adapters/repo/memory"
	"github.com/phenrril/stylematch/internal/colormatch"
	"github.com/phenrril/stylematch/internal/domain"
	"github.com/phenrril/stylematch/internal/usecase"
)

func composeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Arma conjuntos con las prendas de una planilla",
		Long: `Lee un catálogo .xlsx (columnas name, brand, category, color, price, ...),
arma conjuntos para la ocasión pedida y los imprime o los exporta a otra planilla.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompose(cmd, v)
		},
	}
	cmd.Flags().String("catalog", "", "planilla de catálogo (.xlsx)")
	cmd.Flags().StringSlice("palette", nil, "colores de la paleta, separados por coma")
	cmd.Flags().String("skin-tone", "", `tono de piel con paleta predefinida, por ejemplo "Deep Warm"`)
	cmd.Flags().String("occasion", colormatch.OccasionCasual, "ocasión: formal, casual, party, business, workout")
	cmd.Flags().String("gender", "", "male, female o unisex")
	cmd.Flags().Int("max", colormatch.DefaultMaxOutfits, "cantidad máxima de conjuntos")
	cmd.Flags().String("out", "", "exportar a esta planilla en lugar de imprimir")
	cmd.Flags().Int64("seed", 0, "semilla para resultados reproducibles")
	_ = cmd.MarkFlagRequired("catalog")
	for _, name := range []string{"catalog", "palette", "skin-tone", "occasion", "gender", "max", "out", "seed"} {
		_ = v.BindPFlag(name, cmd.Flags().Lookup(name))
	}
	return cmd
}

func runCompose(cmd *cobra.Command, v *viper.Viper) error {
	ctx := cmd.Context()

	products, err := loadCatalog(v.GetString("catalog"))
	if err != nil {
		return err
	}
	gender := domain.Gender("")
	if g := v.GetString("gender"); g != "" {
		parsed, ok := domain.ParseGender(g)
		if !ok {
			return fmt.Errorf("género inválido: %q", g)
		}
		gender = parsed
	}

	var rnd colormatch.Rand
	if seed := v.GetInt64("seed"); seed != 0 {
		rnd = rand.New(rand.NewSource(seed))
	}
	repo := memory.NewProductRepo(products...)
	uc := &usecase.StyleUC{
		Products:     repo,
		Composer:     colormatch.NewComposer(rnd),
		CatalogLimit: len(products),
		DefaultMax:   colormatch.DefaultMaxOutfits,
	}
	combos, err := uc.Outfits(ctx, usecase.OutfitRequest{
		PaletteSource: usecase.PaletteSource{Palette: v.GetStringSlice("palette"), SkinTone: v.GetString("skin-tone")},
		Occasion:      v.GetString("occasion"),
		Gender:        gender,
		Max:           v.GetInt("max"),
	})
	if err != nil {
		return err
	}

	if out := v.GetString("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := xlsx.WriteOutfits(f, combos); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d conjuntos exportados a %s\n", len(combos), out)
		return nil
	}
	printOutfits(cmd.OutOrStdout(), combos)
	return nil
}

func loadCatalog(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	imp, err := xlsx.ReadProducts(f, usecase.NormalizeProduct)
	if err != nil {
		return nil, err
	}
	for _, re := range imp.Skipped {
		log.Warn().Str("hoja", re.Sheet).Int("fila", re.Row).Err(re.Err).Msg("fila descartada")
	}
	log.Info().Int("productos", len(imp.Products)).Str("archivo", path).Msg("catálogo leído")
	return imp.Products, nil
}

func printOutfits(w io.Writer, combos []domain.OutfitCombination) {
	if len(combos) == 0 {
		fmt.Fprintln(w, "No se encontraron conjuntos con puntaje suficiente.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()
	fmt.Fprintln(tw, "ID\tSCORE\tHARMONY\tITEMS")
	for _, c := range combos {
		names := make([]string, len(c.Items))
		for i, it := range c.Items {
			names[i] = fmt.Sprintf("%s (%s)", it.Name, it.Color)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", c.ID, c.MatchScore, c.ColorHarmony, strings.Join(names, " + "))
	}
}
