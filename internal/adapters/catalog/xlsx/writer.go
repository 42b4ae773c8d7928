package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/phenrril/stylematch/internal/domain"
)

const (
	outfitsSheet = "Outfits"
	itemsSheet   = "Items"
)

// WriteOutfits escribe un reporte con una hoja de conjuntos y otra con sus
// prendas; la celda de color de cada prenda se pinta con su color.
func WriteOutfits(w io.Writer, combos []domain.OutfitCombination) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", outfitsSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(outfitsSheet, "A1", &[]any{"id", "match_score", "color_harmony", "occasion", "style_description", "items"}); err != nil {
		return err
	}
	if err := f.SetSheetRow(itemsSheet, "A1", &[]any{"outfit_id", "name", "brand", "category", "color", "price"}); err != nil {
		return err
	}
	_ = f.SetCellStyle(outfitsSheet, "A1", "F1", bold)
	_ = f.SetCellStyle(itemsSheet, "A1", "F1", bold)

	fills := map[string]int{}
	itemRow := 2
	for i, c := range combos {
		names := make([]string, len(c.Items))
		for j, it := range c.Items {
			names[j] = it.Name
		}
		cellName, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(outfitsSheet, cellName, &[]any{c.ID, c.MatchScore, c.ColorHarmony, c.Occasion, c.StyleDescription, strings.Join(names, " + ")}); err != nil {
			return err
		}
		for _, it := range c.Items {
			cellName, _ := excelize.CoordinatesToCellName(1, itemRow)
			if err := f.SetSheetRow(itemsSheet, cellName, &[]any{c.ID, it.Name, it.Brand, string(it.Category), it.Color, it.Price}); err != nil {
				return err
			}
			if style, err := fillStyle(f, fills, it.Color); err == nil {
				colorCell, _ := excelize.CoordinatesToCellName(5, itemRow)
				_ = f.SetCellStyle(itemsSheet, colorCell, colorCell, style)
			}
			itemRow++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: escribir: %w", err)
	}
	return nil
}

func fillStyle(f *excelize.File, cache map[string]int, hex string) (int, error) {
	key := strings.TrimPrefix(strings.ToUpper(hex), "#")
	if id, ok := cache[key]; ok {
		return id, nil
	}
	id, err := f.NewStyle(&excelize.Style{Fill: excelize.Fill{Type: "pattern", Color: []string{key}, Pattern: 1}})
	if err != nil {
		return 0, err
	}
	cache[key] = id
	return id, nil
}
