// Package xlsx importa catálogos de prendas desde planillas y exporta
// reportes de conjuntos.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/phenrril/stylematch/internal/domain"
)

var ErrNoHeader = errors.New("xlsx: planilla sin encabezado reconocible")

// Columns es el encabezado esperado. Solo name, category y color son obligatorias.
var Columns = []string{"name", "brand", "category", "color", "price", "original_price", "rating", "stock_quantity", "gender", "image_url", "description"}

type RowError struct {
	Sheet string
	Row   int
	Err   error
}

func (e RowError) Error() string { return fmt.Sprintf("%s fila %d: %v", e.Sheet, e.Row, e.Err) }

type Import struct {
	Products []domain.Product
	Skipped  []RowError
}

// ReadProducts lee todas las hojas con encabezado. Cada fila pasa por
// normalize; las que fallan quedan en Skipped y no cortan la importación.
func ReadProducts(r io.Reader, normalize func(*domain.Product) error) (Import, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Import{}, fmt.Errorf("xlsx: abrir: %w", err)
	}
	defer f.Close()

	var out Import
	found := false
	for _, sh := range f.GetSheetList() {
		rows, err := f.GetRows(sh)
		if err != nil || len(rows) == 0 {
			continue
		}
		idx := headerIndex(rows[0])
		if idx == nil {
			continue
		}
		found = true
		for i, row := range rows[1:] {
			if blank(row) {
				continue
			}
			p, err := rowProduct(row, idx)
			if err == nil && normalize != nil {
				err = normalize(&p)
			}
			if err != nil {
				out.Skipped = append(out.Skipped, RowError{Sheet: sh, Row: i + 2, Err: err})
				continue
			}
			out.Products = append(out.Products, p)
		}
	}
	if !found {
		return Import{}, ErrNoHeader
	}
	return out, nil
}

func headerIndex(header []string) map[string]int {
	idx := map[string]int{}
	for i, h := range header {
		k := strings.ToLower(strings.TrimSpace(h))
		k = strings.ReplaceAll(k, " ", "_")
		idx[k] = i
	}
	for _, req := range []string{"name", "category", "color"} {
		if _, ok := idx[req]; !ok {
			return nil
		}
	}
	return idx
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func rowProduct(row []string, idx map[string]int) (domain.Product, error) {
	p := domain.Product{
		ID:          uuid.New(),
		Name:        cell(row, idx, "name"),
		Brand:       cell(row, idx, "brand"),
		Category:    domain.Category(cell(row, idx, "category")),
		Color:       cell(row, idx, "color"),
		Gender:      domain.Gender(cell(row, idx, "gender")),
		ImageURL:    cell(row, idx, "image_url"),
		Description: cell(row, idx, "description"),
		Active:      true,
	}
	var err error
	if p.Price, err = parseFloat(cell(row, idx, "price")); err != nil {
		return p, fmt.Errorf("price: %w", err)
	}
	if v := cell(row, idx, "original_price"); v != "" {
		f, err := parseFloat(v)
		if err != nil {
			return p, fmt.Errorf("original_price: %w", err)
		}
		p.OriginalPrice = &f
	}
	if v := cell(row, idx, "rating"); v != "" {
		f, err := parseFloat(v)
		if err != nil {
			return p, fmt.Errorf("rating: %w", err)
		}
		p.Rating = &f
	}
	if v := cell(row, idx, "stock_quantity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("stock_quantity: %w", err)
		}
		p.StockQuantity = &n
	}
	return p, nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
