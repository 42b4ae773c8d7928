package xlsx

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/phenrril/stylematch/internal/domain"
	"github.com/phenrril/stylematch/internal/usecase"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellName, &r))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadProducts(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Name", "Brand", "Category", "Color", "Price", "Rating", "Stock Quantity", "Gender"},
		{"Camisa Oxford", "Zara", "Tops", "ff5733", "$1,200.50", "4.5", "3", "Female"},
		{"Jean", "Levi's", "bottoms", "#1E3A8A", "80", "", "", ""},
		{"Sombrero", "X", "hats", "#000000", "10"},
		{"Bota", "Y", "shoes", "#ZZZZZZ", "10"},
		{"Saco", "Y", "outerwear", "#000000", "diez"},
	})

	imp, err := ReadProducts(buf, usecase.NormalizeProduct)
	require.NoError(t, err)
	require.Len(t, imp.Products, 2)

	p := imp.Products[0]
	assert.Equal(t, "Camisa Oxford", p.Name)
	assert.Equal(t, domain.CategoryTops, p.Category)
	assert.Equal(t, "#FF5733", p.Color)
	assert.InDelta(t, 1200.50, p.Price, 0.001)
	require.NotNil(t, p.Rating)
	assert.InDelta(t, 4.5, *p.Rating, 0.001)
	require.NotNil(t, p.StockQuantity)
	assert.Equal(t, 3, *p.StockQuantity)
	assert.Equal(t, domain.GenderFemale, p.Gender)
	assert.True(t, p.Active)

	j := imp.Products[1]
	assert.Equal(t, domain.GenderUnisex, j.Gender)
	assert.Nil(t, j.Rating)
	assert.NotEqual(t, p.ID, j.ID)

	require.Len(t, imp.Skipped, 3)
	assert.Equal(t, 4, imp.Skipped[0].Row)
	assert.True(t, errors.Is(imp.Skipped[0].Err, domain.ErrInvalidInput))
	assert.Equal(t, 5, imp.Skipped[1].Row)
	assert.Equal(t, 6, imp.Skipped[2].Row)
}

func TestReadProductsWithoutHeader(t *testing.T) {
	buf := workbook(t, [][]any{{"foo", "bar"}, {"1", "2"}})
	_, err := ReadProducts(buf, nil)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadProductsGarbage(t *testing.T) {
	_, err := ReadProducts(bytes.NewBufferString("no es un xlsx"), nil)
	assert.Error(t, err)
}

func TestWriteOutfits(t *testing.T) {
	combos := []domain.OutfitCombination{{
		ID: "combo-0-0-0",
		Items: []domain.Product{
			{Name: "Camisa", Brand: "Zara", Category: domain.CategoryTops, Color: "#FF5733", Price: 30},
			{Name: "Jean", Brand: "Levi's", Category: domain.CategoryBottoms, Color: "#1E3A8A", Price: 80},
		},
		MatchScore:       88,
		ColorHarmony:     "Complementary",
		Occasion:         "casual",
		StyleDescription: "Relajado",
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteOutfits(&buf, combos))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{outfitsSheet, itemsSheet}, f.GetSheetList())

	rows, err := f.GetRows(outfitsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"combo-0-0-0", "88", "Complementary", "casual", "Relajado", "Camisa + Jean"}, rows[1])

	items, err := f.GetRows(itemsSheet)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Jean", items[2][1])
	assert.Equal(t, "#1E3A8A", items[2][4])

	first, err := f.GetCellStyle(itemsSheet, "E2")
	require.NoError(t, err)
	second, err := f.GetCellStyle(itemsSheet, "E3")
	require.NoError(t, err)
	assert.NotZero(t, first)
	assert.NotEqual(t, first, second)
}

func TestWriteOutfitsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutfits(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(outfitsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
