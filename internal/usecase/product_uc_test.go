package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/stylematch/internal/colormatch"
	"github.com/phenrril/stylematch/internal/domain"
)

func TestNormalizeProduct(t *testing.T) {
	rating := 4.5
	badRating := 5.5
	negStock := -1

	tests := []struct {
		name    string
		in      domain.Product
		wantErr error
		check   func(t *testing.T, p domain.Product)
	}{
		{
			name: "normalizes color, category and gender",
			in:   domain.Product{Name: " Linen shirt ", Brand: " Mango ", Category: " Tops", Color: "a0522d", Price: 60, Rating: &rating},
			check: func(t *testing.T, p domain.Product) {
				assert.Equal(t, "Linen shirt", p.Name)
				assert.Equal(t, "Mango", p.Brand)
				assert.Equal(t, domain.CategoryTops, p.Category)
				assert.Equal(t, "#A0522D", p.Color)
				assert.Equal(t, domain.GenderUnisex, p.Gender)
			},
		},
		{
			name: "keeps explicit gender",
			in:   domain.Product{Name: "Heels", Category: "shoes", Color: "#000000", Gender: "Female"},
			check: func(t *testing.T, p domain.Product) {
				assert.Equal(t, domain.GenderFemale, p.Gender)
			},
		},
		{name: "empty name", in: domain.Product{Category: "tops", Color: "#000000"}, wantErr: domain.ErrInvalidInput},
		{name: "unknown category", in: domain.Product{Name: "Cap", Category: "accessories", Color: "#000000"}, wantErr: domain.ErrInvalidInput},
		{name: "bad color", in: domain.Product{Name: "Tee", Category: "tops", Color: "red"}, wantErr: colormatch.ErrInvalidColorFormat},
		{name: "bad gender", in: domain.Product{Name: "Tee", Category: "tops", Color: "#FF0000", Gender: "kids"}, wantErr: domain.ErrInvalidInput},
		{name: "negative price", in: domain.Product{Name: "Tee", Category: "tops", Color: "#FF0000", Price: -1}, wantErr: domain.ErrInvalidInput},
		{name: "rating out of range", in: domain.Product{Name: "Tee", Category: "tops", Color: "#FF0000", Rating: &badRating}, wantErr: domain.ErrInvalidInput},
		{name: "negative stock", in: domain.Product{Name: "Tee", Category: "tops", Color: "#FF0000", StockQuantity: &negStock}, wantErr: domain.ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.in
			err := NormalizeProduct(&p)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, p)
		})
	}
}

func TestProductUC_CreateAndGet(t *testing.T) {
	repo := &memProducts{}
	uc := &ProductUC{Products: repo}
	ctx := context.Background()

	p := &domain.Product{Name: "Trench", Category: "outerwear", Color: "#c19a6b", Price: 180, Active: true}
	require.NoError(t, uc.Create(ctx, p))
	assert.NotEqual(t, uuid.Nil, p.ID)

	got, err := uc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "#C19A6B", got.Color)

	_, err = uc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Get(ctx, uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cats, err := uc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"outerwear"}, cats)
}

func TestProductUC_ListDefaultsPageSize(t *testing.T) {
	repo := &memProducts{}
	for i := 0; i < 25; i++ {
		repo.items = append(repo.items, item(domain.CategoryTops, "#FF0000", 40))
	}
	list, total, err := (&ProductUC{Products: repo}).List(context.Background(), domain.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 20)
	assert.EqualValues(t, 25, total)
}
