package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/stylematch/internal/domain"
)

func prod(name string, cat domain.Category, g domain.Gender, active bool) domain.Product {
	return domain.Product{Name: name, Category: cat, Color: "#000000", Gender: g, Active: active}
}

func TestProductRepo_List(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepo(
		prod("a", domain.CategoryTops, domain.GenderMale, true),
		prod("b", domain.CategoryTops, domain.GenderFemale, true),
		prod("c", domain.CategoryShoes, domain.GenderUnisex, true),
		prod("d", domain.CategoryShoes, domain.GenderUnisex, false),
	)

	tests := []struct {
		name  string
		f     domain.ProductFilter
		want  []string
		total int64
	}{
		{"active only", domain.ProductFilter{ActiveOnly: true}, []string{"a", "b", "c"}, 3},
		{"everything", domain.ProductFilter{}, []string{"a", "b", "c", "d"}, 4},
		{"category", domain.ProductFilter{Category: "shoes", ActiveOnly: true}, []string{"c"}, 1},
		{"all means no category", domain.ProductFilter{Category: "all", ActiveOnly: true}, []string{"a", "b", "c"}, 3},
		{"gender keeps unisex", domain.ProductFilter{Gender: domain.GenderMale, ActiveOnly: true}, []string{"a", "c"}, 2},
		{"second page", domain.ProductFilter{Page: 2, PageSize: 2}, []string{"c", "d"}, 4},
		{"page past the end", domain.ProductFilter{Page: 5, PageSize: 2}, []string{}, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			list, total, err := r.List(ctx, tc.f)
			require.NoError(t, err)
			names := []string{}
			for _, p := range list {
				names = append(names, p.Name)
			}
			assert.Equal(t, tc.want, names)
			assert.Equal(t, tc.total, total)
		})
	}
}

func TestProductRepo_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepo()
	p := prod("a", domain.CategoryTops, domain.GenderUnisex, true)
	require.NoError(t, r.Save(ctx, &p))
	require.NotEqual(t, uuid.Nil, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	p.Name = "renamed"
	require.NoError(t, r.Save(ctx, &p))
	got, err := r.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)

	_, err = r.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cats, err := r.DistinctCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tops"}, cats)
}

func TestProfileRepo_Upsert(t *testing.T) {
	ctx := context.Background()
	r := NewProfileRepo()
	user := uuid.New()

	_, err := r.FindByUserID(ctx, user)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	first := &domain.UserProfile{UserID: user, SkinTone: "Deep Warm", Palette: []string{"#111111"}}
	require.NoError(t, r.Save(ctx, first))
	second := &domain.UserProfile{UserID: user, Palette: []string{"#222222"}}
	require.NoError(t, r.Save(ctx, second))

	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	got, err := r.FindByUserID(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []string{"#222222"}, got.Palette)
	assert.Equal(t, first.CreatedAt, got.CreatedAt)

	got.Palette[0] = "#FFFFFF"
	again, _ := r.FindByUserID(ctx, user)
	assert.Equal(t, "#222222", again.Palette[0])
}

func TestWardrobeRepo(t *testing.T) {
	ctx := context.Background()
	coat := prod("coat", domain.CategoryOuterwear, domain.GenderUnisex, true)
	products := NewProductRepo()
	require.NoError(t, products.Save(ctx, &coat))
	r := NewWardrobeRepo(products)

	user := uuid.New()
	first := &domain.WardrobeItem{UserID: user, ProductID: coat.ID, Size: "M"}
	second := &domain.WardrobeItem{UserID: user, ProductID: coat.ID, Size: "L"}
	require.NoError(t, r.Add(ctx, first))
	require.NoError(t, r.Add(ctx, second))
	require.NoError(t, r.Add(ctx, &domain.WardrobeItem{UserID: uuid.New(), ProductID: coat.ID}))

	items, err := r.ListByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, "coat", items[0].Product.Name)

	assert.ErrorIs(t, r.Delete(ctx, uuid.New(), first.ID), domain.ErrNotFound)
	require.NoError(t, r.Delete(ctx, user, first.ID))
	items, _ = r.ListByUser(ctx, user)
	assert.Len(t, items, 1)
}
