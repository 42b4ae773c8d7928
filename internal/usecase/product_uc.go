package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/phenrril/stylematch/internal/colormatch"
	"github.com/phenrril/stylematch/internal/domain"
)

type ProductUC struct {
	Products domain.ProductRepo
}

func (uc *ProductUC) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	if f.PageSize == 0 {
		f.PageSize = 20
	}
	return uc.Products.List(ctx, f)
}

func (uc *ProductUC) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: product id vacío", domain.ErrInvalidInput)
	}
	return uc.Products.FindByID(ctx, id)
}

// Create normaliza el producto en el borde del catálogo antes de guardarlo.
func (uc *ProductUC) Create(ctx context.Context, p *domain.Product) error {
	if err := NormalizeProduct(p); err != nil {
		return err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return uc.Products.Save(ctx, p)
}

func (uc *ProductUC) Categories(ctx context.Context) ([]string, error) {
	return uc.Products.DistinctCategories(ctx)
}

// NormalizeProduct valida y normaliza un producto que entra al catálogo:
// categoría conocida, color #RRGGBB, género por defecto unisex, rating en [0,5].
func NormalizeProduct(p *domain.Product) error {
	if p == nil {
		return fmt.Errorf("%w: producto nil", domain.ErrInvalidInput)
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Brand = strings.TrimSpace(p.Brand)
	if p.Name == "" {
		return fmt.Errorf("%w: nombre vacío", domain.ErrInvalidInput)
	}
	cat, ok := domain.ParseCategory(string(p.Category))
	if !ok {
		return fmt.Errorf("%w: categoría %q", domain.ErrInvalidInput, p.Category)
	}
	p.Category = cat
	color, err := colormatch.NormalizeHex(p.Color)
	if err != nil {
		return err
	}
	p.Color = color
	if p.Gender == "" {
		p.Gender = domain.GenderUnisex
	} else if g, ok := domain.ParseGender(string(p.Gender)); ok {
		p.Gender = g
	} else {
		return fmt.Errorf("%w: género %q", domain.ErrInvalidInput, p.Gender)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		return fmt.Errorf("%w: rating %.2f fuera de rango", domain.ErrInvalidInput, *p.Rating)
	}
	if p.StockQuantity != nil && *p.StockQuantity < 0 {
		return fmt.Errorf("%w: stock negativo", domain.ErrInvalidInput)
	}
	return nil
}
