package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/phenrril/stylematch/internal/domain"
)

type WardrobeUC struct {
	Wardrobe domain.WardrobeRepo
	Products domain.ProductRepo
}

func (uc *WardrobeUC) Add(ctx context.Context, userID, productID uuid.UUID, size string) (*domain.WardrobeItem, error) {
	if userID == uuid.Nil || productID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id y product id son obligatorios", domain.ErrInvalidInput)
	}
	p, err := uc.Products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	size = strings.ToUpper(strings.TrimSpace(size))
	if size == "" {
		size = domain.DefaultWardrobeSize
	}
	item := &domain.WardrobeItem{UserID: userID, ProductID: p.ID, Size: size}
	if err := uc.Wardrobe.Add(ctx, item); err != nil {
		return nil, err
	}
	item.Product = *p
	return item, nil
}

func (uc *WardrobeUC) List(ctx context.Context, userID uuid.UUID) ([]domain.WardrobeItem, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id vacío", domain.ErrInvalidInput)
	}
	return uc.Wardrobe.ListByUser(ctx, userID)
}

func (uc *WardrobeUC) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	if userID == uuid.Nil || itemID == uuid.Nil {
		return fmt.Errorf("%w: ids vacíos", domain.ErrInvalidInput)
	}
	return uc.Wardrobe.Delete(ctx, userID, itemID)
}
