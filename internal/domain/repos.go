package domain

import (
	"context"

	"github.com/google/uuid"
)

type ProductRepo interface {
	Save(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, f ProductFilter) ([]Product, int64, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

type ProfileRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
	Save(ctx context.Context, p *UserProfile) error
}

type WardrobeRepo interface {
	Add(ctx context.Context, item *WardrobeItem) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]WardrobeItem, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}
