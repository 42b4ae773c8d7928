package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/phenrril/stylematch/internal/domain"
)

type WardrobeRepo struct{ db *gorm.DB }

func NewWardrobeRepo(db *gorm.DB) *WardrobeRepo { return &WardrobeRepo{db: db} }

func (r *WardrobeRepo) Add(ctx context.Context, item *domain.WardrobeItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Omit("Product").Create(item).Error
}

// ListByUser devuelve las prendas del usuario con su producto, más nuevas primero.
func (r *WardrobeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WardrobeItem, error) {
	var list []domain.WardrobeItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Preload("Product").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *WardrobeRepo) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", itemID, userID).Delete(&domain.WardrobeItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
