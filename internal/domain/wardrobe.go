package domain

import (
	"time"

	"github.com/google/uuid"
)

const DefaultWardrobeSize = "M"

type WardrobeItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Size      string    `gorm:"size:10" json:"size"`
	CreatedAt time.Time `json:"created_at"`
}
