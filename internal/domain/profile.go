package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile guarda el tono de piel y la paleta recomendada de un usuario.
type UserProfile struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	SkinTone  string    `gorm:"size:40" json:"skin_tone"`
	Palette   []string  `gorm:"type:jsonb;serializer:json" json:"color_palette"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
