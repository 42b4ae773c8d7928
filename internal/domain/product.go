package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryTops      Category = "tops"
	CategoryBottoms   Category = "bottoms"
	CategoryDresses   Category = "dresses"
	CategoryOuterwear Category = "outerwear"
	CategoryShoes     Category = "shoes"
)

var Categories = []Category{CategoryTops, CategoryBottoms, CategoryDresses, CategoryOuterwear, CategoryShoes}

// ParseCategory normaliza el texto y devuelve false si no es una categoría de prenda conocida.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

func ParseGender(s string) (Gender, bool) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale, GenderUnisex:
		return g, true
	}
	return "", false
}

type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:180;not null" json:"name"`
	Brand         string    `gorm:"size:100" json:"brand"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	Category      Category  `gorm:"type:varchar(20);index" json:"category"`
	Color         string    `gorm:"size:7" json:"color"`
	Price         float64   `gorm:"type:decimal(12,2)" json:"price"`
	OriginalPrice *float64  `gorm:"type:decimal(12,2)" json:"original_price,omitempty"`
	Rating        *float64  `gorm:"type:decimal(3,2)" json:"rating,omitempty"`
	StockQuantity *int      `gorm:"type:int" json:"stock_quantity,omitempty"`
	Gender        Gender    `gorm:"type:varchar(10);default:unisex;index" json:"gender"`
	ImageURL      string    `gorm:"size:255" json:"image_url,omitempty"`
	Active        bool      `gorm:"default:true;index" json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProductFilter struct {
	Category   string
	Gender     Gender
	ActiveOnly bool
	Page       int
	PageSize   int
}
