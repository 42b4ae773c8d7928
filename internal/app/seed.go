package app

import (
	"context"
	"fmt"

	"github.com/phenrril/stylematch/internal/domain"
	"github.com/phenrril/stylematch/internal/usecase"
)

func ptr[T any](v T) *T { return &v }

// demoCatalog cubre las cinco categorías con colores de varias paletas.
func demoCatalog() []domain.Product {
	return []domain.Product{
		{Name: "Camisa Oxford", Brand: "Zara", Category: domain.CategoryTops, Color: "#F5F5DC", Price: 59.9, Rating: ptr(4.5), StockQuantity: ptr(20), Gender: domain.GenderMale},
		{Name: "Blusa de seda", Brand: "Mango", Category: domain.CategoryTops, Color: "#F8BBD9", Price: 79, Rating: ptr(4.7), StockQuantity: ptr(8), Gender: domain.GenderFemale},
		{Name: "Remera básica", Brand: "H&M", Category: domain.CategoryTops, Color: "#1976D2", Price: 14.99, StockQuantity: ptr(50), Gender: domain.GenderUnisex},
		{Name: "Chino slim", Brand: "Zara", Category: domain.CategoryBottoms, Color: "#D2B48C", Price: 69.9, Rating: ptr(4.2), StockQuantity: ptr(12), Gender: domain.GenderMale},
		{Name: "Jean recto", Brand: "Levi's", Category: domain.CategoryBottoms, Color: "#1E3A8A", Price: 98, Rating: ptr(4.6), StockQuantity: ptr(3), Gender: domain.GenderUnisex},
		{Name: "Pollera plisada", Brand: "Mango", Category: domain.CategoryBottoms, Color: "#7B1FA2", Price: 49.99, Gender: domain.GenderFemale},
		{Name: "Vestido cruzado", Brand: "Zara", Category: domain.CategoryDresses, Color: "#C2185B", Price: 89.9, Rating: ptr(4.8), StockQuantity: ptr(6), Gender: domain.GenderFemale},
		{Name: "Vestido lino", Brand: "Uniqlo", Category: domain.CategoryDresses, Color: "#FFB74D", Price: 39.9, Gender: domain.GenderFemale},
		{Name: "Blazer de lana", Brand: "Mango", Category: domain.CategoryOuterwear, Color: "#4A4A4A", Price: 149, Rating: ptr(4.4), StockQuantity: ptr(7), Gender: domain.GenderUnisex},
		{Name: "Mocasines de cuero", Brand: "Clarks", Category: domain.CategoryShoes, Color: "#8B4513", Price: 120, Rating: ptr(4.3), StockQuantity: ptr(9), Gender: domain.GenderUnisex},
		{Name: "Zapatillas running", Brand: "Nike", Category: domain.CategoryShoes, Color: "#FFFFFF", Price: 110, Rating: ptr(4.6), StockQuantity: ptr(30), Gender: domain.GenderUnisex},
		{Name: "Stilettos", Brand: "Aldo", Category: domain.CategoryShoes, Color: "#000000", Price: 95, Gender: domain.GenderFemale},
	}
}

func seedProducts(ctx context.Context, uc *usecase.ProductUC) (int, error) {
	prods := demoCatalog()
	for i := range prods {
		prods[i].Active = true
		if err := uc.Create(ctx, &prods[i]); err != nil {
			return i, fmt.Errorf("seed %q: %w", prods[i].Name, err)
		}
	}
	return len(prods), nil
}
