package domain

// OutfitCombination es un conjunto armado para una ocasión. No se persiste.
type OutfitCombination struct {
	ID               string    `json:"id"`
	Items            []Product `json:"items"`
	MatchScore       int       `json:"match_score"`
	ColorHarmony     string    `json:"color_harmony"`
	Occasion         string    `json:"occasion"`
	StyleDescription string    `json:"style_description"`
}

// ScoredProduct acompaña un producto con su puntaje de afinidad.
type ScoredProduct struct {
	Product    Product `json:"product"`
	MatchScore int     `json:"match_score"`
}
