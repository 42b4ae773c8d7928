package colormatch

import (
	"math"
	"strings"

	"github.com/phenrril/stylematch/internal/domain"
)

const (
	OccasionFormal   = "formal"
	OccasionCasual   = "casual"
	OccasionParty    = "party"
	OccasionBusiness = "business"
	OccasionWorkout  = "workout"
)

const (
	baseScore         = 50.0
	paletteWeight     = 0.4
	defaultOccasion   = 5
	brandBonus        = 5
	priceBonus        = 3
	stockBonus        = 2
	minReasonable     = 50.0
	maxReasonable     = 500.0
	stockThreshold    = 5
	ratingThreshold   = 4.0
	ratingMultiplier  = 10.0
	maxMatchScore     = 98
	pairHarmonyWeight = 0.1
)

var occasionBonus = map[string]map[domain.Category]int{
	OccasionFormal: {
		domain.CategoryDresses:   15,
		domain.CategoryTops:      12,
		domain.CategoryBottoms:   12,
		domain.CategoryOuterwear: 10,
		domain.CategoryShoes:     8,
	},
	OccasionCasual: {
		domain.CategoryTops:      15,
		domain.CategoryBottoms:   12,
		domain.CategoryDresses:   10,
		domain.CategoryOuterwear: 8,
		domain.CategoryShoes:     10,
	},
	OccasionParty: {
		domain.CategoryDresses:   18,
		domain.CategoryTops:      12,
		domain.CategoryShoes:     15,
		domain.CategoryOuterwear: 8,
		domain.CategoryBottoms:   10,
	},
	OccasionBusiness: {
		domain.CategoryTops:      15,
		domain.CategoryBottoms:   15,
		domain.CategoryOuterwear: 12,
		domain.CategoryDresses:   10,
		domain.CategoryShoes:     8,
	},
	OccasionWorkout: {
		domain.CategoryTops:      18,
		domain.CategoryBottoms:   18,
		domain.CategoryShoes:     15,
		domain.CategoryOuterwear: 10,
		domain.CategoryDresses:   2,
	},
}

var premiumBrands = []string{"zara", "h&m", "mango", "nike", "adidas"}

// Occasions devuelve las ocasiones con tabla propia.
func Occasions() []string {
	return []string{OccasionFormal, OccasionCasual, OccasionParty, OccasionBusiness, OccasionWorkout}
}

// NormalizeOccasion pasa a minúsculas; vacío equivale a casual.
func NormalizeOccasion(occasion string) string {
	o := strings.ToLower(strings.TrimSpace(occasion))
	if o == "" {
		return OccasionCasual
	}
	return o
}

func categoryBonus(category domain.Category, occasion string) int {
	if b, ok := occasionBonus[occasion][category]; ok {
		return b
	}
	return defaultOccasion
}

// ScoreProduct puntúa un producto contra la paleta y la ocasión en [0,98].
// Con paleta vacía la mejor armonía vale 0, así que el color resta 20.
func ScoreProduct(p domain.Product, palette []string, occasion string) (int, error) {
	hsl, err := HexToHSL(p.Color)
	if err != nil {
		return 0, err
	}
	pal, err := parsePalette(palette)
	if err != nil {
		return 0, err
	}
	return scoreParsed(p, hsl, pal, NormalizeOccasion(occasion)), nil
}

func parsePalette(palette []string) ([]HSL, error) {
	out := make([]HSL, 0, len(palette))
	for _, c := range palette {
		h, err := HexToHSL(c)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func scoreParsed(p domain.Product, color HSL, palette []HSL, occasion string) int {
	score := baseScore

	best := 0
	for _, pc := range palette {
		if r := evaluateHSL(color, pc); r.Score > best {
			best = r.Score
		}
	}
	score += float64(best-50) * paletteWeight

	score += float64(categoryBonus(p.Category, occasion))

	if p.Rating != nil && *p.Rating > ratingThreshold {
		score += (*p.Rating - ratingThreshold) * ratingMultiplier
	}

	brand := strings.ToLower(p.Brand)
	for _, b := range premiumBrands {
		if strings.Contains(brand, b) {
			score += brandBonus
			break
		}
	}

	if p.Price >= minReasonable && p.Price <= maxReasonable {
		score += priceBonus
	}

	if p.StockQuantity != nil && *p.StockQuantity > stockThreshold {
		score += stockBonus
	}

	return clampScore(score)
}

func clampScore(v float64) int {
	r := int(math.Round(v))
	if r > maxMatchScore {
		return maxMatchScore
	}
	if r < 0 {
		return 0
	}
	return r
}
