package colormatch

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/phenrril/stylematch/internal/domain"
)

const (
	DefaultMaxOutfits = 6
	minOutfitScore    = 70

	maxTops           = 3
	maxBottoms        = 3
	maxSeparateShoes  = 2
	maxDresses        = 2
	maxDressShoes     = 2
	separateOuterwear = 0.6
	dressOuterwear    = 0.7
)

// Rand es la fuente de azar del armado. *rand.Rand la satisface.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) Intn(n int) int   { return rand.Intn(n) }

type Composer struct {
	rnd Rand
}

// NewComposer usa la fuente global del proceso cuando r es nil.
func NewComposer(r Rand) *Composer {
	if r == nil {
		r = globalRand{}
	}
	return &Composer{rnd: r}
}

var defaultComposer = NewComposer(nil)

// Compose arma conjuntos con el compositor por defecto.
func Compose(products []domain.Product, palette []string, occasion string, max int) ([]domain.OutfitCombination, error) {
	return defaultComposer.Compose(products, palette, occasion, max)
}

type piece struct {
	product domain.Product
	color   HSL
}

type wardrobe struct {
	tops, bottoms, dresses, shoes, outerwear []piece
}

func partition(products []domain.Product) (wardrobe, error) {
	var w wardrobe
	for _, p := range products {
		var dst *[]piece
		switch p.Category {
		case domain.CategoryTops:
			dst = &w.tops
		case domain.CategoryBottoms:
			dst = &w.bottoms
		case domain.CategoryDresses:
			dst = &w.dresses
		case domain.CategoryShoes:
			dst = &w.shoes
		case domain.CategoryOuterwear:
			dst = &w.outerwear
		default:
			continue
		}
		hsl, err := HexToHSL(p.Color)
		if err != nil {
			return wardrobe{}, fmt.Errorf("producto %s: %w", p.ID, err)
		}
		*dst = append(*dst, piece{product: p, color: hsl})
	}
	return w, nil
}

// Compose arma conjuntos top+bottom+shoes y dress+shoes, descarta los de
// puntaje menor a 70 y devuelve a lo sumo max, ordenados de mayor a menor.
// Con max <= 0 el resultado es vacío.
func (c *Composer) Compose(products []domain.Product, palette []string, occasion string, max int) ([]domain.OutfitCombination, error) {
	occasion = NormalizeOccasion(occasion)
	pal, err := parsePalette(palette)
	if err != nil {
		return nil, err
	}
	w, err := partition(products)
	if err != nil {
		return nil, err
	}

	var combos []domain.OutfitCombination

	for i := 0; i < min(len(w.tops), maxTops); i++ {
		for j := 0; j < min(len(w.bottoms), maxBottoms); j++ {
			for k := 0; k < min(len(w.shoes), maxSeparateShoes); k++ {
				items := []piece{w.tops[i], w.bottoms[j], w.shoes[k]}
				if len(w.outerwear) > 0 && (occasion == OccasionFormal || occasion == OccasionBusiness || c.rnd.Float64() > separateOuterwear) {
					items = append(items, w.outerwear[0])
				}
				combos = append(combos, c.build(fmt.Sprintf("combo-%d-%d-%d", i, j, k), items, pal, occasion))
			}
		}
	}

	for i := 0; i < min(len(w.dresses), maxDresses); i++ {
		for j := 0; j < min(len(w.shoes), maxDressShoes); j++ {
			items := []piece{w.dresses[i], w.shoes[j]}
			if len(w.outerwear) > 0 && c.rnd.Float64() > dressOuterwear {
				items = append(items, w.outerwear[0])
			}
			combos = append(combos, c.build(fmt.Sprintf("dress-combo-%d-%d", i, j), items, pal, occasion))
		}
	}

	out := make([]domain.OutfitCombination, 0, len(combos))
	for _, cb := range combos {
		if cb.MatchScore >= minOutfitScore {
			out = append(out, cb)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].MatchScore > out[b].MatchScore })
	if max <= 0 {
		return out[:0], nil
	}
	if len(out) > max {
		out = out[:max]
	}
	return out, nil
}

func (c *Composer) build(id string, items []piece, palette []HSL, occasion string) domain.OutfitCombination {
	products := make([]domain.Product, len(items))
	total := 0
	for i, it := range items {
		products[i] = it.product
		total += scoreParsed(it.product, it.color, palette, occasion)
	}

	var bonus float64
	var labels []Harmony
	counts := map[Harmony]int{}
	for i := 0; i < len(items)-1; i++ {
		for j := i + 1; j < len(items); j++ {
			r := evaluateHSL(items[i].color, items[j].color)
			bonus += float64(r.Score) * pairHarmonyWeight
			if counts[r.Harmony] == 0 {
				labels = append(labels, r.Harmony)
			}
			counts[r.Harmony]++
		}
	}

	avg := float64(total) / float64(len(items))
	return domain.OutfitCombination{
		ID:               id,
		Items:            products,
		MatchScore:       clampScore(avg + bonus),
		ColorHarmony:     string(dominantHarmony(labels, counts)),
		Occasion:         occasion,
		StyleDescription: c.describe(occasion),
	}
}

// dominantHarmony devuelve la etiqueta más frecuente; en empate gana la primera vista.
func dominantHarmony(order []Harmony, counts map[Harmony]int) Harmony {
	var best Harmony
	bestN := 0
	for _, h := range order {
		if counts[h] > bestN {
			best, bestN = h, counts[h]
		}
	}
	return best
}
