package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/phenrril/stylematch/internal/colormatch"
	"github.com/phenrril/stylematch/internal/domain"
)

const defaultRecommendLimit = 10

// StyleUC arma conjuntos y recomendaciones a partir del catálogo, la paleta
// del usuario y su ropero.
type StyleUC struct {
	Products     domain.ProductRepo
	Profiles     domain.ProfileRepo
	Wardrobe     domain.WardrobeRepo
	Composer     *colormatch.Composer
	CatalogLimit int
	DefaultMax   int
}

// PaletteSource indica de dónde sale la paleta. Gana la paleta explícita,
// luego el tono de piel pedido y por último el perfil guardado del usuario.
type PaletteSource struct {
	UserID   uuid.UUID
	Palette  []string
	SkinTone string
}

type OutfitRequest struct {
	PaletteSource
	Occasion string
	Gender   domain.Gender
	Max      int
}

type RecommendRequest struct {
	PaletteSource
	Occasion string
	Gender   domain.Gender
	Category string
	Limit    int
}

// ResolvePalette devuelve una paleta vacía para invitados sin perfil.
func (uc *StyleUC) ResolvePalette(ctx context.Context, src PaletteSource) ([]string, error) {
	if len(src.Palette) > 0 {
		out := make([]string, 0, len(src.Palette))
		for _, c := range src.Palette {
			n, err := colormatch.NormalizeHex(c)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	}
	if tone := strings.TrimSpace(src.SkinTone); tone != "" {
		p, ok := colormatch.PresetPalette(tone)
		if !ok {
			return nil, fmt.Errorf("%w: tono de piel %q", domain.ErrInvalidInput, tone)
		}
		return p, nil
	}
	if src.UserID == uuid.Nil || uc.Profiles == nil {
		return nil, nil
	}
	prof, err := uc.Profiles.FindByUserID(ctx, src.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(prof.Palette) > 0 {
		return prof.Palette, nil
	}
	if p, ok := colormatch.PresetPalette(prof.SkinTone); ok {
		return p, nil
	}
	return nil, nil
}

func (uc *StyleUC) catalog(ctx context.Context, gender domain.Gender, category string) ([]domain.Product, error) {
	limit := uc.CatalogLimit
	if limit <= 0 {
		limit = 200
	}
	list, _, err := uc.Products.List(ctx, domain.ProductFilter{
		Category:   category,
		Gender:     gender,
		ActiveOnly: true,
		Page:       1,
		PageSize:   limit,
	})
	return list, err
}

func (uc *StyleUC) Outfits(ctx context.Context, req OutfitRequest) ([]domain.OutfitCombination, error) {
	palette, err := uc.ResolvePalette(ctx, req.PaletteSource)
	if err != nil {
		return nil, err
	}
	products, err := uc.catalog(ctx, req.Gender, "")
	if err != nil {
		return nil, fmt.Errorf("catálogo: %w", err)
	}
	return uc.compose(products, palette, req.Occasion, req.Max, req.UserID)
}

// WardrobeOutfits arma conjuntos solo con las prendas del ropero del usuario.
func (uc *StyleUC) WardrobeOutfits(ctx context.Context, userID uuid.UUID, occasion string, max int) ([]domain.OutfitCombination, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id vacío", domain.ErrInvalidInput)
	}
	items, err := uc.Wardrobe.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ropero: %w", err)
	}
	palette, err := uc.ResolvePalette(ctx, PaletteSource{UserID: userID})
	if err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]bool, len(items))
	products := make([]domain.Product, 0, len(items))
	for _, it := range items {
		if seen[it.ProductID] {
			continue
		}
		seen[it.ProductID] = true
		products = append(products, it.Product)
	}
	return uc.compose(products, palette, occasion, max, userID)
}

func (uc *StyleUC) compose(products []domain.Product, palette []string, occasion string, max int, userID uuid.UUID) ([]domain.OutfitCombination, error) {
	if max <= 0 {
		max = uc.DefaultMax
	}
	if max <= 0 {
		max = colormatch.DefaultMaxOutfits
	}
	if len(palette) == 0 {
		log.Warn().Str("user_id", userID.String()).Msg("paleta vacía, el color resta puntaje")
	}
	c := uc.Composer
	if c == nil {
		c = colormatch.NewComposer(nil)
	}
	combos, err := c.Compose(products, palette, occasion, max)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("occasion", colormatch.NormalizeOccasion(occasion)).
		Int("productos", len(products)).
		Int("conjuntos", len(combos)).
		Msg("conjuntos generados")
	return combos, nil
}

// Recommend puntúa cada producto del catálogo y devuelve los mejores.
func (uc *StyleUC) Recommend(ctx context.Context, req RecommendRequest) ([]domain.ScoredProduct, error) {
	palette, err := uc.ResolvePalette(ctx, req.PaletteSource)
	if err != nil {
		return nil, err
	}
	products, err := uc.catalog(ctx, req.Gender, req.Category)
	if err != nil {
		return nil, fmt.Errorf("catálogo: %w", err)
	}
	scored := make([]domain.ScoredProduct, 0, len(products))
	for _, p := range products {
		s, err := colormatch.ScoreProduct(p, palette, req.Occasion)
		if err != nil {
			return nil, fmt.Errorf("producto %s: %w", p.ID, err)
		}
		scored = append(scored, domain.ScoredProduct{Product: p, MatchScore: s})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].MatchScore > scored[j].MatchScore })
	limit := req.Limit
	if limit <= 0 {
		limit = defaultRecommendLimit
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}
