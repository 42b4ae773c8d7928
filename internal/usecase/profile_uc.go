package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/phenrril/stylematch/internal/colormatch"
	"github.com/phenrril/stylematch/internal/domain"
)

const (
	minPaletteSize = 4
	maxPaletteSize = 6
)

type ProfileUC struct {
	Profiles domain.ProfileRepo
}

func (uc *ProfileUC) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id vacío", domain.ErrInvalidInput)
	}
	return uc.Profiles.FindByUserID(ctx, userID)
}

// Save guarda tono y paleta. Sin paleta se usa la del tono; con paleta debe
// tener entre 4 y 6 colores válidos.
func (uc *ProfileUC) Save(ctx context.Context, userID uuid.UUID, skinTone string, palette []string) (*domain.UserProfile, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id vacío", domain.ErrInvalidInput)
	}
	tone := strings.TrimSpace(skinTone)
	preset, known := colormatch.PresetPalette(tone)
	if tone != "" && !known {
		return nil, fmt.Errorf("%w: tono de piel %q", domain.ErrInvalidInput, tone)
	}
	if len(palette) == 0 {
		if !known {
			return nil, fmt.Errorf("%w: paleta vacía", domain.ErrInvalidInput)
		}
		palette = preset
	}
	norm, err := NormalizePalette(palette)
	if err != nil {
		return nil, err
	}
	p := &domain.UserProfile{UserID: userID, SkinTone: tone, Palette: norm}
	if err := uc.Profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func NormalizePalette(palette []string) ([]string, error) {
	if len(palette) < minPaletteSize || len(palette) > maxPaletteSize {
		return nil, fmt.Errorf("%w: la paleta debe tener entre %d y %d colores, tiene %d", domain.ErrInvalidInput, minPaletteSize, maxPaletteSize, len(palette))
	}
	out := make([]string, 0, len(palette))
	for _, c := range palette {
		n, err := colormatch.NormalizeHex(c)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func isNotFound(err error) bool { return errors.Is(err, domain.ErrNotFound) }
