// Package colormatch puntúa la afinidad de prendas con una paleta de colores
// y arma conjuntos ordenados por puntaje.
package colormatch

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidColorFormat = errors.New("invalid color format")

var hexRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// HSL en grados (H) y porcentajes (S, L), redondeados a enteros.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// HexToHSL convierte un color #RRGGBB a HSL. H queda en [0,360), S y L en [0,100].
func HexToHSL(hex string) (HSL, error) {
	if !hexRe.MatchString(hex) {
		return HSL{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return HSL{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	h, s, l := c.Hsl()
	out := HSL{H: math.Round(h), S: math.Round(s * 100), L: math.Round(l * 100)}
	if out.H >= 360 {
		out.H = 0
	}
	return out, nil
}

// ValidHex informa si el texto es un color #RRGGBB.
func ValidHex(hex string) bool { return hexRe.MatchString(hex) }

// NormalizeHex acepta "#rrggbb" o "rrggbb" con espacios alrededor y devuelve "#RRGGBB".
func NormalizeHex(s string) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	if !hexRe.MatchString(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	return v, nil
}
