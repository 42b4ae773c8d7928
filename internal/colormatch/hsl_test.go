package colormatch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		hex  string
		want HSL
	}{
		{"#FF0000", HSL{H: 0, S: 100, L: 50}},
		{"#00FFFF", HSL{H: 180, S: 100, L: 50}},
		{"#FF3300", HSL{H: 12, S: 100, L: 50}},
		{"#ff3300", HSL{H: 12, S: 100, L: 50}},
		{"#0000FF", HSL{H: 240, S: 100, L: 50}},
		{"#808080", HSL{H: 0, S: 0, L: 50}},
		{"#FFFFFF", HSL{H: 0, S: 0, L: 100}},
		{"#000000", HSL{H: 0, S: 0, L: 0}},
		{"#99997A", HSL{H: 60, S: 13, L: 54}},
		// 359.76° redondea a 360 y vuelve a 0
		{"#FF0001", HSL{H: 0, S: 100, L: 50}},
	}
	for _, tc := range tests {
		t.Run(tc.hex, func(t *testing.T) {
			got, err := HexToHSL(tc.hex)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHexToHSL_InvalidFormat(t *testing.T) {
	for _, in := range []string{"", "FF0000", "#FF000", "#FF00000", "#F00", "#GG0000", " #FF0000", "#FF 000", "red"} {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			_, err := HexToHSL(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidColorFormat)
		})
	}
}

func TestHexToHSL_Ranges(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 51 {
			for b := 0; b < 256; b += 15 {
				hex := fmt.Sprintf("#%02X%02X%02X", r, g, b)
				got, err := HexToHSL(hex)
				require.NoError(t, err, hex)
				assert.GreaterOrEqual(t, got.H, 0.0, hex)
				assert.Less(t, got.H, 360.0, hex)
				assert.GreaterOrEqual(t, got.S, 0.0, hex)
				assert.LessOrEqual(t, got.S, 100.0, hex)
				assert.GreaterOrEqual(t, got.L, 0.0, hex)
				assert.LessOrEqual(t, got.L, 100.0, hex)
			}
		}
	}
}

func TestNormalizeHex(t *testing.T) {
	got, err := NormalizeHex("  ff33aa ")
	require.NoError(t, err)
	assert.Equal(t, "#FF33AA", got)

	got, err = NormalizeHex("#0a0b0c")
	require.NoError(t, err)
	assert.Equal(t, "#0A0B0C", got)

	_, err = NormalizeHex("##FF0000")
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
	_, err = NormalizeHex("navy")
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}
