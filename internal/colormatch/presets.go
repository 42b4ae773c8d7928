package colormatch

import "strings"

type Preset struct {
	SkinTone    string   `json:"skin_tone"`
	Description string   `json:"description"`
	Palette     []string `json:"palette"`
}

var presets = []Preset{
	{"Fair Cool", "Light skin with pink/blue undertones", []string{"#E8F4F8", "#D1E7DD", "#F3E5F5", "#E1F5FE", "#FFF3E0", "#E8EAF6"}},
	{"Fair Warm", "Light skin with yellow/golden undertones", []string{"#FFF8E1", "#FFECB3", "#FFE0B2", "#FFCC80", "#FFAB40", "#FF8F00"}},
	{"Fair Neutral", "Light skin with balanced undertones", []string{"#F5F5DC", "#E6E6FA", "#FFF8DC", "#F0F8FF", "#FFFACD", "#F8F8FF"}},
	{"Light Cool", "Light-medium skin with cool undertones", []string{"#E3F2FD", "#F3E5F5", "#E8F5E8", "#FFF3E0", "#FCE4EC", "#F1F8E9"}},
	{"Light Warm", "Light-medium skin with warm undertones", []string{"#FFF3C4", "#FFCC02", "#FF8A65", "#FFAB40", "#FFB74D", "#FF9800"}},
	{"Light Neutral", "Light-medium skin with neutral undertones", []string{"#F5DEB3", "#DDD8C7", "#E6D3A3", "#D2B48C", "#C19A6B", "#A0522D"}},
	{"Medium Cool", "Medium skin with cool undertones", []string{"#90CAF9", "#CE93D8", "#A5D6A7", "#FFCC80", "#F8BBD9", "#DCEDC8"}},
	{"Medium Warm", "Medium skin with warm undertones", []string{"#FFB74D", "#FF8A65", "#FFAB40", "#FF9800", "#FF7043", "#D84315"}},
	{"Medium Neutral", "Medium skin with neutral undertones", []string{"#CD853F", "#D2691E", "#BC8F8F", "#8B4513", "#A0522D", "#8B4513"}},
	{"Deep Cool", "Deep skin with cool undertones", []string{"#1976D2", "#7B1FA2", "#388E3C", "#F57C00", "#C2185B", "#5D4037"}},
	{"Deep Warm", "Deep skin with warm undertones", []string{"#BF360C", "#E65100", "#FF6F00", "#F57F17", "#D84315", "#8D6E63"}},
	{"Deep Neutral", "Deep skin with neutral undertones", []string{"#4A4A4A", "#8B4513", "#654321", "#2F1B14", "#3C241A", "#5D4037"}},
}

// PresetPalette busca la paleta de un tono de piel sin distinguir mayúsculas.
// Devuelve una copia.
func PresetPalette(skinTone string) ([]string, bool) {
	t := strings.TrimSpace(skinTone)
	for _, p := range presets {
		if strings.EqualFold(p.SkinTone, t) {
			return append([]string(nil), p.Palette...), true
		}
	}
	return nil, false
}

func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = Preset{SkinTone: p.SkinTone, Description: p.Description, Palette: append([]string(nil), p.Palette...)}
	}
	return out
}
