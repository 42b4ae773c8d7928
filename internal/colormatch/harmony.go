package colormatch

import "math"

type Harmony string

const (
	Complementary      Harmony = "Complementary"
	Analogous          Harmony = "Analogous"
	Triadic            Harmony = "Triadic"
	Monochromatic      Harmony = "Monochromatic"
	SplitComplementary Harmony = "Split Complementary"
	Neutral            Harmony = "Neutral"
	Custom             Harmony = "Custom"
)

type HarmonyResult struct {
	Score   int     `json:"score"`
	Harmony Harmony `json:"harmony"`
}

// Evaluate clasifica la relación entre dos colores. Las reglas se evalúan en
// orden y gana la primera que se cumple; la diferencia de tono no da la vuelta
// al círculo cromático.
func Evaluate(a, b string) (HarmonyResult, error) {
	ha, err := HexToHSL(a)
	if err != nil {
		return HarmonyResult{}, err
	}
	hb, err := HexToHSL(b)
	if err != nil {
		return HarmonyResult{}, err
	}
	return evaluateHSL(ha, hb), nil
}

func evaluateHSL(a, b HSL) HarmonyResult {
	hueDiff := math.Abs(a.H - b.H)
	satDiff := math.Abs(a.S - b.S)
	lightDiff := math.Abs(a.L - b.L)

	switch {
	case hueDiff >= 150 && hueDiff <= 210:
		return HarmonyResult{Score: 95, Harmony: Complementary}
	case hueDiff <= 30:
		return HarmonyResult{Score: 88, Harmony: Analogous}
	case (hueDiff >= 100 && hueDiff <= 140) || (hueDiff >= 220 && hueDiff <= 260):
		return HarmonyResult{Score: 85, Harmony: Triadic}
	// nunca alcanzable mientras Analogous cubra hueDiff <= 30; se mantiene el orden de reglas
	case hueDiff <= 15 && (satDiff > 20 || lightDiff > 20):
		return HarmonyResult{Score: 82, Harmony: Monochromatic}
	case hueDiff >= 120 && hueDiff <= 240:
		return HarmonyResult{Score: 78, Harmony: SplitComplementary}
	case a.S <= 20 || b.S <= 20:
		return HarmonyResult{Score: 75, Harmony: Neutral}
	}
	return HarmonyResult{Score: 60, Harmony: Custom}
}
