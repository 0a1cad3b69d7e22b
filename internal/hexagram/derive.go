// Package hexagram derives the primary, relating and mutual hexagrams from a
// six-line cast. Derivation is a pure function of the line values; calling it
// twice on the same cast yields bit-identical structures.
package hexagram

import (
	"hexcast/domain/cast"
)

// mutualSource lists the 1-based source positions for the mutual hexagram:
// a sliding 3+3 window over the interior four lines. Lines 1 and 6 never
// participate.
var mutualSource = [6]int{2, 3, 4, 3, 4, 5}

// Derive converts a six-line cast into its three hexagrams and the list of
// changing-line positions. A cast that is not exactly six valid lines is a
// caller contract violation and returns an error.
func Derive(lines []cast.Line) (cast.Derivation, error) {
	if err := cast.Validate(lines); err != nil {
		return cast.Derivation{}, err
	}

	primary := 0
	relating := 0
	mutual := 0
	var changing []int

	for i, l := range lines {
		if l.IsYang() {
			primary |= 1 << i
		}
		// Relating: changing lines flip polarity before encoding.
		yang := l.IsYang()
		if l.IsChanging() {
			yang = !yang
			changing = append(changing, i+1)
		}
		if yang {
			relating |= 1 << i
		}
	}

	for i, src := range mutualSource {
		if lines[src-1].IsYang() {
			mutual |= 1 << i
		}
	}

	return cast.Derivation{
		Primary:       cast.NewHexagram(primary),
		Relating:      cast.NewHexagram(relating),
		Mutual:        cast.NewHexagram(mutual),
		ChangingLines: changing,
	}, nil
}
