package puzzles

import (
	"fmt"
	"strings"

	"svw.info/puzzler/internal/dictionary"
	"svw.info/puzzler/internal/domain"
)

// Preset returns one of the named ready-to-solve configurations used by
// the CLI and the demo endpoints.
func Preset(name string) (domain.Puzzle, error) {
	switch name {
	case "peg-row":
		return NewPegSolitaire([]string{"**.*"})
	case "peg-column":
		return NewPegSolitaire([]string{"#", "*", "*", ".", "*"})
	case "peg-5x5":
		return NewPegSolitaire([]string{
			"*****",
			"*****",
			"*****",
			"**.**",
			"*****",
		})
	case "tiles-2x3":
		return NewTileGrid([]string{"*23", "145"}, []string{"123", "45*"})
	case "tiles-3x3":
		return NewTileGrid(
			[]string{"123", "4*5", "786"},
			[]string{"123", "456", "78*"},
		)
	case "words-cat-dog":
		return NewWordLadder("cat", "dog", dictionary.Default())
	case "words-cold-warm":
		return NewWordLadder("cold", "warm", dictionary.Default())
	default:
		return nil, fmt.Errorf("unknown preset %q (have %s)", name, strings.Join(PresetNames(), ", "))
	}
}

// PresetNames lists the built-in configurations in display order.
func PresetNames() []string {
	return []string{
		"peg-row",
		"peg-column",
		"peg-5x5",
		"tiles-2x3",
		"tiles-3x3",
		"words-cat-dog",
		"words-cold-warm",
	}
}
