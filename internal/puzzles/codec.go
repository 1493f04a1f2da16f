package puzzles

import (
	"encoding/json"
	"fmt"

	"svw.info/puzzler/internal/dictionary"
	"svw.info/puzzler/internal/domain"
)

// Definitions are the JSON shapes puzzles travel in, over the API and
// inside saved puzzle records.

// PegDef defines a peg solitaire grid.
type PegDef struct {
	Rows []string `json:"rows"`
}

// TileDef defines a tile grid and its target arrangement.
type TileDef struct {
	From []string `json:"from"`
	To   []string `json:"to"`
}

// WordDef defines a word ladder. An empty word list means the embedded
// default dictionary.
type WordDef struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Words []string `json:"words,omitempty"`
}

// Decode builds a puzzle from its kind and raw JSON definition.
func Decode(kind domain.Kind, raw json.RawMessage) (domain.Puzzle, error) {
	switch kind {
	case domain.PegSolitaire:
		var def PegDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return nil, fmt.Errorf("decode peg solitaire: %w", err)
		}
		return NewPegSolitaire(def.Rows)
	case domain.TileGrid:
		var def TileDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return nil, fmt.Errorf("decode tile grid: %w", err)
		}
		return NewTileGrid(def.From, def.To)
	case domain.WordLadder:
		var def WordDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return nil, fmt.Errorf("decode word ladder: %w", err)
		}
		words := dictionary.Default()
		if len(def.Words) > 0 {
			words = dictionary.New(def.Words...)
		}
		return NewWordLadder(def.From, def.To, words)
	default:
		return nil, fmt.Errorf("decode: unknown puzzle kind %d", kind)
	}
}

// Encode returns the kind and JSON definition for p, the inverse of
// Decode. Word ladders on the default dictionary omit their word list.
func Encode(p domain.Puzzle) (domain.Kind, json.RawMessage, error) {
	switch v := p.(type) {
	case *PegSolitaire:
		raw, err := json.Marshal(PegDef{Rows: v.Rows()})
		return domain.PegSolitaire, raw, err
	case *TileGrid:
		raw, err := json.Marshal(TileDef{From: v.From(), To: v.To()})
		return domain.TileGrid, raw, err
	case *WordLadder:
		def := WordDef{From: v.From(), To: v.Target()}
		if !v.Words().Equal(dictionary.Default()) {
			def.Words = v.Words().Words()
		}
		raw, err := json.Marshal(def)
		return domain.WordLadder, raw, err
	default:
		return 0, nil, fmt.Errorf("encode: unsupported puzzle type %T", p)
	}
}
