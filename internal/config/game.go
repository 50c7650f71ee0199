package config

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Game is the configuration handed to a board and its driver. Nil fields are
// unset and fall back to the preset.
type Game struct {
	Preset string  `schema:"preset"`
	Rows   *int    `schema:"rows"`
	Cols   *int    `schema:"cols"`
	Mines  *int    `schema:"mines"`
	Seed   *uint64 `schema:"seed"`
	Theme  string  `schema:"theme"`
}

func DecodeGame(src map[string][]string) (Game, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var g Game
	if err := dec.Decode(&g, src); err != nil {
		return Game{}, fmt.Errorf("unable to decode game config: %w", err)
	}
	return g, nil
}

// ParsePairs turns "key=value" words into a form map for [DecodeGame].
func ParsePairs(words []string) (map[string][]string, error) {
	src := make(map[string][]string, len(words))
	for _, w := range words {
		key, value, found := strings.Cut(w, "=")
		if !found || key == "" {
			return nil, fmt.Errorf(`expected key=value, got "%s"`, w)
		}
		key = strings.ToLower(key)
		src[key] = append(src[key], value)
	}
	return src, nil
}

// Merge returns g with every field that is set in o replaced by o's value.
func (g Game) Merge(o Game) Game {
	if o.Preset != "" {
		g.Preset = o.Preset
	}
	if o.Rows != nil {
		g.Rows = o.Rows
	}
	if o.Cols != nil {
		g.Cols = o.Cols
	}
	if o.Mines != nil {
		g.Mines = o.Mines
	}
	if o.Seed != nil {
		g.Seed = o.Seed
	}
	if o.Theme != "" {
		g.Theme = o.Theme
	}
	return g
}

// Params resolves the preset (beginner by default) and applies explicit
// dimensions on top of it.
func (g Game) Params() (mines.Params, error) {
	p := mines.Beginner
	if g.Preset != "" {
		var ok bool
		if p, ok = mines.Preset(g.Preset); !ok {
			return mines.Params{}, fmt.Errorf(
				"%w: unknown preset %q", mines.ErrInvalidConfiguration, g.Preset,
			)
		}
	}
	if g.Rows != nil {
		p.Rows = *g.Rows
	}
	if g.Cols != nil {
		p.Cols = *g.Cols
	}
	if g.Mines != nil {
		p.MineCount = *g.Mines
	}
	return p, p.Validate()
}

// Rand returns a source seeded from Seed, or a randomly seeded one.
func (g Game) Rand() *rand.Rand {
	if g.Seed != nil {
		return rand.New(rand.NewPCG(*g.Seed, *g.Seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (g Game) NewBoard() (*mines.Board, error) {
	p, err := g.Params()
	if err != nil {
		return nil, err
	}
	return mines.New(p, g.Rand())
}
