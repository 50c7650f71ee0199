// Package theme holds the colour schemes shared by the terminal and desktop
// drivers.
package theme

import (
	"fmt"
	"image/color"
	"strings"

	css "github.com/mazznoer/csscolorparser"
)

const Default = "Classic"

type Theme struct {
	Name string

	Background   color.NRGBA
	GridLines    color.NRGBA
	CellHidden   color.NRGBA
	CellRevealed color.NRGBA
	CellHover    color.NRGBA
	Text         color.NRGBA
	ButtonBG     color.NRGBA
	ButtonHover  color.NRGBA
	ButtonText   color.NRGBA
	Flag         color.NRGBA
	Mine         color.NRGBA

	// Numbers[n] colours an adjacency count of n; Numbers[0] is unused.
	Numbers [9]color.NRGBA
}

// Number returns the colour for an adjacency count, falling back to Text.
func (t Theme) Number(n int) color.NRGBA {
	if n < 1 || n > 8 {
		return t.Text
	}
	return t.Numbers[n]
}

func Names() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.name
	}
	return names
}

// Lookup finds a theme by name, case-insensitively. An unknown name yields
// the default theme together with an error.
func Lookup(name string) (Theme, error) {
	for _, p := range palettes {
		if strings.EqualFold(p.name, strings.TrimSpace(name)) {
			return p.parse()
		}
	}
	t, err := palettes[0].parse()
	if err != nil {
		return t, err
	}
	return t, fmt.Errorf("theme %q not found, using %s", name, Default)
}

func MustLookup(name string) Theme {
	t, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return t
}

func ParseColor(str string) (color.NRGBA, error) {
	c, err := css.Parse(str)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// Hex formats c as #RRGGBB, dropping alpha.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

func (p palette) parse() (Theme, error) {
	t := Theme{Name: p.name}
	fields := []struct {
		dst *color.NRGBA
		src string
	}{
		{&t.Background, p.background},
		{&t.GridLines, p.gridLines},
		{&t.CellHidden, p.cellHidden},
		{&t.CellRevealed, p.cellRevealed},
		{&t.CellHover, p.cellHover},
		{&t.Text, p.text},
		{&t.ButtonBG, p.buttonBG},
		{&t.ButtonHover, p.buttonHover},
		{&t.ButtonText, p.buttonText},
		{&t.Flag, p.flag},
		{&t.Mine, p.mine},
	}
	for i, n := range p.numbers {
		fields = append(fields, struct {
			dst *color.NRGBA
			src string
		}{&t.Numbers[i+1], n})
	}
	for _, f := range fields {
		c, err := ParseColor(f.src)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: bad colour %q: %w", p.name, f.src, err)
		}
		*f.dst = c
	}
	return t, nil
}
