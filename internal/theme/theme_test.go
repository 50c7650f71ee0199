package theme

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryPaletteParses(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			th, err := Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, name, th.Name)
			for n := 1; n <= 8; n++ {
				assert.Equal(t, uint8(255), th.Number(n).A, "number %d", n)
			}
		})
	}
}

func TestNamesOrder(t *testing.T) {
	assert.Equal(t, []string{
		"Classic", "Strawberry", "Lemon", "Lime",
		"Blueberry", "Orange", "Grape", "Watermelon",
	}, Names())
}

func TestClassicColours(t *testing.T) {
	th := MustLookup("classic")

	assert.Equal(t, color.NRGBA{192, 192, 192, 255}, th.CellHidden)
	assert.Equal(t, color.NRGBA{211, 211, 211, 255}, th.CellRevealed)
	assert.Equal(t, color.NRGBA{220, 220, 220, 255}, th.Background)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, th.Number(1))
	assert.Equal(t, color.NRGBA{0, 128, 0, 255}, th.Number(2))
	assert.Equal(t, color.NRGBA{128, 128, 128, 255}, th.Number(8))
	assert.Equal(t, th.Text, th.Number(0))
	assert.Equal(t, th.Text, th.Number(9))
}

func TestLookupUnknownFallsBack(t *testing.T) {
	th, err := Lookup("Kiwi")
	assert.Error(t, err)
	assert.Equal(t, Default, th.Name)
}

func TestMustLookupPanics(t *testing.T) {
	assert.Panics(t, func() { MustLookup("Kiwi") })
}

func TestParseColorAndHex(t *testing.T) {
	c, err := ParseColor("tomato")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 99, 71, 255}, c)
	assert.Equal(t, "#FF6347", Hex(c))

	_, err = ParseColor("not a colour")
	assert.Error(t, err)
}
