package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeStyles_Precedence(t *testing.T) {
	base := Style{FontFamily: "go", FontSize: 32, Color: RGB(0, 0, 0), LetterSpacing: 1}
	separator := Style{FontSize: 20, Color: RGB(120, 120, 120)}
	fit := Style{FontSize: 28, LineHeight: 34, Height: 34}

	got := MergeStyles(base, separator, fit)

	assert.Equal(t, "go", got.FontFamily, "family inherited from base")
	assert.Equal(t, 28.0, got.FontSize, "auto-fit override wins over separator size")
	assert.Equal(t, RGB(120, 120, 120), got.Color, "separator color wins over base")
	assert.Equal(t, 1.0, got.LetterSpacing)
	assert.Equal(t, 34.0, got.LineHeight)
	assert.Equal(t, 34.0, got.Height)
}

func TestMergeStyles_ZeroFieldsInherit(t *testing.T) {
	base := Style{FontSize: 18, FontWeight: FontWeightBold, TabularNums: true}
	got := MergeStyles(base, Style{})
	assert.Equal(t, base, got)
	assert.Equal(t, Style{}, MergeStyles())
}

func TestStyle_FontSizeOrDefault(t *testing.T) {
	assert.Equal(t, 16.0, Style{}.FontSizeOrDefault())
	assert.Equal(t, 16.0, Style{FontSize: -3}.FontSizeOrDefault())
	assert.Equal(t, 40.0, Style{FontSize: 40}.FontSizeOrDefault())
}

func TestColor_TextRoundTrip(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#1E90FF")))
	assert.Equal(t, RGB(0x1E, 0x90, 0xFF), c)

	require.NoError(t, c.UnmarshalText([]byte("80FF0000")))
	r, g, b, a := c.RGBA()
	assert.Equal(t, [4]uint8{0xFF, 0, 0, 0x80}, [4]uint8{r, g, b, a})

	out, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#80FF0000", string(out))

	assert.Error(t, c.UnmarshalText([]byte("#12345")))
	assert.Error(t, c.UnmarshalText([]byte("blue")))
}
