package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bake(t *testing.T) *Atlas {
	t.Helper()
	a, err := BakeDefault(16)
	require.NoError(t, err)
	return a
}

func TestBakeDefault(t *testing.T) {
	a := bake(t)

	require.NotNil(t, a.Image)
	assert.Equal(t, atlasWidth, a.Image.Bounds().Dx())
	h := a.Image.Bounds().Dy()
	assert.Equal(t, 0, h&(h-1), "atlas height %d is not a power of two", h)
	assert.Positive(t, a.LineHeight)
	assert.Positive(t, a.Ascent)

	for r := firstRune; r <= lastRune; r++ {
		_, ok := a.Glyphs[r]
		assert.True(t, ok, "missing glyph %q", r)
	}
	space := a.Glyphs[' ']
	assert.Zero(t, space.Width)
	assert.Positive(t, space.Advance)

	m := a.Glyphs['M']
	assert.Positive(t, m.Width)
	assert.Positive(t, m.Height)
	assert.LessOrEqual(t, m.AtlasX+m.Width, a.Image.Bounds().Dx())
	assert.LessOrEqual(t, m.AtlasY+m.Height, h)
}

func TestBakeRejectsBadInput(t *testing.T) {
	_, err := Bake([]byte("not a font"), 16)
	assert.Error(t, err)

	_, err = BakeDefault(0)
	assert.Error(t, err)
}

func TestMeasure(t *testing.T) {
	a := bake(t)

	w1, lh := a.Measure("Cube", 1)
	w2, _ := a.Measure("Cube", 2)
	assert.Positive(t, w1)
	assert.InDelta(t, 2*w1, w2, 0.001)
	assert.Equal(t, float32(a.LineHeight), lh)

	empty, _ := a.Measure("", 1)
	assert.Zero(t, empty)

	// Unknown runes advance like a space.
	space, _ := a.Measure(" ", 1)
	unknown, _ := a.Measure("é", 1)
	assert.Equal(t, space, unknown)
}

func TestQuads(t *testing.T) {
	a := bake(t)

	// Spaces produce no geometry.
	assert.Empty(t, a.Quads("   ", 0, 0, 1))

	q := a.Quads("ab", 10, 20, 1)
	require.Len(t, q, 2*6*4)
	for i := 0; i < len(q); i += 4 {
		assert.GreaterOrEqual(t, q[i], float32(8))
		u, v := q[i+2], q[i+3]
		assert.True(t, u >= 0 && u <= 1, "u out of range: %v", u)
		assert.True(t, v >= 0 && v <= 1, "v out of range: %v", v)
	}
}

func TestFit(t *testing.T) {
	a := bake(t)

	assert.Equal(t, "short", a.Fit("short", 1000, 1))

	long := "a rather long entity name"
	w, _ := a.Measure(long, 1)
	got := a.Fit(long, w/2, 1)
	assert.NotEqual(t, long, got)
	assert.Contains(t, got, "...")
	gw, _ := a.Measure(got, 1)
	assert.LessOrEqual(t, gw, w/2)

	assert.Equal(t, "", a.Fit(long, 1, 1))
}
