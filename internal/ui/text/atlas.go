// Package text bakes a TrueType face into a single-channel glyph atlas and
// lays strings out as textured quads. Uploading the atlas is the caller's job.
package text

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	atlasWidth = 512
	padding    = 1
	firstRune  = rune(32)
	lastRune   = rune(126)
)

// Glyph describes a single character's placement and metrics within the atlas.
type Glyph struct {
	// Pixel position of the glyph bitmap in the atlas, top-left origin.
	AtlasX, AtlasY int
	Width, Height  int
	// Offset from the pen position on the baseline to the bitmap's top-left.
	BearingX, BearingY int
	Advance            int
}

// Atlas is a baked glyph set.
type Atlas struct {
	Image      *image.Alpha
	Glyphs     map[rune]Glyph
	LineHeight int
	Ascent     int
}

// BakeDefault bakes the bundled Go Regular face at the given pixel size.
func BakeDefault(px int) (*Atlas, error) {
	return Bake(goregular.TTF, px)
}

// Bake parses ttf and renders printable ASCII into an atlas.
func Bake(ttf []byte, px int) (*Atlas, error) {
	if px <= 0 {
		return nil, fmt.Errorf("font size %d out of range", px)
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(px), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	metrics := face.Metrics()
	atlas := &Atlas{
		Glyphs:     make(map[rune]Glyph, int(lastRune-firstRune)+1),
		LineHeight: metrics.Height.Ceil(),
		Ascent:     metrics.Ascent.Ceil(),
	}

	// First pass: pack rows to find the required height.
	x, y, rowH := 0, 0, 0
	type placed struct {
		r      rune
		dr     image.Rectangle
		mask   image.Image
		maskp  image.Point
		adv    fixed.Int26_6
		ax, ay int
	}
	var glyphs []placed
	for r := firstRune; r <= lastRune; r++ {
		dr, mask, maskp, adv, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		p := placed{r: r, dr: dr, mask: mask, maskp: maskp, adv: adv}
		w, h := dr.Dx(), dr.Dy()
		if w > 0 && h > 0 {
			if x+w > atlasWidth {
				x = 0
				y += rowH + padding
				rowH = 0
			}
			p.ax, p.ay = x, y
			x += w + padding
			if h > rowH {
				rowH = h
			}
		}
		glyphs = append(glyphs, p)
	}
	atlasHeight := nextPow2(y + rowH)

	// Second pass: copy glyph coverage into the canvas.
	atlas.Image = image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasHeight))
	for _, p := range glyphs {
		g := Glyph{
			AtlasX:   p.ax,
			AtlasY:   p.ay,
			Width:    p.dr.Dx(),
			Height:   p.dr.Dy(),
			BearingX: p.dr.Min.X,
			BearingY: -p.dr.Min.Y,
			Advance:  int(math.Round(float64(p.adv) / 64.0)),
		}
		if g.Width > 0 && g.Height > 0 && p.mask != nil {
			dst := image.Rect(p.ax, p.ay, p.ax+g.Width, p.ay+g.Height)
			draw.Draw(atlas.Image, dst, p.mask, p.maskp, draw.Src)
		}
		atlas.Glyphs[p.r] = g
	}
	return atlas, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Measure returns the width and line height in pixels of s at scale.
// Missing glyphs advance by the width of a space.
func (a *Atlas) Measure(s string, scale float32) (float32, float32) {
	var w float32
	for _, r := range s {
		g, ok := a.Glyphs[r]
		if !ok {
			g = a.Glyphs[' ']
		}
		w += float32(g.Advance) * scale
	}
	return w, float32(a.LineHeight) * scale
}

// Quads lays s out with its top-left at (x, y) in pixels and returns two
// triangles per visible glyph, four floats per vertex: x, y, u, v.
func (a *Atlas) Quads(s string, x, y, scale float32) []float32 {
	out := make([]float32, 0, len(s)*6*4)
	baseline := y + float32(a.Ascent)*scale
	aw := float32(a.Image.Bounds().Dx())
	ah := float32(a.Image.Bounds().Dy())
	for _, r := range s {
		g, ok := a.Glyphs[r]
		if !ok {
			x += float32(a.Glyphs[' '].Advance) * scale
			continue
		}
		if g.Width > 0 && g.Height > 0 {
			x0 := x + float32(g.BearingX)*scale
			y0 := baseline - float32(g.BearingY)*scale
			x1 := x0 + float32(g.Width)*scale
			y1 := y0 + float32(g.Height)*scale
			u0 := float32(g.AtlasX) / aw
			v0 := float32(g.AtlasY) / ah
			u1 := float32(g.AtlasX+g.Width) / aw
			v1 := float32(g.AtlasY+g.Height) / ah
			out = append(out,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += float32(g.Advance) * scale
	}
	return out
}

// Fit trims s so that it measures no wider than maxW, appending "..." when
// anything was cut.
func (a *Atlas) Fit(s string, maxW, scale float32) string {
	if w, _ := a.Measure(s, scale); w <= maxW {
		return s
	}
	const ellipsis = "..."
	ew, _ := a.Measure(ellipsis, scale)
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		if w, _ := a.Measure(string(runes[:n]), scale); w+ew <= maxW {
			return string(runes[:n]) + ellipsis
		}
	}
	return ""
}
