package imdraw

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontAtlas is a single RGBA8 bitmap holding every rasterized glyph,
// uploaded once by the renderer as one special-cased texture. TexID is
// assigned by the renderer during initialization.
type FontAtlas struct {
	// Pixels is the atlas image, tightly packed RGBA8, Width*Height*4 bytes.
	Pixels []byte
	Width  int
	Height int

	// TexID identifies the atlas texture in draw commands. The renderer
	// sets it to FontTextureID once the texture is created.
	TexID TextureID

	// Glyphs maps runes to their UV rectangles inside the atlas.
	Glyphs map[rune]GlyphInfo
}

// GlyphInfo locates one glyph in the atlas, in normalized UV coordinates,
// plus its advance in display units.
type GlyphInfo struct {
	U0, V0, U1, V1 float32
	Advance        float32
}

// WhiteUV returns texture coordinates of a guaranteed-opaque-white texel,
// usable for drawing untextured, vertex-colored geometry with the atlas
// bound. The default atlas places it at the top-left corner.
func (a *FontAtlas) WhiteUV() (u, v float32) {
	return 0.5 / float32(a.Width), 0.5 / float32(a.Height)
}

// NewDefaultFontAtlas rasterizes the printable ASCII range of the built-in
// 7x13 bitmap face into an RGBA atlas. GUI libraries with their own font
// stack supply their own FontAtlas instead; this one keeps the renderer,
// its tests, and the demo self-contained.
func NewDefaultFontAtlas() *FontAtlas {
	const (
		first, last = rune(' '), rune('~')
		cols        = 16
	)
	face := basicfont.Face7x13
	adv := face.Advance
	cellW, cellH := adv+1, face.Height+1
	rows := (int(last-first) + cols) / cols

	// Row 0 is reserved: a solid white strip for untextured draws.
	w := nextPow2(cols * cellW)
	h := nextPow2((rows+1)*cellH + 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, image.Rect(0, 0, w, cellH), image.NewUniform(color.White), image.Point{}, draw.Src)

	glyphs := make(map[rune]GlyphInfo, int(last-first)+1)
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	for r := first; r <= last; r++ {
		i := int(r - first)
		cx := (i % cols) * cellW
		cy := (i/cols + 1) * cellH
		d.Dot = fixed.P(cx, cy+face.Ascent)
		d.DrawString(string(r))
		glyphs[r] = GlyphInfo{
			U0:      float32(cx) / float32(w),
			V0:      float32(cy) / float32(h),
			U1:      float32(cx+adv) / float32(w),
			V1:      float32(cy+face.Height) / float32(h),
			Advance: float32(adv),
		}
	}

	return &FontAtlas{
		Pixels: img.Pix,
		Width:  w,
		Height: h,
		Glyphs: glyphs,
	}
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
