package imdraw

import "testing"

func TestDefaultFontAtlasDimensions(t *testing.T) {
	a := NewDefaultFontAtlas()
	if a.Width <= 0 || a.Height <= 0 {
		t.Fatalf("atlas dimensions = %dx%d, want positive", a.Width, a.Height)
	}
	if a.Width&(a.Width-1) != 0 || a.Height&(a.Height-1) != 0 {
		t.Errorf("atlas dimensions = %dx%d, want powers of two", a.Width, a.Height)
	}
	if got, want := len(a.Pixels), a.Width*a.Height*4; got != want {
		t.Errorf("len(Pixels) = %d, want %d", got, want)
	}
}

func TestDefaultFontAtlasWhiteTexel(t *testing.T) {
	a := NewDefaultFontAtlas()
	u, v := a.WhiteUV()
	x := int(u * float32(a.Width))
	y := int(v * float32(a.Height))
	off := (y*a.Width + x) * 4
	for c := 0; c < 4; c++ {
		if a.Pixels[off+c] != 0xFF {
			t.Fatalf("white texel channel %d = %#x, want 0xFF", c, a.Pixels[off+c])
		}
	}
}

func TestDefaultFontAtlasGlyphCoverage(t *testing.T) {
	a := NewDefaultFontAtlas()
	for _, r := range []rune{' ', 'A', 'z', '~'} {
		g, ok := a.Glyphs[r]
		if !ok {
			t.Errorf("glyph %q missing from atlas", r)
			continue
		}
		if g.U0 < 0 || g.V0 < 0 || g.U1 > 1 || g.V1 > 1 || g.U0 >= g.U1 || g.V0 >= g.V1 {
			t.Errorf("glyph %q has degenerate UV rect (%v,%v)-(%v,%v)", r, g.U0, g.V0, g.U1, g.V1)
		}
		if g.Advance <= 0 {
			t.Errorf("glyph %q advance = %v, want positive", r, g.Advance)
		}
	}
	// A visible glyph must have rasterized something.
	g := a.Glyphs['A']
	x0 := int(g.U0 * float32(a.Width))
	y0 := int(g.V0 * float32(a.Height))
	x1 := int(g.U1 * float32(a.Width))
	y1 := int(g.V1 * float32(a.Height))
	var lit bool
	for y := y0; y < y1 && !lit; y++ {
		for x := x0; x < x1; x++ {
			if a.Pixels[(y*a.Width+x)*4+3] != 0 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("glyph 'A' cell contains no opaque pixels")
	}
}

func TestNextPow2(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 1}, {2, 2}, {3, 4}, {100, 128}, {128, 128}, {129, 256},
	}
	for _, tt := range tests {
		if got := nextPow2(tt.in); got != tt.want {
			t.Errorf("nextPow2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
