package imdx11

import (
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/goimgui/imdx11/d3d11"
	"github.com/goimgui/imdx11/imdraw"
)

func TestNewHandshake(t *testing.T) {
	dev := newFakeDevice()
	gui := imdraw.NewContext()
	r, err := New(dev, gui, WithRendererName("imdx11_test"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Release()

	if gui.IO.BackendFlags&imdraw.BackendFlagsRendererHasVtxOffset == 0 {
		t.Error("vertex-offset capability flag not set")
	}
	if got, want := gui.IO.BackendRendererName, "imdx11_test"; got != want {
		t.Errorf("renderer name = %q, want %q", got, want)
	}
	if got, want := gui.Fonts.TexID, imdraw.FontTextureID; got != want {
		t.Errorf("atlas TexID = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestNewInvalidArgs(t *testing.T) {
	if _, err := New(nil, imdraw.NewContext()); !errors.Is(err, ErrNilDevice) {
		t.Errorf("nil device: err = %v, want ErrNilDevice", err)
	}
	if _, err := New(newFakeDevice(), nil); !errors.Is(err, ErrNoFontAtlas) {
		t.Errorf("nil context: err = %v, want ErrNoFontAtlas", err)
	}
	if _, err := New(newFakeDevice(), &imdraw.Context{}); !errors.Is(err, ErrNoFontAtlas) {
		t.Errorf("nil atlas: err = %v, want ErrNoFontAtlas", err)
	}
}

func TestNewCreationFailureReleasesEverything(t *testing.T) {
	errBoom := errors.New("boom")
	tests := []struct {
		name string
		fail func(*fakeDevice)
	}{
		{"vertex shader", func(d *fakeDevice) { d.errVertexShader = errBoom }},
		{"input layout", func(d *fakeDevice) { d.errInputLayout = errBoom }},
		{"buffer", func(d *fakeDevice) { d.errBuffer = errBoom }},
		{"pixel shader", func(d *fakeDevice) { d.errPixelShader = errBoom }},
		{"blend state", func(d *fakeDevice) { d.errBlend = errBoom }},
		{"rasterizer state", func(d *fakeDevice) { d.errRasterizer = errBoom }},
		{"depth-stencil state", func(d *fakeDevice) { d.errDepthStencil = errBoom }},
		{"font texture", func(d *fakeDevice) { d.errTexture = errBoom }},
		{"font view", func(d *fakeDevice) { d.errView = errBoom }},
		{"sampler", func(d *fakeDevice) { d.errSampler = errBoom }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dev := newFakeDevice()
			tc.fail(dev)
			r, err := New(dev, imdraw.NewContext())
			if !errors.Is(err, errBoom) {
				t.Fatalf("err = %v, want wrapped errBoom", err)
			}
			if r != nil {
				t.Fatal("renderer returned alongside error")
			}
			if leaks := dev.leaked(); len(leaks) != 0 {
				t.Errorf("leaked objects after failed construction: %v", leaks)
			}
		})
	}
}

func TestReleaseIdempotent(t *testing.T) {
	r, dev := newTestRenderer(t)
	r.Release()
	r.Release()
	if leaks := dev.leaked(); len(leaks) != 0 {
		t.Errorf("leaked objects: %v", leaks)
	}
	if got, want := dev.ctx.refs, 1; got != want {
		t.Errorf("context refs = %d, want %d", got, want)
	}
}

func TestRenderDegenerateFrame(t *testing.T) {
	tests := []struct {
		name string
		size [2]float32
	}{
		{"zero width", [2]float32{0, 600}},
		{"zero height", [2]float32{800, 0}},
		{"negative width", [2]float32{-800, 600}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, dev := newTestRenderer(t)
			defer r.Release()

			data := testFrame(quadList(imdraw.FontTextureID, [4]float32{0, 0, 10, 10}))
			data.DisplaySize = tc.size
			before := dev.ctx.state
			if err := r.Render(data); err != nil {
				t.Fatalf("Render: %v", err)
			}
			if len(dev.ctx.draws) != 0 {
				t.Errorf("draws = %d, want 0", len(dev.ctx.draws))
			}
			if dev.ctx.state != before {
				t.Error("context state changed by degenerate frame")
			}
		})
	}
}

func TestRenderSingleQuad(t *testing.T) {
	r, dev := newTestRenderer(t)
	defer r.Release()

	clip := [4]float32{10, 20, 110, 220}
	if err := r.Render(testFrame(quadList(imdraw.FontTextureID, clip))); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if got, want := dev.ctx.draws, []drawCall{{6, 0, 0}}; len(got) != 1 || got[0] != want[0] {
		t.Fatalf("draws = %v, want %v", got, want)
	}
	wantScissor := d3d11.RECT{Left: 10, Top: 20, Right: 110, Bottom: 220}
	if got := dev.ctx.scissors[len(dev.ctx.scissors)-2]; got != wantScissor {
		t.Errorf("scissor = %+v, want %+v", got, wantScissor)
	}
	// One bind for the font atlas, one clearing bind from the restore.
	if got, want := len(dev.ctx.resources), 2; got != want {
		t.Errorf("resource binds = %d, want %d", got, want)
	}
	if dev.ctx.resources[0] != r.fontView {
		t.Error("first resource bind is not the font atlas view")
	}
}

func TestRenderUploadsGeometry(t *testing.T) {
	r, _ := newTestRenderer(t)
	defer r.Release()

	list := quadList(imdraw.FontTextureID, [4]float32{1, 2, 3, 4})
	if err := r.Render(testFrame(list)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	vtxBuf := r.vertexBuffer.buf.(*fakeBuffer)
	gotVtx := unsafe.Slice((*imdraw.DrawVert)(unsafe.Pointer(&vtxBuf.mem[0])), len(list.VtxBuffer))
	for i, want := range list.VtxBuffer {
		if gotVtx[i] != want {
			t.Errorf("vertex %d = %+v, want %+v", i, gotVtx[i], want)
		}
	}
	idxBuf := r.indexBuffer.buf.(*fakeBuffer)
	gotIdx := unsafe.Slice((*imdraw.DrawIdx)(unsafe.Pointer(&idxBuf.mem[0])), len(list.IdxBuffer))
	for i, want := range list.IdxBuffer {
		if gotIdx[i] != want {
			t.Errorf("index %d = %d, want %d", i, gotIdx[i], want)
		}
	}
	if vtxBuf.mapped || idxBuf.mapped {
		t.Error("buffers left mapped after render")
	}
}

func TestRenderOffsetsAcrossLists(t *testing.T) {
	r, dev := newTestRenderer(t)
	defer r.Release()

	first := quadList(imdraw.FontTextureID, [4]float32{0, 0, 10, 10})
	second := quadList(imdraw.FontTextureID, [4]float32{0, 0, 20, 20})
	// Split the second quad into two element commands of one triangle each.
	second.CmdBuffer = []imdraw.DrawCmd{
		{Kind: imdraw.CmdElements, ElemCount: 3, ClipRect: [4]float32{0, 0, 20, 20}, TexID: imdraw.FontTextureID},
		{Kind: imdraw.CmdElements, ElemCount: 3, ClipRect: [4]float32{0, 0, 20, 20}, TexID: imdraw.FontTextureID},
	}

	if err := r.Render(testFrame(first, second)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := []drawCall{
		{count: 6, firstIndex: 0, baseVertex: 0},
		{count: 3, firstIndex: 6, baseVertex: 4},
		{count: 3, firstIndex: 9, baseVertex: 4},
	}
	got := dev.ctx.draws
	if len(got) != len(want) {
		t.Fatalf("draws = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("draw %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRenderClipRectTransform(t *testing.T) {
	r, dev := newTestRenderer(t)
	defer r.Release()

	data := testFrame(quadList(imdraw.FontTextureID, [4]float32{20, 20, 30, 30}))
	data.DisplayPos = [2]float32{10, 10}
	data.FramebufferScale = [2]float32{2, 2}
	if err := r.Render(data); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := d3d11.RECT{Left: 20, Top: 20, Right: 40, Bottom: 40}
	if got := dev.ctx.scissors[len(dev.ctx.scissors)-2]; got != want {
		t.Errorf("scissor = %+v, want %+v", got, want)
	}
}

func TestRenderTextureResolution(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		r, dev := newTestRenderer(t)
		defer r.Release()

		view := &fakeView{fakeHandle: *newFakeHandle("user-srv")}
		id := r.Textures().Register(view)
		if err := r.Render(testFrame(quadList(id, [4]float32{0, 0, 10, 10}))); err != nil {
			t.Fatalf("Render: %v", err)
		}
		if got, want := len(dev.ctx.draws), 1; got != want {
			t.Fatalf("draws = %d, want %d", got, want)
		}
		// Font bind, user texture bind, clearing restore bind.
		if got, want := len(dev.ctx.resources), 3; got != want {
			t.Fatalf("resource binds = %d, want %d", got, want)
		}
		if dev.ctx.resources[1] != ShaderResourceView(view) {
			t.Error("user texture was not bound for its element command")
		}
	})

	t.Run("unregistered fails", func(t *testing.T) {
		r, dev := newTestRenderer(t)
		defer r.Release()

		err := r.Render(testFrame(quadList(imdraw.TextureID(42), [4]float32{0, 0, 10, 10})))
		if !errors.Is(err, ErrTextureNotFound) {
			t.Fatalf("err = %v, want ErrTextureNotFound", err)
		}
		if got := len(dev.ctx.draws); got != 0 {
			t.Errorf("draws after unknown texture = %d, want 0", got)
		}
	})

	t.Run("unregister invalidates", func(t *testing.T) {
		r, _ := newTestRenderer(t)
		defer r.Release()

		view := &fakeView{fakeHandle: *newFakeHandle("user-srv")}
		id := r.Textures().Register(view)
		r.Textures().Unregister(id)
		err := r.Render(testFrame(quadList(id, [4]float32{0, 0, 10, 10})))
		if !errors.Is(err, ErrTextureNotFound) {
			t.Fatalf("err = %v, want ErrTextureNotFound", err)
		}
	})
}

func TestRenderCallbacks(t *testing.T) {
	r, dev := newTestRenderer(t)
	defer r.Release()

	list := quadList(imdraw.FontTextureID, [4]float32{0, 0, 10, 10})
	var gotList *imdraw.DrawList
	var gotData any
	list.CmdBuffer = append(list.CmdBuffer,
		imdraw.DrawCmd{
			Kind: imdraw.CmdCallback,
			Callback: func(l *imdraw.DrawList, cmd *imdraw.DrawCmd) {
				gotList = l
				gotData = cmd.UserData
				// Simulate a callback trashing pipeline state.
				dev.ctx.IASetPrimitiveTopology(0)
			},
			UserData: "payload",
		},
		imdraw.DrawCmd{Kind: imdraw.CmdResetRenderState},
		imdraw.DrawCmd{Kind: imdraw.CmdCallback}, // nil callback is skipped
	)

	// Snapshot the topology the reset command should reassert before the
	// final restore rewinds everything.
	var topologyAfterReset uint32
	list.CmdBuffer = append(list.CmdBuffer, imdraw.DrawCmd{
		Kind: imdraw.CmdCallback,
		Callback: func(*imdraw.DrawList, *imdraw.DrawCmd) {
			topologyAfterReset = dev.ctx.state.topology
		},
	})

	if err := r.Render(testFrame(list)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if gotList != list {
		t.Error("callback did not receive its owning list")
	}
	if got, want := gotData, any("payload"); got != want {
		t.Errorf("callback user data = %v, want %v", got, want)
	}
	if got, want := topologyAfterReset, uint32(d3d11.PRIMITIVE_TOPOLOGY_TRIANGLELIST); got != want {
		t.Errorf("topology after reset command = %d, want %d", got, want)
	}
}

func TestRenderMapFailure(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("vertex map", func(t *testing.T) {
		r, dev := newTestRenderer(t)
		defer r.Release()

		dev.ctx.mapFailures = map[Buffer]error{r.vertexBuffer.buf: errBoom}
		err := r.Render(testFrame(quadList(imdraw.FontTextureID, [4]float32{0, 0, 10, 10})))
		if !errors.Is(err, errBoom) {
			t.Fatalf("err = %v, want wrapped errBoom", err)
		}
		if got := len(dev.ctx.draws); got != 0 {
			t.Errorf("draws after map failure = %d, want 0", got)
		}
	})

	t.Run("index map unmaps vertex", func(t *testing.T) {
		r, dev := newTestRenderer(t)
		defer r.Release()

		dev.ctx.mapFailures = map[Buffer]error{r.indexBuffer.buf: errBoom}
		err := r.Render(testFrame(quadList(imdraw.FontTextureID, [4]float32{0, 0, 10, 10})))
		if !errors.Is(err, errBoom) {
			t.Fatalf("err = %v, want wrapped errBoom", err)
		}
		if r.vertexBuffer.buf.(*fakeBuffer).mapped {
			t.Error("vertex buffer left mapped after index map failure")
		}
	})
}

func TestOrthoProjection(t *testing.T) {
	tests := []struct {
		name string
		pos  [2]float32
		size [2]float32
	}{
		{"origin", [2]float32{0, 0}, [2]float32{800, 600}},
		{"offset viewport", [2]float32{100, 50}, [2]float32{640, 480}},
	}
	// The matrix terms are computed in float32, so corner projection picks
	// up one ulp of rounding for offset viewports.
	near := func(a, b float32) bool {
		return math.Abs(float64(a-b)) <= 1e-6
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := ortho(&imdraw.DrawData{DisplayPos: tc.pos, DisplaySize: tc.size}).mvp

			project := func(x, y float32) (float32, float32) {
				return x*m[0][0] + m[3][0], y*m[1][1] + m[3][1]
			}
			if gx, gy := project(tc.pos[0], tc.pos[1]); !near(gx, -1) || !near(gy, 1) {
				t.Errorf("top-left -> (%v, %v), want (-1, 1)", gx, gy)
			}
			if gx, gy := project(tc.pos[0]+tc.size[0], tc.pos[1]+tc.size[1]); !near(gx, 1) || !near(gy, -1) {
				t.Errorf("bottom-right -> (%v, %v), want (1, -1)", gx, gy)
			}
		})
	}
}

func TestSetupRenderStateViewport(t *testing.T) {
	r, dev := newTestRenderer(t)
	defer r.Release()

	data := testFrame(quadList(imdraw.FontTextureID, [4]float32{0, 0, 10, 10}))
	data.FramebufferScale = [2]float32{2, 2}
	var vpDuringFrame d3d11.VIEWPORT
	data.Lists[0].CmdBuffer = append(data.Lists[0].CmdBuffer, imdraw.DrawCmd{
		Kind: imdraw.CmdCallback,
		Callback: func(*imdraw.DrawList, *imdraw.DrawCmd) {
			vpDuringFrame = dev.ctx.state.viewport
		},
	})
	if err := r.Render(data); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := d3d11.VIEWPORT{Width: 1600, Height: 1200, MinDepth: 0, MaxDepth: 1}
	if vpDuringFrame != want {
		t.Errorf("viewport = %+v, want %+v", vpDuringFrame, want)
	}
}
