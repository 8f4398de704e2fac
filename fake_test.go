package imdx11

import (
	"testing"
	"unsafe"

	"github.com/goimgui/imdx11/d3d11"
	"github.com/goimgui/imdx11/imdraw"
)

// fakeHandle is the base of every fake GPU object. refs mirrors the COM
// reference count: creation and every getter add one, Release drops one.
type fakeHandle struct {
	kind string
	refs int
}

func (h *fakeHandle) Release() { h.refs-- }
func (h *fakeHandle) addRef()  { h.refs++ }

func newFakeHandle(kind string) *fakeHandle {
	return &fakeHandle{kind: kind, refs: 1}
}

// grab emulates the AddRef a context getter performs on a bound object.
func grabRef(h Handle) {
	if h != nil {
		h.(interface{ addRef() }).addRef()
	}
}

type fakeBuffer struct {
	fakeHandle
	desc   d3d11.BUFFER_DESC
	mem    []byte
	mapped bool
}

type fakeTexture struct {
	fakeHandle
	desc d3d11.TEXTURE2D_DESC
}

type fakeView struct {
	fakeHandle
}

// fakeDevice implements Device and records everything it creates. Tests
// inject creation failures per object kind via the err fields.
type fakeDevice struct {
	ctx *fakeContext

	buffers  []*fakeBuffer
	textures []*fakeTexture
	views    []*fakeView
	handles  []*fakeHandle

	errBuffer       error
	errTexture      error
	errView         error
	errInputLayout  error
	errVertexShader error
	errPixelShader  error
	errBlend        error
	errRasterizer   error
	errDepthStencil error
	errSampler      error
}

func newFakeDevice() *fakeDevice {
	d := &fakeDevice{}
	d.ctx = &fakeContext{refs: 1}
	return d
}

func (d *fakeDevice) newHandle(kind string) *fakeHandle {
	h := newFakeHandle(kind)
	d.handles = append(d.handles, h)
	return h
}

func (d *fakeDevice) CreateBuffer(desc *d3d11.BUFFER_DESC, data []byte) (Buffer, error) {
	if d.errBuffer != nil {
		return nil, d.errBuffer
	}
	b := &fakeBuffer{
		fakeHandle: *newFakeHandle("buffer"),
		desc:       *desc,
		mem:        make([]byte, desc.ByteWidth),
	}
	copy(b.mem, data)
	d.buffers = append(d.buffers, b)
	return b, nil
}

func (d *fakeDevice) CreateTexture2D(desc *d3d11.TEXTURE2D_DESC, initial []byte, pitch uint32) (Texture2D, error) {
	if d.errTexture != nil {
		return nil, d.errTexture
	}
	t := &fakeTexture{fakeHandle: *newFakeHandle("texture2d"), desc: *desc}
	d.textures = append(d.textures, t)
	return t, nil
}

func (d *fakeDevice) CreateShaderResourceView(tex Texture2D, desc *d3d11.SHADER_RESOURCE_VIEW_DESC_TEX2D) (ShaderResourceView, error) {
	if d.errView != nil {
		return nil, d.errView
	}
	v := &fakeView{fakeHandle: *newFakeHandle("srv")}
	d.views = append(d.views, v)
	return v, nil
}

func (d *fakeDevice) CreateInputLayout(descs []d3d11.INPUT_ELEMENT_DESC, bytecode []byte) (InputLayout, error) {
	if d.errInputLayout != nil {
		return nil, d.errInputLayout
	}
	return d.newHandle("inputlayout"), nil
}

func (d *fakeDevice) CreateVertexShader(bytecode []byte) (VertexShader, error) {
	if d.errVertexShader != nil {
		return nil, d.errVertexShader
	}
	return d.newHandle("vs"), nil
}

func (d *fakeDevice) CreatePixelShader(bytecode []byte) (PixelShader, error) {
	if d.errPixelShader != nil {
		return nil, d.errPixelShader
	}
	return d.newHandle("ps"), nil
}

func (d *fakeDevice) CreateBlendState(desc *d3d11.BLEND_DESC) (BlendState, error) {
	if d.errBlend != nil {
		return nil, d.errBlend
	}
	return d.newHandle("blend"), nil
}

func (d *fakeDevice) CreateRasterizerState(desc *d3d11.RASTERIZER_DESC) (RasterizerState, error) {
	if d.errRasterizer != nil {
		return nil, d.errRasterizer
	}
	return d.newHandle("rasterizer"), nil
}

func (d *fakeDevice) CreateDepthStencilState(desc *d3d11.DEPTH_STENCIL_DESC) (DepthStencilState, error) {
	if d.errDepthStencil != nil {
		return nil, d.errDepthStencil
	}
	return d.newHandle("depthstencil"), nil
}

func (d *fakeDevice) CreateSamplerState(desc *d3d11.SAMPLER_DESC) (SamplerState, error) {
	if d.errSampler != nil {
		return nil, d.errSampler
	}
	return d.newHandle("sampler"), nil
}

func (d *fakeDevice) ImmediateContext() Context {
	d.ctx.refs++
	return d.ctx
}

// leaked reports objects whose reference count did not return to zero,
// ignoring ones still legitimately owned (refs 1 while owner alive).
func (d *fakeDevice) leaked() []string {
	var out []string
	for _, b := range d.buffers {
		if b.refs != 0 {
			out = append(out, b.kind)
		}
	}
	for _, t := range d.textures {
		if t.refs != 0 {
			out = append(out, t.kind)
		}
	}
	for _, v := range d.views {
		if v.refs != 0 {
			out = append(out, v.kind)
		}
	}
	for _, h := range d.handles {
		if h.refs != 0 {
			out = append(out, h.kind)
		}
	}
	return out
}

// fakeState mirrors every context slot the renderer touches. It is a plain
// comparable struct so tests can snapshot it and compare with ==.
type fakeState struct {
	topology     uint32
	indexBuffer  Buffer
	indexFormat  uint32
	indexOffset  uint32
	vertexBuffer Buffer
	vertexStride uint32
	vertexOffset uint32
	inputLayout  InputLayout

	vs          VertexShader
	vsInstance  ClassInstance
	vsConstants Buffer
	gs          GeometryShader
	gsInstance  ClassInstance
	ps          PixelShader
	psInstance  ClassInstance
	psResource  ShaderResourceView
	psSampler   SamplerState

	viewport d3d11.VIEWPORT
	scissor  d3d11.RECT

	rasterizer   RasterizerState
	blend        BlendState
	blendFactor  [4]float32
	sampleMask   uint32
	depthStencil DepthStencilState
	stencilRef   uint32
}

type drawCall struct {
	count      uint32
	firstIndex uint32
	baseVertex int32
}

// fakeContext implements Context over fakeState and logs the calls tests
// care about: draws, scissor changes, and shader-resource binds.
type fakeContext struct {
	state fakeState
	refs  int

	draws     []drawCall
	scissors  []d3d11.RECT
	resources []ShaderResourceView

	mapFailures map[Buffer]error
}

func (c *fakeContext) Release() { c.refs-- }

func (c *fakeContext) IASetInputLayout(layout InputLayout) { c.state.inputLayout = layout }

func (c *fakeContext) IASetVertexBuffer(buf Buffer, stride, offset uint32) {
	c.state.vertexBuffer, c.state.vertexStride, c.state.vertexOffset = buf, stride, offset
}

func (c *fakeContext) IASetIndexBuffer(buf Buffer, format, offset uint32) {
	c.state.indexBuffer, c.state.indexFormat, c.state.indexOffset = buf, format, offset
}

func (c *fakeContext) IASetPrimitiveTopology(topology uint32) { c.state.topology = topology }

func (c *fakeContext) VSSetShader(s VertexShader, inst ClassInstance) {
	c.state.vs, c.state.vsInstance = s, inst
}

func (c *fakeContext) VSSetConstantBuffer(buf Buffer) { c.state.vsConstants = buf }

func (c *fakeContext) PSSetShader(s PixelShader, inst ClassInstance) {
	c.state.ps, c.state.psInstance = s, inst
}

func (c *fakeContext) PSSetShaderResource(slot uint32, view ShaderResourceView) {
	c.state.psResource = view
	c.resources = append(c.resources, view)
}

func (c *fakeContext) PSSetSampler(slot uint32, sampler SamplerState) { c.state.psSampler = sampler }

func (c *fakeContext) GSSetShader(s GeometryShader, inst ClassInstance) {
	c.state.gs, c.state.gsInstance = s, inst
}

func (c *fakeContext) RSSetState(state RasterizerState) { c.state.rasterizer = state }

func (c *fakeContext) RSSetViewport(vp *d3d11.VIEWPORT) { c.state.viewport = *vp }

func (c *fakeContext) RSSetScissorRect(rect *d3d11.RECT) {
	c.state.scissor = *rect
	c.scissors = append(c.scissors, *rect)
}

func (c *fakeContext) OMSetBlendState(state BlendState, factor *[4]float32, sampleMask uint32) {
	c.state.blend, c.state.blendFactor, c.state.sampleMask = state, *factor, sampleMask
}

func (c *fakeContext) OMSetDepthStencilState(state DepthStencilState, stencilRef uint32) {
	c.state.depthStencil, c.state.stencilRef = state, stencilRef
}

func (c *fakeContext) DrawIndexed(count, firstIndex uint32, baseVertex int32) {
	c.draws = append(c.draws, drawCall{count, firstIndex, baseVertex})
}

func (c *fakeContext) Map(buf Buffer, mapType uint32) (d3d11.MAPPED_SUBRESOURCE, error) {
	if err := c.mapFailures[buf]; err != nil {
		return d3d11.MAPPED_SUBRESOURCE{}, err
	}
	b := buf.(*fakeBuffer)
	b.mapped = true
	return d3d11.MAPPED_SUBRESOURCE{
		PData:    uintptr(unsafe.Pointer(&b.mem[0])),
		RowPitch: uint32(len(b.mem)),
	}, nil
}

func (c *fakeContext) Unmap(buf Buffer) {
	buf.(*fakeBuffer).mapped = false
}

func (c *fakeContext) IAGetPrimitiveTopology() uint32 { return c.state.topology }

func (c *fakeContext) IAGetIndexBuffer() (Buffer, uint32, uint32) {
	grabRef(c.state.indexBuffer)
	return c.state.indexBuffer, c.state.indexFormat, c.state.indexOffset
}

func (c *fakeContext) IAGetVertexBuffer() (Buffer, uint32, uint32) {
	grabRef(c.state.vertexBuffer)
	return c.state.vertexBuffer, c.state.vertexStride, c.state.vertexOffset
}

func (c *fakeContext) IAGetInputLayout() InputLayout {
	grabRef(c.state.inputLayout)
	return c.state.inputLayout
}

func (c *fakeContext) VSGetShader() (VertexShader, ClassInstance) {
	grabRef(c.state.vs)
	grabRef(c.state.vsInstance)
	return c.state.vs, c.state.vsInstance
}

func (c *fakeContext) VSGetConstantBuffer() Buffer {
	grabRef(c.state.vsConstants)
	return c.state.vsConstants
}

func (c *fakeContext) PSGetShader() (PixelShader, ClassInstance) {
	grabRef(c.state.ps)
	grabRef(c.state.psInstance)
	return c.state.ps, c.state.psInstance
}

func (c *fakeContext) PSGetShaderResource(slot uint32) ShaderResourceView {
	grabRef(c.state.psResource)
	return c.state.psResource
}

func (c *fakeContext) PSGetSampler(slot uint32) SamplerState {
	grabRef(c.state.psSampler)
	return c.state.psSampler
}

func (c *fakeContext) GSGetShader() (GeometryShader, ClassInstance) {
	grabRef(c.state.gs)
	grabRef(c.state.gsInstance)
	return c.state.gs, c.state.gsInstance
}

func (c *fakeContext) RSGetState() RasterizerState {
	grabRef(c.state.rasterizer)
	return c.state.rasterizer
}

func (c *fakeContext) RSGetViewport() d3d11.VIEWPORT { return c.state.viewport }

func (c *fakeContext) RSGetScissorRect() d3d11.RECT { return c.state.scissor }

func (c *fakeContext) OMGetBlendState() (BlendState, [4]float32, uint32) {
	grabRef(c.state.blend)
	return c.state.blend, c.state.blendFactor, c.state.sampleMask
}

func (c *fakeContext) OMGetDepthStencilState() (DepthStencilState, uint32) {
	grabRef(c.state.depthStencil)
	return c.state.depthStencil, c.state.stencilRef
}

// newTestRenderer builds a renderer over a fresh fake device, failing the
// test on construction errors.
func newTestRenderer(t *testing.T, opts ...Option) (*Renderer, *fakeDevice) {
	t.Helper()
	dev := newFakeDevice()
	r, err := New(dev, imdraw.NewContext(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r, dev
}

// quadList returns a draw list holding one textured quad: 4 vertices,
// 6 indices, one element command covering the given clip rectangle.
func quadList(tex imdraw.TextureID, clip [4]float32) *imdraw.DrawList {
	return &imdraw.DrawList{
		VtxBuffer: []imdraw.DrawVert{
			{Pos: [2]float32{clip[0], clip[1]}, Col: 0xFFFFFFFF},
			{Pos: [2]float32{clip[2], clip[1]}, Col: 0xFFFFFFFF},
			{Pos: [2]float32{clip[2], clip[3]}, Col: 0xFFFFFFFF},
			{Pos: [2]float32{clip[0], clip[3]}, Col: 0xFFFFFFFF},
		},
		IdxBuffer: []imdraw.DrawIdx{0, 1, 2, 0, 2, 3},
		CmdBuffer: []imdraw.DrawCmd{{
			Kind:      imdraw.CmdElements,
			ElemCount: 6,
			ClipRect:  clip,
			TexID:     tex,
		}},
	}
}

// testFrame returns an 800x600 frame at scale 1 with the given lists.
func testFrame(lists ...*imdraw.DrawList) *imdraw.DrawData {
	data := &imdraw.DrawData{
		DisplaySize:      [2]float32{800, 600},
		FramebufferScale: [2]float32{1, 1},
	}
	for _, l := range lists {
		data.AddList(l)
	}
	return data
}
