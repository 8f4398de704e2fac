package imdx11

import (
	"fmt"
	"unsafe"

	"github.com/goimgui/imdx11/d3d11"
	"github.com/goimgui/imdx11/imdraw"
	"github.com/goimgui/imdx11/internal/shaders"
)

// Growth slack added on top of a frame's requirement whenever a buffer has
// to be reallocated, so steady growth doesn't reallocate every frame.
const (
	vertexBufferSlack = 5000
	indexBufferSlack  = 10000
)

var (
	vertexStride = uint32(unsafe.Sizeof(imdraw.DrawVert{}))
	indexFormat  = func() uint32 {
		var idx imdraw.DrawIdx
		if unsafe.Sizeof(idx) == 2 {
			return d3d11.DXGI_FORMAT_R16_UINT
		}
		return d3d11.DXGI_FORMAT_R32_UINT
	}()
)

// Renderer draws GUI frames onto whatever render target the caller has
// bound. Create one per device with New; it is not safe for concurrent use.
type Renderer struct {
	device Device
	ctx    Context

	vertexShader      VertexShader
	pixelShader       PixelShader
	inputLayout       InputLayout
	constantBuffer    Buffer
	blendState        BlendState
	rasterizerState   RasterizerState
	depthStencilState DepthStencilState
	fontView          ShaderResourceView
	fontSampler       SamplerState

	vertexBuffer growableBuffer
	indexBuffer  growableBuffer

	textures *TextureRegistry
	name     string
}

// New builds the full pipeline object set on device and registers the
// renderer's identity and capabilities with the GUI context. Any creation
// failure aborts construction, releases everything created so far, and
// surfaces the underlying device error.
func New(device Device, gui *imdraw.Context, opts ...Option) (*Renderer, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if gui == nil || gui.Fonts == nil {
		return nil, ErrNoFontAtlas
	}
	cfg := config{name: "imdx11"}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Renderer{
		device: device,
		vertexBuffer: growableBuffer{
			bindFlags: d3d11.BIND_VERTEX_BUFFER,
			elemSize:  int(vertexStride),
			slack:     vertexBufferSlack,
		},
		indexBuffer: growableBuffer{
			bindFlags: d3d11.BIND_INDEX_BUFFER,
			elemSize:  int(unsafe.Sizeof(imdraw.DrawIdx(0))),
			slack:     indexBufferSlack,
		},
		textures: NewTextureRegistry(),
		name:     cfg.name,
	}
	ok := false
	defer func() {
		if !ok {
			r.Release()
		}
	}()

	var err error
	if r.vertexShader, r.inputLayout, r.constantBuffer, err = createVertexStage(device); err != nil {
		return nil, err
	}
	if r.pixelShader, err = device.CreatePixelShader(shaders.PixelShader); err != nil {
		return nil, fmt.Errorf("imdx11: create pixel shader: %w", err)
	}
	if r.blendState, r.rasterizerState, r.depthStencilState, err = createFixedStates(device); err != nil {
		return nil, err
	}
	if r.fontView, r.fontSampler, err = createFontTexture(device, gui.Fonts); err != nil {
		return nil, err
	}
	if err = r.vertexBuffer.ensure(device, cfg.initialVertices); err != nil {
		return nil, fmt.Errorf("imdx11: create vertex buffer: %w", err)
	}
	if err = r.indexBuffer.ensure(device, cfg.initialIndices); err != nil {
		return nil, fmt.Errorf("imdx11: create index buffer: %w", err)
	}
	r.ctx = device.ImmediateContext()

	gui.IO.BackendFlags |= imdraw.BackendFlagsRendererHasVtxOffset
	gui.IO.BackendRendererName = cfg.name
	gui.Fonts.TexID = imdraw.FontTextureID

	ok = true
	Logger().Info("renderer created",
		"name", cfg.name,
		"atlas_size", fmt.Sprintf("%dx%d", gui.Fonts.Width, gui.Fonts.Height))
	return r, nil
}

// Textures exposes the registry used to hand host-created textures to the
// GUI for drawing.
func (r *Renderer) Textures() *TextureRegistry {
	return r.textures
}

// Release frees every pipeline object the renderer owns. The device itself
// is not touched; it belongs to the host. Release is idempotent.
func (r *Renderer) Release() {
	handles := []Handle{
		r.fontSampler, r.fontView,
		r.depthStencilState, r.rasterizerState, r.blendState,
		r.constantBuffer, r.inputLayout,
		r.pixelShader, r.vertexShader,
		r.vertexBuffer.buf, r.indexBuffer.buf,
		r.ctx,
	}
	for _, h := range handles {
		if h != nil {
			h.Release()
		}
	}
	r.fontSampler, r.fontView = nil, nil
	r.depthStencilState, r.rasterizerState, r.blendState = nil, nil, nil
	r.constantBuffer, r.inputLayout = nil, nil
	r.pixelShader, r.vertexShader = nil, nil
	r.vertexBuffer.buf, r.vertexBuffer.capacity = nil, 0
	r.indexBuffer.buf, r.indexBuffer.capacity = nil, 0
	r.ctx = nil
}

// setupRenderState applies the renderer's fixed pipeline configuration.
// Called once per frame after upload, and again whenever a draw list asks
// for a render-state reset after a raw callback.
func (r *Renderer) setupRenderState(data *imdraw.DrawData) {
	vp := d3d11.VIEWPORT{
		Width:    data.DisplaySize[0] * data.FramebufferScale[0],
		Height:   data.DisplaySize[1] * data.FramebufferScale[1],
		MinDepth: 0,
		MaxDepth: 1,
	}
	blendFactor := [4]float32{}

	ctx := r.ctx
	ctx.RSSetViewport(&vp)
	ctx.IASetInputLayout(r.inputLayout)
	ctx.IASetVertexBuffer(r.vertexBuffer.buf, vertexStride, 0)
	ctx.IASetIndexBuffer(r.indexBuffer.buf, indexFormat, 0)
	ctx.IASetPrimitiveTopology(d3d11.PRIMITIVE_TOPOLOGY_TRIANGLELIST)
	ctx.VSSetShader(r.vertexShader, nil)
	ctx.VSSetConstantBuffer(r.constantBuffer)
	ctx.PSSetShader(r.pixelShader, nil)
	ctx.PSSetSampler(0, r.fontSampler)
	ctx.GSSetShader(nil, nil)
	ctx.OMSetBlendState(r.blendState, &blendFactor, 0xFFFFFFFF)
	ctx.OMSetDepthStencilState(r.depthStencilState, 0)
	ctx.RSSetState(r.rasterizerState)
}

func createVertexStage(device Device) (VertexShader, InputLayout, Buffer, error) {
	vs, err := device.CreateVertexShader(shaders.VertexShader)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("imdx11: create vertex shader: %w", err)
	}
	layoutDesc := []d3d11.INPUT_ELEMENT_DESC{
		{
			SemanticName:      cstr("POSITION"),
			Format:            d3d11.DXGI_FORMAT_R32G32_FLOAT,
			AlignedByteOffset: d3d11.APPEND_ALIGNED_ELEMENT,
			InputSlotClass:    d3d11.INPUT_PER_VERTEX_DATA,
		},
		{
			SemanticName:      cstr("TEXCOORD"),
			Format:            d3d11.DXGI_FORMAT_R32G32_FLOAT,
			AlignedByteOffset: d3d11.APPEND_ALIGNED_ELEMENT,
			InputSlotClass:    d3d11.INPUT_PER_VERTEX_DATA,
		},
		{
			SemanticName:      cstr("COLOR"),
			Format:            d3d11.DXGI_FORMAT_R8G8B8A8_UNORM,
			AlignedByteOffset: d3d11.APPEND_ALIGNED_ELEMENT,
			InputSlotClass:    d3d11.INPUT_PER_VERTEX_DATA,
		},
	}
	layout, err := device.CreateInputLayout(layoutDesc, shaders.VertexShader)
	if err != nil {
		vs.Release()
		return nil, nil, nil, fmt.Errorf("imdx11: create input layout: %w", err)
	}
	cb, err := device.CreateBuffer(&d3d11.BUFFER_DESC{
		ByteWidth:      uint32(unsafe.Sizeof(projectionMatrix{})),
		Usage:          d3d11.USAGE_DYNAMIC,
		BindFlags:      d3d11.BIND_CONSTANT_BUFFER,
		CPUAccessFlags: d3d11.CPU_ACCESS_WRITE,
	}, nil)
	if err != nil {
		layout.Release()
		vs.Release()
		return nil, nil, nil, fmt.Errorf("imdx11: create constant buffer: %w", err)
	}
	return vs, layout, cb, nil
}

func createFixedStates(device Device) (BlendState, RasterizerState, DepthStencilState, error) {
	// Alpha blending on every render-target slot. Only slot 0 is used, but
	// IndependentBlendEnable pins the behavior across driver versions.
	var blendDesc d3d11.BLEND_DESC
	blendDesc.IndependentBlendEnable = 1
	for i := range blendDesc.RenderTarget {
		blendDesc.RenderTarget[i] = d3d11.RENDER_TARGET_BLEND_DESC{
			BlendEnable:           1,
			SrcBlend:              d3d11.BLEND_SRC_ALPHA,
			DestBlend:             d3d11.BLEND_INV_SRC_ALPHA,
			BlendOp:               d3d11.BLEND_OP_ADD,
			SrcBlendAlpha:         d3d11.BLEND_ONE,
			DestBlendAlpha:        d3d11.BLEND_INV_SRC_ALPHA,
			BlendOpAlpha:          d3d11.BLEND_OP_ADD,
			RenderTargetWriteMask: d3d11.COLOR_WRITE_ENABLE_ALL,
		}
	}
	blend, err := device.CreateBlendState(&blendDesc)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("imdx11: create blend state: %w", err)
	}

	raster, err := device.CreateRasterizerState(&d3d11.RASTERIZER_DESC{
		FillMode:        d3d11.FILL_SOLID,
		CullMode:        d3d11.CULL_NONE,
		DepthClipEnable: 1,
		ScissorEnable:   1,
	})
	if err != nil {
		blend.Release()
		return nil, nil, nil, fmt.Errorf("imdx11: create rasterizer state: %w", err)
	}

	// The GUI draws last and unordered; depth and stencil stay off.
	stencilOp := d3d11.DEPTH_STENCILOP_DESC{
		StencilFailOp:      d3d11.STENCIL_OP_KEEP,
		StencilDepthFailOp: d3d11.STENCIL_OP_KEEP,
		StencilPassOp:      d3d11.STENCIL_OP_KEEP,
		StencilFunc:        d3d11.COMPARISON_ALWAYS,
	}
	depth, err := device.CreateDepthStencilState(&d3d11.DEPTH_STENCIL_DESC{
		DepthWriteMask: d3d11.DEPTH_WRITE_MASK_ALL,
		DepthFunc:      d3d11.COMPARISON_ALWAYS,
		FrontFace:      stencilOp,
		BackFace:       stencilOp,
	})
	if err != nil {
		raster.Release()
		blend.Release()
		return nil, nil, nil, fmt.Errorf("imdx11: create depth-stencil state: %w", err)
	}
	return blend, raster, depth, nil
}

func createFontTexture(device Device, atlas *imdraw.FontAtlas) (ShaderResourceView, SamplerState, error) {
	tex, err := device.CreateTexture2D(&d3d11.TEXTURE2D_DESC{
		Width:      uint32(atlas.Width),
		Height:     uint32(atlas.Height),
		MipLevels:  1,
		ArraySize:  1,
		Format:     d3d11.DXGI_FORMAT_R8G8B8A8_UNORM,
		SampleDesc: d3d11.DXGI_SAMPLE_DESC{Count: 1},
		Usage:      d3d11.USAGE_IMMUTABLE,
		BindFlags:  d3d11.BIND_SHADER_RESOURCE,
	}, atlas.Pixels, uint32(atlas.Width)*4)
	if err != nil {
		return nil, nil, fmt.Errorf("imdx11: create font texture: %w", err)
	}
	// The view holds its own reference; the renderer only keeps the view.
	defer tex.Release()

	view, err := device.CreateShaderResourceView(tex, &d3d11.SHADER_RESOURCE_VIEW_DESC_TEX2D{
		SHADER_RESOURCE_VIEW_DESC: d3d11.SHADER_RESOURCE_VIEW_DESC{
			Format:        d3d11.DXGI_FORMAT_R8G8B8A8_UNORM,
			ViewDimension: d3d11.SRV_DIMENSION_TEXTURE2D,
		},
		Texture2D: d3d11.TEX2D_SRV{MipLevels: 1},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("imdx11: create font texture view: %w", err)
	}

	sampler, err := device.CreateSamplerState(&d3d11.SAMPLER_DESC{
		Filter:         d3d11.FILTER_MIN_MAG_MIP_LINEAR,
		AddressU:       d3d11.TEXTURE_ADDRESS_WRAP,
		AddressV:       d3d11.TEXTURE_ADDRESS_WRAP,
		AddressW:       d3d11.TEXTURE_ADDRESS_WRAP,
		ComparisonFunc: d3d11.COMPARISON_ALWAYS,
	})
	if err != nil {
		view.Release()
		return nil, nil, fmt.Errorf("imdx11: create font sampler: %w", err)
	}
	return view, sampler, nil
}

// cstr returns s as a NUL-terminated byte pointer for semantic names.
func cstr(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}
