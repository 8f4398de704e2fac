package imdx11

import "github.com/goimgui/imdx11/d3d11"

// Handle is a reference to a driver-owned GPU object. Release drops this
// reference; the driver frees the object once no references remain.
// Handles are shared with the driver and, for registered textures, with the
// host application.
type Handle interface {
	Release()
}

// The concrete handle kinds mirror the Direct3D 11 object types the
// renderer touches. On Windows they wrap raw COM pointers (see NewDevice);
// tests substitute recording fakes.
type (
	Buffer             interface{ Handle }
	Texture2D          interface{ Handle }
	ShaderResourceView interface{ Handle }
	VertexShader       interface{ Handle }
	PixelShader        interface{ Handle }
	GeometryShader     interface{ Handle }
	ClassInstance      interface{ Handle }
	InputLayout        interface{ Handle }
	BlendState         interface{ Handle }
	RasterizerState    interface{ Handle }
	DepthStencilState  interface{ Handle }
	SamplerState       interface{ Handle }
)

// Device is the subset of ID3D11Device the renderer uses to build its
// pipeline objects. The renderer never creates or owns the device itself.
type Device interface {
	CreateBuffer(desc *d3d11.BUFFER_DESC, data []byte) (Buffer, error)
	// CreateTexture2D creates a texture with optional initial pixel data;
	// pitch is the byte stride between rows of initial.
	CreateTexture2D(desc *d3d11.TEXTURE2D_DESC, initial []byte, pitch uint32) (Texture2D, error)
	CreateShaderResourceView(tex Texture2D, desc *d3d11.SHADER_RESOURCE_VIEW_DESC_TEX2D) (ShaderResourceView, error)
	CreateInputLayout(descs []d3d11.INPUT_ELEMENT_DESC, bytecode []byte) (InputLayout, error)
	CreateVertexShader(bytecode []byte) (VertexShader, error)
	CreatePixelShader(bytecode []byte) (PixelShader, error)
	CreateBlendState(desc *d3d11.BLEND_DESC) (BlendState, error)
	CreateRasterizerState(desc *d3d11.RASTERIZER_DESC) (RasterizerState, error)
	CreateDepthStencilState(desc *d3d11.DEPTH_STENCIL_DESC) (DepthStencilState, error)
	CreateSamplerState(desc *d3d11.SAMPLER_DESC) (SamplerState, error)
	// ImmediateContext returns a new reference to the device's immediate
	// context; the caller releases it.
	ImmediateContext() Context
}

// Context is the subset of ID3D11DeviceContext the renderer drives. Slot
// arguments are omitted where the renderer only ever uses slot 0 with a
// single element; getters hand back a reference the caller must release.
//
// A nil handle passed to a setter, or returned by a getter, means "nothing
// bound": setters with nil explicitly clear the slot.
type Context interface {
	Handle

	IASetInputLayout(layout InputLayout)
	IASetVertexBuffer(buf Buffer, stride, offset uint32)
	IASetIndexBuffer(buf Buffer, format, offset uint32)
	IASetPrimitiveTopology(topology uint32)
	VSSetShader(s VertexShader, inst ClassInstance)
	VSSetConstantBuffer(buf Buffer)
	PSSetShader(s PixelShader, inst ClassInstance)
	PSSetShaderResource(slot uint32, view ShaderResourceView)
	PSSetSampler(slot uint32, sampler SamplerState)
	GSSetShader(s GeometryShader, inst ClassInstance)
	RSSetState(state RasterizerState)
	RSSetViewport(vp *d3d11.VIEWPORT)
	RSSetScissorRect(rect *d3d11.RECT)
	OMSetBlendState(state BlendState, factor *[4]float32, sampleMask uint32)
	OMSetDepthStencilState(state DepthStencilState, stencilRef uint32)
	DrawIndexed(count, firstIndex uint32, baseVertex int32)
	// Map maps subresource 0 of buf for CPU access; Unmap releases it.
	Map(buf Buffer, mapType uint32) (d3d11.MAPPED_SUBRESOURCE, error)
	Unmap(buf Buffer)

	IAGetPrimitiveTopology() uint32
	IAGetIndexBuffer() (buf Buffer, format, offset uint32)
	IAGetVertexBuffer() (buf Buffer, stride, offset uint32)
	IAGetInputLayout() InputLayout
	VSGetShader() (VertexShader, ClassInstance)
	VSGetConstantBuffer() Buffer
	PSGetShader() (PixelShader, ClassInstance)
	PSGetShaderResource(slot uint32) ShaderResourceView
	PSGetSampler(slot uint32) SamplerState
	GSGetShader() (GeometryShader, ClassInstance)
	RSGetState() RasterizerState
	RSGetViewport() d3d11.VIEWPORT
	RSGetScissorRect() d3d11.RECT
	OMGetBlendState() (state BlendState, factor [4]float32, sampleMask uint32)
	OMGetDepthStencilState() (state DepthStencilState, stencilRef uint32)
}
