//go:build windows

package imdx11

import (
	"unsafe"

	"github.com/goimgui/imdx11/d3d11"
)

// NewDevice adapts a raw Direct3D 11 device for use with New. The device
// is borrowed, not owned: the renderer never releases it.
func NewDevice(dev *d3d11.Device) Device {
	return comDevice{dev}
}

// WrapTexture adapts a raw shader-resource view so it can be handed to
// TextureRegistry.Register. The registry shares ownership with the host;
// callers keeping their own reference must AddRef before wrapping.
func WrapTexture(view *d3d11.ShaderResourceView) ShaderResourceView {
	if view == nil {
		return nil
	}
	return comHandle[*d3d11.ShaderResourceView]{view}
}

// comHandle wraps any COM object exposing only reference management.
type comHandle[T any] struct {
	obj T
}

func (h comHandle[T]) Release() {
	p := any(h.obj)
	switch v := p.(type) {
	case *d3d11.Buffer:
		d3d11.IUnknownRelease(unsafe.Pointer(v), v.Vtbl.Release)
	case *d3d11.Texture2D:
		d3d11.IUnknownRelease(unsafe.Pointer(v), v.Vtbl.Release)
	case *d3d11.ShaderResourceView:
		d3d11.IUnknownRelease(unsafe.Pointer(v), v.Vtbl.Release)
	case *d3d11.VertexShader:
		d3d11.IUnknownRelease(unsafe.Pointer(v), v.Vtbl.Release)
	case *d3d11.PixelShader:
		d3d11.IUnknownRelease(unsafe.Pointer(v), v.Vtbl.Release)
	case *d3d11.GeometryShader:
		d3d11.IUnknownRelease(unsafe.Pointer(v), v.Vtbl.Release)
	case *d3d11.ClassInstance:
		d3d11.IUnknownRelease(unsafe.Pointer(v), v.Vtbl.Release)
	case *d3d11.InputLayout:
		d3d11.IUnknownRelease(unsafe.Pointer(v), v.Vtbl.Release)
	case *d3d11.BlendState:
		d3d11.IUnknownRelease(unsafe.Pointer(v), v.Vtbl.Release)
	case *d3d11.RasterizerState:
		d3d11.IUnknownRelease(unsafe.Pointer(v), v.Vtbl.Release)
	case *d3d11.DepthStencilState:
		d3d11.IUnknownRelease(unsafe.Pointer(v), v.Vtbl.Release)
	case *d3d11.SamplerState:
		d3d11.IUnknownRelease(unsafe.Pointer(v), v.Vtbl.Release)
	}
}

// wrap returns a nil interface for nil COM pointers so "empty slot"
// round-trips through the snapshot as nil.
func wrap[T any](obj *T) Handle {
	if obj == nil {
		return nil
	}
	return comHandle[*T]{obj}
}

func raw[T any](h Handle) *T {
	if h == nil {
		return nil
	}
	return h.(comHandle[*T]).obj
}

type comDevice struct {
	dev *d3d11.Device
}

func (d comDevice) CreateBuffer(desc *d3d11.BUFFER_DESC, data []byte) (Buffer, error) {
	buf, err := d.dev.CreateBuffer(desc, data)
	if err != nil {
		return nil, err
	}
	return comHandle[*d3d11.Buffer]{buf}, nil
}

func (d comDevice) CreateTexture2D(desc *d3d11.TEXTURE2D_DESC, initial []byte, pitch uint32) (Texture2D, error) {
	var init *d3d11.SUBRESOURCE_DATA
	if len(initial) > 0 {
		init = &d3d11.SUBRESOURCE_DATA{
			PSysMem:     uintptr(unsafe.Pointer(&initial[0])),
			SysMemPitch: pitch,
		}
	}
	tex, err := d.dev.CreateTexture2D(desc, init)
	if err != nil {
		return nil, err
	}
	return comHandle[*d3d11.Texture2D]{tex}, nil
}

func (d comDevice) CreateShaderResourceView(tex Texture2D, desc *d3d11.SHADER_RESOURCE_VIEW_DESC_TEX2D) (ShaderResourceView, error) {
	t := tex.(comHandle[*d3d11.Texture2D]).obj
	view, err := d.dev.CreateShaderResourceView(t.AsResource(), desc)
	if err != nil {
		return nil, err
	}
	return comHandle[*d3d11.ShaderResourceView]{view}, nil
}

func (d comDevice) CreateInputLayout(descs []d3d11.INPUT_ELEMENT_DESC, bytecode []byte) (InputLayout, error) {
	layout, err := d.dev.CreateInputLayout(descs, bytecode)
	if err != nil {
		return nil, err
	}
	return comHandle[*d3d11.InputLayout]{layout}, nil
}

func (d comDevice) CreateVertexShader(bytecode []byte) (VertexShader, error) {
	sh, err := d.dev.CreateVertexShader(bytecode)
	if err != nil {
		return nil, err
	}
	return comHandle[*d3d11.VertexShader]{sh}, nil
}

func (d comDevice) CreatePixelShader(bytecode []byte) (PixelShader, error) {
	sh, err := d.dev.CreatePixelShader(bytecode)
	if err != nil {
		return nil, err
	}
	return comHandle[*d3d11.PixelShader]{sh}, nil
}

func (d comDevice) CreateBlendState(desc *d3d11.BLEND_DESC) (BlendState, error) {
	state, err := d.dev.CreateBlendState(desc)
	if err != nil {
		return nil, err
	}
	return comHandle[*d3d11.BlendState]{state}, nil
}

func (d comDevice) CreateRasterizerState(desc *d3d11.RASTERIZER_DESC) (RasterizerState, error) {
	state, err := d.dev.CreateRasterizerState(desc)
	if err != nil {
		return nil, err
	}
	return comHandle[*d3d11.RasterizerState]{state}, nil
}

func (d comDevice) CreateDepthStencilState(desc *d3d11.DEPTH_STENCIL_DESC) (DepthStencilState, error) {
	state, err := d.dev.CreateDepthStencilState(desc)
	if err != nil {
		return nil, err
	}
	return comHandle[*d3d11.DepthStencilState]{state}, nil
}

func (d comDevice) CreateSamplerState(desc *d3d11.SAMPLER_DESC) (SamplerState, error) {
	state, err := d.dev.CreateSamplerState(desc)
	if err != nil {
		return nil, err
	}
	return comHandle[*d3d11.SamplerState]{state}, nil
}

func (d comDevice) ImmediateContext() Context {
	return &comContext{ctx: d.dev.GetImmediateContext()}
}

type comContext struct {
	ctx *d3d11.DeviceContext
}

func (c *comContext) Release() {
	c.ctx.Release()
}

func (c *comContext) IASetInputLayout(layout InputLayout) {
	c.ctx.IASetInputLayout(raw[d3d11.InputLayout](layout))
}

func (c *comContext) IASetVertexBuffer(buf Buffer, stride, offset uint32) {
	c.ctx.IASetVertexBuffers(raw[d3d11.Buffer](buf), stride, offset)
}

func (c *comContext) IASetIndexBuffer(buf Buffer, format, offset uint32) {
	c.ctx.IASetIndexBuffer(raw[d3d11.Buffer](buf), format, offset)
}

func (c *comContext) IASetPrimitiveTopology(topology uint32) {
	c.ctx.IASetPrimitiveTopology(topology)
}

func (c *comContext) VSSetShader(s VertexShader, inst ClassInstance) {
	c.ctx.VSSetShader(raw[d3d11.VertexShader](s), raw[d3d11.ClassInstance](inst))
}

func (c *comContext) VSSetConstantBuffer(buf Buffer) {
	c.ctx.VSSetConstantBuffers(raw[d3d11.Buffer](buf))
}

func (c *comContext) PSSetShader(s PixelShader, inst ClassInstance) {
	c.ctx.PSSetShader(raw[d3d11.PixelShader](s), raw[d3d11.ClassInstance](inst))
}

func (c *comContext) PSSetShaderResource(slot uint32, view ShaderResourceView) {
	c.ctx.PSSetShaderResources(slot, raw[d3d11.ShaderResourceView](view))
}

func (c *comContext) PSSetSampler(slot uint32, sampler SamplerState) {
	c.ctx.PSSetSamplers(slot, raw[d3d11.SamplerState](sampler))
}

func (c *comContext) GSSetShader(s GeometryShader, inst ClassInstance) {
	c.ctx.GSSetShader(raw[d3d11.GeometryShader](s), raw[d3d11.ClassInstance](inst))
}

func (c *comContext) RSSetState(state RasterizerState) {
	c.ctx.RSSetState(raw[d3d11.RasterizerState](state))
}

func (c *comContext) RSSetViewport(vp *d3d11.VIEWPORT) {
	c.ctx.RSSetViewports(vp)
}

func (c *comContext) RSSetScissorRect(rect *d3d11.RECT) {
	c.ctx.RSSetScissorRects(rect)
}

func (c *comContext) OMSetBlendState(state BlendState, factor *[4]float32, sampleMask uint32) {
	c.ctx.OMSetBlendState(raw[d3d11.BlendState](state), factor, sampleMask)
}

func (c *comContext) OMSetDepthStencilState(state DepthStencilState, stencilRef uint32) {
	c.ctx.OMSetDepthStencilState(raw[d3d11.DepthStencilState](state), stencilRef)
}

func (c *comContext) DrawIndexed(count, firstIndex uint32, baseVertex int32) {
	c.ctx.DrawIndexed(count, firstIndex, baseVertex)
}

func (c *comContext) Map(buf Buffer, mapType uint32) (d3d11.MAPPED_SUBRESOURCE, error) {
	return c.ctx.Map(raw[d3d11.Buffer](buf).AsResource(), 0, mapType, 0)
}

func (c *comContext) Unmap(buf Buffer) {
	c.ctx.Unmap(raw[d3d11.Buffer](buf).AsResource(), 0)
}

func (c *comContext) IAGetPrimitiveTopology() uint32 {
	return c.ctx.IAGetPrimitiveTopology()
}

func (c *comContext) IAGetIndexBuffer() (Buffer, uint32, uint32) {
	buf, format, offset := c.ctx.IAGetIndexBuffer()
	return wrap(buf), format, offset
}

func (c *comContext) IAGetVertexBuffer() (Buffer, uint32, uint32) {
	buf, stride, offset := c.ctx.IAGetVertexBuffers()
	return wrap(buf), stride, offset
}

func (c *comContext) IAGetInputLayout() InputLayout {
	return wrap(c.ctx.IAGetInputLayout())
}

func (c *comContext) VSGetShader() (VertexShader, ClassInstance) {
	sh, inst := c.ctx.VSGetShader()
	return wrap(sh), wrap(inst)
}

func (c *comContext) VSGetConstantBuffer() Buffer {
	return wrap(c.ctx.VSGetConstantBuffers())
}

func (c *comContext) PSGetShader() (PixelShader, ClassInstance) {
	sh, inst := c.ctx.PSGetShader()
	return wrap(sh), wrap(inst)
}

func (c *comContext) PSGetShaderResource(slot uint32) ShaderResourceView {
	return wrap(c.ctx.PSGetShaderResources(slot))
}

func (c *comContext) PSGetSampler(slot uint32) SamplerState {
	return wrap(c.ctx.PSGetSamplers(slot))
}

func (c *comContext) GSGetShader() (GeometryShader, ClassInstance) {
	sh, inst := c.ctx.GSGetShader()
	return wrap(sh), wrap(inst)
}

func (c *comContext) RSGetState() RasterizerState {
	return wrap(c.ctx.RSGetState())
}

func (c *comContext) RSGetViewport() d3d11.VIEWPORT {
	return c.ctx.RSGetViewports()
}

func (c *comContext) RSGetScissorRect() d3d11.RECT {
	return c.ctx.RSGetScissorRects()
}

func (c *comContext) OMGetBlendState() (BlendState, [4]float32, uint32) {
	state, factor, mask := c.ctx.OMGetBlendState()
	return wrap(state), factor, mask
}

func (c *comContext) OMGetDepthStencilState() (DepthStencilState, uint32) {
	state, ref := c.ctx.OMGetDepthStencilState()
	return wrap(state), ref
}
