//go:build windows

package d3d11

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	d3d11DLL = windows.NewLazySystemDLL("d3d11.dll")

	procD3D11CreateDevice             = d3d11DLL.NewProc("D3D11CreateDevice")
	procD3D11CreateDeviceAndSwapChain = d3d11DLL.NewProc("D3D11CreateDeviceAndSwapChain")
)

// IID_Texture2D is the interface ID of ID3D11Texture2D, used to fetch
// swap-chain back buffers.
var IID_Texture2D = windows.GUID{
	Data1: 0x6f15aaf2, Data2: 0xd208, Data3: 0x4e89,
	Data4: [8]byte{0x9a, 0xb4, 0x48, 0x95, 0x35, 0xd3, 0x4f, 0x9c},
}

type _IUnknownVTbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// IUnknownAddRef increments the reference count of a COM object.
func IUnknownAddRef(obj unsafe.Pointer, addRefMethod uintptr) {
	syscall.SyscallN(addRefMethod, uintptr(obj))
}

// IUnknownRelease decrements the reference count of a COM object.
func IUnknownRelease(obj unsafe.Pointer, releaseMethod uintptr) {
	syscall.SyscallN(releaseMethod, uintptr(obj))
}

// Resource is the common base of mappable/copyable objects. Concrete types
// cast themselves to *Resource when a method takes ID3D11Resource.
type Resource struct {
	Vtbl *_IUnknownVTbl
}

type Buffer struct {
	Vtbl *_IUnknownVTbl
}

// AsResource casts the buffer for use with resource-typed methods.
func (b *Buffer) AsResource() *Resource { return (*Resource)(unsafe.Pointer(b)) }

type Texture2D struct {
	Vtbl *_IUnknownVTbl
}

// AsResource casts the texture for use with resource-typed methods.
func (t *Texture2D) AsResource() *Resource { return (*Resource)(unsafe.Pointer(t)) }

type ShaderResourceView struct {
	Vtbl *_IUnknownVTbl
}

type RenderTargetView struct {
	Vtbl *_IUnknownVTbl
}

type VertexShader struct {
	Vtbl *_IUnknownVTbl
}

type PixelShader struct {
	Vtbl *_IUnknownVTbl
}

type GeometryShader struct {
	Vtbl *_IUnknownVTbl
}

type ClassInstance struct {
	Vtbl *_IUnknownVTbl
}

type InputLayout struct {
	Vtbl *_IUnknownVTbl
}

type BlendState struct {
	Vtbl *_IUnknownVTbl
}

type RasterizerState struct {
	Vtbl *_IUnknownVTbl
}

type DepthStencilState struct {
	Vtbl *_IUnknownVTbl
}

type SamplerState struct {
	Vtbl *_IUnknownVTbl
}

type Device struct {
	Vtbl *struct {
		_IUnknownVTbl
		CreateBuffer                         uintptr
		CreateTexture1D                      uintptr
		CreateTexture2D                      uintptr
		CreateTexture3D                      uintptr
		CreateShaderResourceView             uintptr
		CreateUnorderedAccessView            uintptr
		CreateRenderTargetView               uintptr
		CreateDepthStencilView               uintptr
		CreateInputLayout                    uintptr
		CreateVertexShader                   uintptr
		CreateGeometryShader                 uintptr
		CreateGeometryShaderWithStreamOutput uintptr
		CreatePixelShader                    uintptr
		CreateHullShader                     uintptr
		CreateDomainShader                   uintptr
		CreateComputeShader                  uintptr
		CreateClassLinkage                   uintptr
		CreateBlendState                     uintptr
		CreateDepthStencilState              uintptr
		CreateRasterizerState                uintptr
		CreateSamplerState                   uintptr
		CreateQuery                          uintptr
		CreatePredicate                      uintptr
		CreateCounter                        uintptr
		CreateDeferredContext                uintptr
		OpenSharedResource                   uintptr
		CheckFormatSupport                   uintptr
		CheckMultisampleQualityLevels        uintptr
		CheckCounterInfo                     uintptr
		CheckCounter                         uintptr
		CheckFeatureSupport                  uintptr
		GetPrivateData                       uintptr
		SetPrivateData                       uintptr
		SetPrivateDataInterface              uintptr
		GetFeatureLevel                      uintptr
		GetCreationFlags                     uintptr
		GetDeviceRemovedReason               uintptr
		GetImmediateContext                  uintptr
		SetExceptionMode                     uintptr
		GetExceptionMode                     uintptr
	}
}

type DeviceContext struct {
	Vtbl *struct {
		_IUnknownVTbl
		GetDevice                                 uintptr
		GetPrivateData                            uintptr
		SetPrivateData                            uintptr
		SetPrivateDataInterface                   uintptr
		VSSetConstantBuffers                      uintptr
		PSSetShaderResources                      uintptr
		PSSetShader                               uintptr
		PSSetSamplers                             uintptr
		VSSetShader                               uintptr
		DrawIndexed                               uintptr
		Draw                                      uintptr
		Map                                       uintptr
		Unmap                                     uintptr
		PSSetConstantBuffers                      uintptr
		IASetInputLayout                          uintptr
		IASetVertexBuffers                        uintptr
		IASetIndexBuffer                          uintptr
		DrawIndexedInstanced                      uintptr
		DrawInstanced                             uintptr
		GSSetConstantBuffers                      uintptr
		GSSetShader                               uintptr
		IASetPrimitiveTopology                    uintptr
		VSSetShaderResources                      uintptr
		VSSetSamplers                             uintptr
		Begin                                     uintptr
		End                                       uintptr
		GetData                                   uintptr
		SetPredication                            uintptr
		GSSetShaderResources                      uintptr
		GSSetSamplers                             uintptr
		OMSetRenderTargets                        uintptr
		OMSetRenderTargetsAndUnorderedAccessViews uintptr
		OMSetBlendState                           uintptr
		OMSetDepthStencilState                    uintptr
		SOSetTargets                              uintptr
		DrawAuto                                  uintptr
		DrawIndexedInstancedIndirect              uintptr
		DrawInstancedIndirect                     uintptr
		Dispatch                                  uintptr
		DispatchIndirect                          uintptr
		RSSetState                                uintptr
		RSSetViewports                            uintptr
		RSSetScissorRects                         uintptr
		CopySubresourceRegion                     uintptr
		CopyResource                              uintptr
		UpdateSubresource                         uintptr
		CopyStructureCount                        uintptr
		ClearRenderTargetView                     uintptr
		ClearUnorderedAccessViewUint              uintptr
		ClearUnorderedAccessViewFloat             uintptr
		ClearDepthStencilView                     uintptr
		GenerateMips                              uintptr
		SetResourceMinLOD                         uintptr
		GetResourceMinLOD                         uintptr
		ResolveSubresource                        uintptr
		ExecuteCommandList                        uintptr
		HSSetShaderResources                      uintptr
		HSSetShader                               uintptr
		HSSetSamplers                             uintptr
		HSSetConstantBuffers                      uintptr
		DSSetShaderResources                      uintptr
		DSSetShader                               uintptr
		DSSetSamplers                             uintptr
		DSSetConstantBuffers                      uintptr
		CSSetShaderResources                      uintptr
		CSSetUnorderedAccessViews                 uintptr
		CSSetShader                               uintptr
		CSSetSamplers                             uintptr
		CSSetConstantBuffers                      uintptr
		VSGetConstantBuffers                      uintptr
		PSGetShaderResources                      uintptr
		PSGetShader                               uintptr
		PSGetSamplers                             uintptr
		VSGetShader                               uintptr
		PSGetConstantBuffers                      uintptr
		IAGetInputLayout                          uintptr
		IAGetVertexBuffers                        uintptr
		IAGetIndexBuffer                          uintptr
		GSGetConstantBuffers                      uintptr
		GSGetShader                               uintptr
		IAGetPrimitiveTopology                    uintptr
		VSGetShaderResources                      uintptr
		VSGetSamplers                             uintptr
		GetPredication                            uintptr
		GSGetShaderResources                      uintptr
		GSGetSamplers                             uintptr
		OMGetRenderTargets                        uintptr
		OMGetRenderTargetsAndUnorderedAccessViews uintptr
		OMGetBlendState                           uintptr
		OMGetDepthStencilState                    uintptr
		SOGetTargets                              uintptr
		RSGetState                                uintptr
		RSGetViewports                            uintptr
		RSGetScissorRects                         uintptr
		HSGetShaderResources                      uintptr
		HSGetShader                               uintptr
		HSGetSamplers                             uintptr
		HSGetConstantBuffers                      uintptr
		DSGetShaderResources                      uintptr
		DSGetShader                               uintptr
		DSGetSamplers                             uintptr
		DSGetConstantBuffers                      uintptr
		CSGetShaderResources                      uintptr
		CSGetUnorderedAccessViews                 uintptr
		CSGetShader                               uintptr
		CSGetSamplers                             uintptr
		CSGetConstantBuffers                      uintptr
		ClearState                                uintptr
		Flush                                     uintptr
		GetType                                   uintptr
		GetContextFlags                           uintptr
		FinishCommandList                         uintptr
	}
}

type IDXGISwapChain struct {
	Vtbl *struct {
		_IUnknownVTbl
		SetPrivateData          uintptr
		SetPrivateDataInterface uintptr
		GetPrivateData          uintptr
		GetParent               uintptr
		GetDevice               uintptr
		Present                 uintptr
		GetBuffer               uintptr
		SetFullscreenState      uintptr
		GetFullscreenState      uintptr
		GetDesc                 uintptr
		ResizeBuffers           uintptr
		ResizeTarget            uintptr
		GetContainingOutput     uintptr
		GetFrameStatistics      uintptr
		GetLastPresentCount     uintptr
	}
}

// CreateDevice creates a hardware device and its immediate context without
// a swap chain. The returned uint32 is the realized feature level.
func CreateDevice(driverType, flags uint32) (*Device, *DeviceContext, uint32, error) {
	levels := [...]uint32{FEATURE_LEVEL_11_0, FEATURE_LEVEL_10_0}
	var (
		dev     *Device
		ctx     *DeviceContext
		featLvl uint32
	)
	r, _, _ := procD3D11CreateDevice.Call(
		0, // pAdapter
		uintptr(driverType),
		0, // Software
		uintptr(flags),
		uintptr(unsafe.Pointer(&levels)),
		uintptr(len(levels)),
		SDK_VERSION,
		uintptr(unsafe.Pointer(&dev)),
		uintptr(unsafe.Pointer(&featLvl)),
		uintptr(unsafe.Pointer(&ctx)),
	)
	if r != 0 {
		return nil, nil, 0, ErrorCode{Name: "D3D11CreateDevice", Code: uint32(r)}
	}
	return dev, ctx, featLvl, nil
}

// CreateDeviceAndSwapChain creates a hardware device, its immediate context,
// and a windowed swap chain sized to the client area of hwnd.
func CreateDeviceAndSwapChain(hwnd uintptr, flags uint32) (*Device, *DeviceContext, *IDXGISwapChain, error) {
	levels := [...]uint32{FEATURE_LEVEL_11_0, FEATURE_LEVEL_10_0}
	desc := SWAP_CHAIN_DESC{
		BufferDesc: DXGI_MODE_DESC{
			Format:           DXGI_FORMAT_R8G8B8A8_UNORM,
			RefreshRateNum:   60,
			RefreshRateDenom: 1,
		},
		SampleDesc:   DXGI_SAMPLE_DESC{Count: 1},
		BufferUsage:  DXGI_USAGE_RENDER_TARGET_OUTPUT,
		BufferCount:  2,
		OutputWindow: hwnd,
		Windowed:     1,
		SwapEffect:   DXGI_SWAP_EFFECT_DISCARD,
	}
	var (
		dev     *Device
		ctx     *DeviceContext
		swchain *IDXGISwapChain
		featLvl uint32
	)
	r, _, _ := procD3D11CreateDeviceAndSwapChain.Call(
		0, // pAdapter
		uintptr(DRIVER_TYPE_HARDWARE),
		0, // Software
		uintptr(flags),
		uintptr(unsafe.Pointer(&levels)),
		uintptr(len(levels)),
		SDK_VERSION,
		uintptr(unsafe.Pointer(&desc)),
		uintptr(unsafe.Pointer(&swchain)),
		uintptr(unsafe.Pointer(&dev)),
		uintptr(unsafe.Pointer(&featLvl)),
		uintptr(unsafe.Pointer(&ctx)),
	)
	if r != 0 {
		return nil, nil, nil, ErrorCode{Name: "D3D11CreateDeviceAndSwapChain", Code: uint32(r)}
	}
	return dev, ctx, swchain, nil
}

func (d *Device) CreateBuffer(desc *BUFFER_DESC, data []byte) (*Buffer, error) {
	var init *SUBRESOURCE_DATA
	if len(data) > 0 {
		init = &SUBRESOURCE_DATA{PSysMem: uintptr(unsafe.Pointer(&data[0]))}
	}
	var buf *Buffer
	r, _, _ := syscall.SyscallN(d.Vtbl.CreateBuffer,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(init)),
		uintptr(unsafe.Pointer(&buf)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateBuffer", Code: uint32(r)}
	}
	return buf, nil
}

func (d *Device) CreateTexture2D(desc *TEXTURE2D_DESC, init *SUBRESOURCE_DATA) (*Texture2D, error) {
	var tex *Texture2D
	r, _, _ := syscall.SyscallN(d.Vtbl.CreateTexture2D,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(init)),
		uintptr(unsafe.Pointer(&tex)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateTexture2D", Code: uint32(r)}
	}
	return tex, nil
}

func (d *Device) CreateShaderResourceView(res *Resource, desc *SHADER_RESOURCE_VIEW_DESC_TEX2D) (*ShaderResourceView, error) {
	var view *ShaderResourceView
	r, _, _ := syscall.SyscallN(d.Vtbl.CreateShaderResourceView,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(res)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&view)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateShaderResourceView", Code: uint32(r)}
	}
	return view, nil
}

func (d *Device) CreateRenderTargetView(res *Resource) (*RenderTargetView, error) {
	var view *RenderTargetView
	r, _, _ := syscall.SyscallN(d.Vtbl.CreateRenderTargetView,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(res)),
		0, // default view desc
		uintptr(unsafe.Pointer(&view)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateRenderTargetView", Code: uint32(r)}
	}
	return view, nil
}

func (d *Device) CreateInputLayout(descs []INPUT_ELEMENT_DESC, bytecode []byte) (*InputLayout, error) {
	var layout *InputLayout
	r, _, _ := syscall.SyscallN(d.Vtbl.CreateInputLayout,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&descs[0])),
		uintptr(len(descs)),
		uintptr(unsafe.Pointer(&bytecode[0])),
		uintptr(len(bytecode)),
		uintptr(unsafe.Pointer(&layout)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateInputLayout", Code: uint32(r)}
	}
	return layout, nil
}

func (d *Device) CreateVertexShader(bytecode []byte) (*VertexShader, error) {
	var sh *VertexShader
	r, _, _ := syscall.SyscallN(d.Vtbl.CreateVertexShader,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&bytecode[0])),
		uintptr(len(bytecode)),
		0, // pClassLinkage
		uintptr(unsafe.Pointer(&sh)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateVertexShader", Code: uint32(r)}
	}
	return sh, nil
}

func (d *Device) CreatePixelShader(bytecode []byte) (*PixelShader, error) {
	var sh *PixelShader
	r, _, _ := syscall.SyscallN(d.Vtbl.CreatePixelShader,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&bytecode[0])),
		uintptr(len(bytecode)),
		0, // pClassLinkage
		uintptr(unsafe.Pointer(&sh)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreatePixelShader", Code: uint32(r)}
	}
	return sh, nil
}

func (d *Device) CreateBlendState(desc *BLEND_DESC) (*BlendState, error) {
	var state *BlendState
	r, _, _ := syscall.SyscallN(d.Vtbl.CreateBlendState,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&state)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateBlendState", Code: uint32(r)}
	}
	return state, nil
}

func (d *Device) CreateRasterizerState(desc *RASTERIZER_DESC) (*RasterizerState, error) {
	var state *RasterizerState
	r, _, _ := syscall.SyscallN(d.Vtbl.CreateRasterizerState,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&state)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateRasterizerState", Code: uint32(r)}
	}
	return state, nil
}

func (d *Device) CreateDepthStencilState(desc *DEPTH_STENCIL_DESC) (*DepthStencilState, error) {
	var state *DepthStencilState
	r, _, _ := syscall.SyscallN(d.Vtbl.CreateDepthStencilState,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&state)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateDepthStencilState", Code: uint32(r)}
	}
	return state, nil
}

func (d *Device) CreateSamplerState(desc *SAMPLER_DESC) (*SamplerState, error) {
	var state *SamplerState
	r, _, _ := syscall.SyscallN(d.Vtbl.CreateSamplerState,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&state)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateSamplerState", Code: uint32(r)}
	}
	return state, nil
}

func (d *Device) GetImmediateContext() *DeviceContext {
	var ctx *DeviceContext
	syscall.SyscallN(d.Vtbl.GetImmediateContext,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&ctx)),
	)
	return ctx
}

func (d *Device) GetFeatureLevel() uint32 {
	r, _, _ := syscall.SyscallN(d.Vtbl.GetFeatureLevel, uintptr(unsafe.Pointer(d)))
	return uint32(r)
}

func (d *Device) Release() {
	IUnknownRelease(unsafe.Pointer(d), d.Vtbl.Release)
}

func (c *DeviceContext) IASetInputLayout(layout *InputLayout) {
	syscall.SyscallN(c.Vtbl.IASetInputLayout,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(layout)),
	)
}

func (c *DeviceContext) IASetVertexBuffers(buf *Buffer, stride, offset uint32) {
	syscall.SyscallN(c.Vtbl.IASetVertexBuffers,
		uintptr(unsafe.Pointer(c)),
		0, // StartSlot
		1, // NumBuffers
		uintptr(unsafe.Pointer(&buf)),
		uintptr(unsafe.Pointer(&stride)),
		uintptr(unsafe.Pointer(&offset)),
	)
}

func (c *DeviceContext) IASetIndexBuffer(buf *Buffer, format, offset uint32) {
	syscall.SyscallN(c.Vtbl.IASetIndexBuffer,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(buf)),
		uintptr(format),
		uintptr(offset),
	)
}

func (c *DeviceContext) IASetPrimitiveTopology(topology uint32) {
	syscall.SyscallN(c.Vtbl.IASetPrimitiveTopology,
		uintptr(unsafe.Pointer(c)),
		uintptr(topology),
	)
}

func (c *DeviceContext) VSSetShader(s *VertexShader, inst *ClassInstance) {
	if inst == nil {
		syscall.SyscallN(c.Vtbl.VSSetShader,
			uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(s)), 0, 0)
		return
	}
	syscall.SyscallN(c.Vtbl.VSSetShader,
		uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(&inst)), 1)
}

func (c *DeviceContext) VSSetConstantBuffers(buf *Buffer) {
	syscall.SyscallN(c.Vtbl.VSSetConstantBuffers,
		uintptr(unsafe.Pointer(c)),
		0, // StartSlot
		1, // NumBuffers
		uintptr(unsafe.Pointer(&buf)),
	)
}

func (c *DeviceContext) PSSetShader(s *PixelShader, inst *ClassInstance) {
	if inst == nil {
		syscall.SyscallN(c.Vtbl.PSSetShader,
			uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(s)), 0, 0)
		return
	}
	syscall.SyscallN(c.Vtbl.PSSetShader,
		uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(&inst)), 1)
}

func (c *DeviceContext) PSSetShaderResources(slot uint32, view *ShaderResourceView) {
	syscall.SyscallN(c.Vtbl.PSSetShaderResources,
		uintptr(unsafe.Pointer(c)),
		uintptr(slot),
		1, // NumViews
		uintptr(unsafe.Pointer(&view)),
	)
}

func (c *DeviceContext) PSSetSamplers(slot uint32, sampler *SamplerState) {
	syscall.SyscallN(c.Vtbl.PSSetSamplers,
		uintptr(unsafe.Pointer(c)),
		uintptr(slot),
		1, // NumSamplers
		uintptr(unsafe.Pointer(&sampler)),
	)
}

func (c *DeviceContext) GSSetShader(s *GeometryShader, inst *ClassInstance) {
	if inst == nil {
		syscall.SyscallN(c.Vtbl.GSSetShader,
			uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(s)), 0, 0)
		return
	}
	syscall.SyscallN(c.Vtbl.GSSetShader,
		uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(&inst)), 1)
}

func (c *DeviceContext) RSSetState(state *RasterizerState) {
	syscall.SyscallN(c.Vtbl.RSSetState,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(state)),
	)
}

func (c *DeviceContext) RSSetViewports(vp *VIEWPORT) {
	syscall.SyscallN(c.Vtbl.RSSetViewports,
		uintptr(unsafe.Pointer(c)),
		1, // NumViewports
		uintptr(unsafe.Pointer(vp)),
	)
}

func (c *DeviceContext) RSSetScissorRects(rect *RECT) {
	syscall.SyscallN(c.Vtbl.RSSetScissorRects,
		uintptr(unsafe.Pointer(c)),
		1, // NumRects
		uintptr(unsafe.Pointer(rect)),
	)
}

func (c *DeviceContext) OMSetBlendState(state *BlendState, factor *[4]float32, sampleMask uint32) {
	syscall.SyscallN(c.Vtbl.OMSetBlendState,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(state)),
		uintptr(unsafe.Pointer(factor)),
		uintptr(sampleMask),
	)
}

func (c *DeviceContext) OMSetDepthStencilState(state *DepthStencilState, stencilRef uint32) {
	syscall.SyscallN(c.Vtbl.OMSetDepthStencilState,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(state)),
		uintptr(stencilRef),
	)
}

func (c *DeviceContext) OMSetRenderTargets(rtv *RenderTargetView) {
	syscall.SyscallN(c.Vtbl.OMSetRenderTargets,
		uintptr(unsafe.Pointer(c)),
		1, // NumViews
		uintptr(unsafe.Pointer(&rtv)),
		0, // pDepthStencilView
	)
}

func (c *DeviceContext) ClearRenderTargetView(rtv *RenderTargetView, color *[4]float32) {
	syscall.SyscallN(c.Vtbl.ClearRenderTargetView,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(rtv)),
		uintptr(unsafe.Pointer(color)),
	)
}

func (c *DeviceContext) DrawIndexed(count, firstIndex uint32, baseVertex int32) {
	syscall.SyscallN(c.Vtbl.DrawIndexed,
		uintptr(unsafe.Pointer(c)),
		uintptr(count),
		uintptr(firstIndex),
		uintptr(baseVertex),
	)
}

func (c *DeviceContext) Map(res *Resource, subresource, mapType, mapFlags uint32) (MAPPED_SUBRESOURCE, error) {
	var mapped MAPPED_SUBRESOURCE
	r, _, _ := syscall.SyscallN(c.Vtbl.Map,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(res)),
		uintptr(subresource),
		uintptr(mapType),
		uintptr(mapFlags),
		uintptr(unsafe.Pointer(&mapped)),
	)
	if r != 0 {
		return MAPPED_SUBRESOURCE{}, ErrorCode{Name: "ID3D11DeviceContext::Map", Code: uint32(r)}
	}
	return mapped, nil
}

func (c *DeviceContext) Unmap(res *Resource, subresource uint32) {
	syscall.SyscallN(c.Vtbl.Unmap,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(res)),
		uintptr(subresource),
	)
}

func (c *DeviceContext) UpdateSubresource(res *Resource, dst *BOX, rowPitch, depthPitch uint32, data []byte) {
	syscall.SyscallN(c.Vtbl.UpdateSubresource,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(res)),
		0, // DstSubresource
		uintptr(unsafe.Pointer(dst)),
		uintptr(unsafe.Pointer(&data[0])),
		uintptr(rowPitch),
		uintptr(depthPitch),
	)
}

func (c *DeviceContext) IAGetPrimitiveTopology() uint32 {
	var topology uint32
	syscall.SyscallN(c.Vtbl.IAGetPrimitiveTopology,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(&topology)),
	)
	return topology
}

func (c *DeviceContext) IAGetIndexBuffer() (buf *Buffer, format, offset uint32) {
	syscall.SyscallN(c.Vtbl.IAGetIndexBuffer,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(&buf)),
		uintptr(unsafe.Pointer(&format)),
		uintptr(unsafe.Pointer(&offset)),
	)
	return buf, format, offset
}

func (c *DeviceContext) IAGetVertexBuffers() (buf *Buffer, stride, offset uint32) {
	syscall.SyscallN(c.Vtbl.IAGetVertexBuffers,
		uintptr(unsafe.Pointer(c)),
		0, // StartSlot
		1, // NumBuffers
		uintptr(unsafe.Pointer(&buf)),
		uintptr(unsafe.Pointer(&stride)),
		uintptr(unsafe.Pointer(&offset)),
	)
	return buf, stride, offset
}

func (c *DeviceContext) IAGetInputLayout() (layout *InputLayout) {
	syscall.SyscallN(c.Vtbl.IAGetInputLayout,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(&layout)),
	)
	return layout
}

func (c *DeviceContext) VSGetShader() (sh *VertexShader, inst *ClassInstance) {
	n := uint32(1)
	syscall.SyscallN(c.Vtbl.VSGetShader,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(&sh)),
		uintptr(unsafe.Pointer(&inst)),
		uintptr(unsafe.Pointer(&n)),
	)
	return sh, inst
}

func (c *DeviceContext) VSGetConstantBuffers() (buf *Buffer) {
	syscall.SyscallN(c.Vtbl.VSGetConstantBuffers,
		uintptr(unsafe.Pointer(c)),
		0, // StartSlot
		1, // NumBuffers
		uintptr(unsafe.Pointer(&buf)),
	)
	return buf
}

func (c *DeviceContext) PSGetShader() (sh *PixelShader, inst *ClassInstance) {
	n := uint32(1)
	syscall.SyscallN(c.Vtbl.PSGetShader,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(&sh)),
		uintptr(unsafe.Pointer(&inst)),
		uintptr(unsafe.Pointer(&n)),
	)
	return sh, inst
}

func (c *DeviceContext) PSGetShaderResources(slot uint32) (view *ShaderResourceView) {
	syscall.SyscallN(c.Vtbl.PSGetShaderResources,
		uintptr(unsafe.Pointer(c)),
		uintptr(slot),
		1, // NumViews
		uintptr(unsafe.Pointer(&view)),
	)
	return view
}

func (c *DeviceContext) PSGetSamplers(slot uint32) (sampler *SamplerState) {
	syscall.SyscallN(c.Vtbl.PSGetSamplers,
		uintptr(unsafe.Pointer(c)),
		uintptr(slot),
		1, // NumSamplers
		uintptr(unsafe.Pointer(&sampler)),
	)
	return sampler
}

func (c *DeviceContext) GSGetShader() (sh *GeometryShader, inst *ClassInstance) {
	n := uint32(1)
	syscall.SyscallN(c.Vtbl.GSGetShader,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(&sh)),
		uintptr(unsafe.Pointer(&inst)),
		uintptr(unsafe.Pointer(&n)),
	)
	return sh, inst
}

func (c *DeviceContext) RSGetState() (state *RasterizerState) {
	syscall.SyscallN(c.Vtbl.RSGetState,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(&state)),
	)
	return state
}

func (c *DeviceContext) RSGetViewports() VIEWPORT {
	var vp VIEWPORT
	n := uint32(1)
	syscall.SyscallN(c.Vtbl.RSGetViewports,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(&n)),
		uintptr(unsafe.Pointer(&vp)),
	)
	return vp
}

func (c *DeviceContext) RSGetScissorRects() RECT {
	var rect RECT
	n := uint32(1)
	syscall.SyscallN(c.Vtbl.RSGetScissorRects,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(&n)),
		uintptr(unsafe.Pointer(&rect)),
	)
	return rect
}

func (c *DeviceContext) OMGetBlendState() (state *BlendState, factor [4]float32, sampleMask uint32) {
	syscall.SyscallN(c.Vtbl.OMGetBlendState,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(&state)),
		uintptr(unsafe.Pointer(&factor)),
		uintptr(unsafe.Pointer(&sampleMask)),
	)
	return state, factor, sampleMask
}

func (c *DeviceContext) OMGetDepthStencilState() (state *DepthStencilState, stencilRef uint32) {
	syscall.SyscallN(c.Vtbl.OMGetDepthStencilState,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(&state)),
		uintptr(unsafe.Pointer(&stencilRef)),
	)
	return state, stencilRef
}

func (c *DeviceContext) Release() {
	IUnknownRelease(unsafe.Pointer(c), c.Vtbl.Release)
}

func (s *IDXGISwapChain) Present(syncInterval, flags uint32) error {
	r, _, _ := syscall.SyscallN(s.Vtbl.Present,
		uintptr(unsafe.Pointer(s)),
		uintptr(syncInterval),
		uintptr(flags),
	)
	if r != 0 {
		return ErrorCode{Name: "IDXGISwapChain::Present", Code: uint32(r)}
	}
	return nil
}

func (s *IDXGISwapChain) GetBuffer(index uint32, iid *windows.GUID) (*Texture2D, error) {
	var tex *Texture2D
	r, _, _ := syscall.SyscallN(s.Vtbl.GetBuffer,
		uintptr(unsafe.Pointer(s)),
		uintptr(index),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&tex)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "IDXGISwapChain::GetBuffer", Code: uint32(r)}
	}
	return tex, nil
}

func (s *IDXGISwapChain) ResizeBuffers(bufferCount, width, height, format, flags uint32) error {
	r, _, _ := syscall.SyscallN(s.Vtbl.ResizeBuffers,
		uintptr(unsafe.Pointer(s)),
		uintptr(bufferCount),
		uintptr(width),
		uintptr(height),
		uintptr(format),
		uintptr(flags),
	)
	if r != 0 {
		return ErrorCode{Name: "IDXGISwapChain::ResizeBuffers", Code: uint32(r)}
	}
	return nil
}

func (s *IDXGISwapChain) GetDesc() (SWAP_CHAIN_DESC, error) {
	var desc SWAP_CHAIN_DESC
	r, _, _ := syscall.SyscallN(s.Vtbl.GetDesc,
		uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(&desc)),
	)
	if r != 0 {
		return SWAP_CHAIN_DESC{}, ErrorCode{Name: "IDXGISwapChain::GetDesc", Code: uint32(r)}
	}
	return desc, nil
}

func (s *IDXGISwapChain) Release() {
	IUnknownRelease(unsafe.Pointer(s), s.Vtbl.Release)
}
