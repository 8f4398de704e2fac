// Package d3d11 provides minimal Direct3D 11 and DXGI bindings built on raw
// COM vtable calls, covering the surface needed to render GUI draw data:
// device and swap-chain creation, pipeline object creation, state set/get,
// dynamic buffer mapping, and indexed draws.
//
// Descriptor structs and enumeration values in this file mirror the C API
// layout exactly and are portable; the COM wrappers live behind the windows
// build tag.
package d3d11

import "fmt"

// D3D11_USAGE
const (
	USAGE_DEFAULT   = 0
	USAGE_IMMUTABLE = 1
	USAGE_DYNAMIC   = 2
	USAGE_STAGING   = 3
)

// D3D11_BIND_FLAG
const (
	BIND_VERTEX_BUFFER   = 0x1
	BIND_INDEX_BUFFER    = 0x2
	BIND_CONSTANT_BUFFER = 0x4
	BIND_SHADER_RESOURCE = 0x8
	BIND_RENDER_TARGET   = 0x20
)

// D3D11_CPU_ACCESS_FLAG
const (
	CPU_ACCESS_WRITE = 0x10000
	CPU_ACCESS_READ  = 0x20000
)

// D3D11_MAP
const (
	MAP_READ               = 1
	MAP_WRITE              = 2
	MAP_READ_WRITE         = 3
	MAP_WRITE_DISCARD      = 4
	MAP_WRITE_NO_OVERWRITE = 5
)

// DXGI_FORMAT
const (
	DXGI_FORMAT_UNKNOWN        = 0
	DXGI_FORMAT_R32G32_FLOAT   = 16
	DXGI_FORMAT_R8G8B8A8_UNORM = 28
	DXGI_FORMAT_R32_UINT       = 42
	DXGI_FORMAT_R16_UINT       = 57
)

// D3D_PRIMITIVE_TOPOLOGY
const (
	PRIMITIVE_TOPOLOGY_UNDEFINED     = 0
	PRIMITIVE_TOPOLOGY_TRIANGLELIST  = 4
	PRIMITIVE_TOPOLOGY_TRIANGLESTRIP = 5
)

// D3D11_FILL_MODE / D3D11_CULL_MODE
const (
	FILL_WIREFRAME = 2
	FILL_SOLID     = 3
	CULL_NONE      = 1
	CULL_FRONT     = 2
	CULL_BACK      = 3
)

// D3D11_BLEND / D3D11_BLEND_OP
const (
	BLEND_ZERO          = 1
	BLEND_ONE           = 2
	BLEND_SRC_ALPHA     = 6
	BLEND_INV_SRC_ALPHA = 7
	BLEND_OP_ADD        = 1
)

// D3D11_COLOR_WRITE_ENABLE
const COLOR_WRITE_ENABLE_ALL = 0xF

// D3D11_FILTER / D3D11_TEXTURE_ADDRESS_MODE
const (
	FILTER_MIN_MAG_MIP_POINT  = 0x00
	FILTER_MIN_MAG_MIP_LINEAR = 0x15
	TEXTURE_ADDRESS_WRAP      = 1
	TEXTURE_ADDRESS_CLAMP     = 3
)

// D3D11_COMPARISON_FUNC
const (
	COMPARISON_NEVER  = 1
	COMPARISON_ALWAYS = 8
)

// D3D11_STENCIL_OP / D3D11_DEPTH_WRITE_MASK
const (
	STENCIL_OP_KEEP      = 1
	DEPTH_WRITE_MASK_ALL = 1
)

// D3D11_SRV_DIMENSION
const (
	SRV_DIMENSION_TEXTURE2D = 4
)

// D3D11_INPUT_CLASSIFICATION and the append-aligned sentinel.
const (
	INPUT_PER_VERTEX_DATA  = 0
	APPEND_ALIGNED_ELEMENT = 0xFFFFFFFF
)

// D3D_DRIVER_TYPE
const (
	DRIVER_TYPE_HARDWARE = 1
	DRIVER_TYPE_WARP     = 5
)

// D3D11_CREATE_DEVICE_FLAG
const (
	CREATE_DEVICE_DEBUG        = 0x2
	CREATE_DEVICE_BGRA_SUPPORT = 0x20
)

// D3D_FEATURE_LEVEL
const (
	FEATURE_LEVEL_9_1  = 0x9100
	FEATURE_LEVEL_9_3  = 0x9300
	FEATURE_LEVEL_10_0 = 0xA000
	FEATURE_LEVEL_11_0 = 0xB000
)

// SDK_VERSION is D3D11_SDK_VERSION.
const SDK_VERSION = 7

// DXGI swap-chain values.
const (
	DXGI_USAGE_RENDER_TARGET_OUTPUT = 0x20
	DXGI_SWAP_EFFECT_DISCARD        = 0
)

// Selected HRESULT codes.
const (
	E_FAIL                    = 0x80004005
	DXGI_STATUS_OCCLUDED      = 0x087A0001
	DXGI_ERROR_INVALID_CALL   = 0x887A0001
	DXGI_ERROR_DEVICE_REMOVED = 0x887A0005
	DXGI_ERROR_DEVICE_RESET   = 0x887A0007
	D3DDDIERR_DEVICEREMOVED   = 0x88760870
)

// ErrorCode is a failed HRESULT from a Direct3D call, together with the
// name of the call that produced it.
type ErrorCode struct {
	Name string
	Code uint32
}

func (e ErrorCode) Error() string {
	return fmt.Sprintf("d3d11: %s: %#x", e.Name, e.Code)
}

type BUFFER_DESC struct {
	ByteWidth           uint32
	Usage               uint32
	BindFlags           uint32
	CPUAccessFlags      uint32
	MiscFlags           uint32
	StructureByteStride uint32
}

type SUBRESOURCE_DATA struct {
	PSysMem          uintptr
	SysMemPitch      uint32
	SysMemSlicePitch uint32
}

type MAPPED_SUBRESOURCE struct {
	PData      uintptr
	RowPitch   uint32
	DepthPitch uint32
}

type DXGI_SAMPLE_DESC struct {
	Count   uint32
	Quality uint32
}

type TEXTURE2D_DESC struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         uint32
	SampleDesc     DXGI_SAMPLE_DESC
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

type SAMPLER_DESC struct {
	Filter         uint32
	AddressU       uint32
	AddressV       uint32
	AddressW       uint32
	MipLODBias     float32
	MaxAnisotropy  uint32
	ComparisonFunc uint32
	BorderColor    [4]float32
	MinLOD         float32
	MaxLOD         float32
}

type RENDER_TARGET_BLEND_DESC struct {
	BlendEnable           uint32
	SrcBlend              uint32
	DestBlend             uint32
	BlendOp               uint32
	SrcBlendAlpha         uint32
	DestBlendAlpha        uint32
	BlendOpAlpha          uint32
	RenderTargetWriteMask uint8
	_                     [3]byte
}

type BLEND_DESC struct {
	AlphaToCoverageEnable  uint32
	IndependentBlendEnable uint32
	RenderTarget           [8]RENDER_TARGET_BLEND_DESC
}

type RASTERIZER_DESC struct {
	FillMode              uint32
	CullMode              uint32
	FrontCounterClockwise uint32
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
	DepthClipEnable       uint32
	ScissorEnable         uint32
	MultisampleEnable     uint32
	AntialiasedLineEnable uint32
}

type DEPTH_STENCILOP_DESC struct {
	StencilFailOp      uint32
	StencilDepthFailOp uint32
	StencilPassOp      uint32
	StencilFunc        uint32
}

type DEPTH_STENCIL_DESC struct {
	DepthEnable      uint32
	DepthWriteMask   uint32
	DepthFunc        uint32
	StencilEnable    uint32
	StencilReadMask  uint8
	StencilWriteMask uint8
	_                [2]byte
	FrontFace        DEPTH_STENCILOP_DESC
	BackFace         DEPTH_STENCILOP_DESC
}

type SHADER_RESOURCE_VIEW_DESC struct {
	Format        uint32
	ViewDimension uint32
}

type TEX2D_SRV struct {
	MostDetailedMip uint32
	MipLevels       uint32
}

// SHADER_RESOURCE_VIEW_DESC_TEX2D is the TEXTURE2D variant of the view
// descriptor union, flattened.
type SHADER_RESOURCE_VIEW_DESC_TEX2D struct {
	SHADER_RESOURCE_VIEW_DESC
	Texture2D TEX2D_SRV
}

type INPUT_ELEMENT_DESC struct {
	SemanticName         *byte
	SemanticIndex        uint32
	Format               uint32
	InputSlot            uint32
	AlignedByteOffset    uint32
	InputSlotClass       uint32
	InstanceDataStepRate uint32
}

type VIEWPORT struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type BOX struct {
	Left   uint32
	Top    uint32
	Front  uint32
	Right  uint32
	Bottom uint32
	Back   uint32
}

type DXGI_MODE_DESC struct {
	Width            uint32
	Height           uint32
	RefreshRateNum   uint32
	RefreshRateDenom uint32
	Format           uint32
	ScanlineOrdering uint32
	Scaling          uint32
}

type SWAP_CHAIN_DESC struct {
	BufferDesc   DXGI_MODE_DESC
	SampleDesc   DXGI_SAMPLE_DESC
	BufferUsage  uint32
	BufferCount  uint32
	OutputWindow uintptr
	Windowed     uint32
	SwapEffect   uint32
	Flags        uint32
}
