package imdx11

import "github.com/goimgui/imdx11/d3d11"

// stateBackup snapshots every device-context slot the renderer touches.
// It is armed by captureState and consumed exactly once by restore; Render
// defers restore so the snapshot is written back on every exit path.
//
// Captured handles carry a driver reference each (getters AddRef). restore
// writes all slots back verbatim, then drops those references. A nil slot
// means "nothing was bound" and is written back as nil, clearing whatever
// the render pass left there.
type stateBackup struct {
	ctx Context

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

	restored bool
}

func captureState(ctx Context) *stateBackup {
	b := &stateBackup{ctx: ctx}
	b.topology = ctx.IAGetPrimitiveTopology()
	b.indexBuffer, b.indexFormat, b.indexOffset = ctx.IAGetIndexBuffer()
	b.vertexBuffer, b.vertexStride, b.vertexOffset = ctx.IAGetVertexBuffer()
	b.inputLayout = ctx.IAGetInputLayout()
	b.vs, b.vsInstance = ctx.VSGetShader()
	b.vsConstants = ctx.VSGetConstantBuffer()
	b.gs, b.gsInstance = ctx.GSGetShader()
	b.ps, b.psInstance = ctx.PSGetShader()
	b.psResource = ctx.PSGetShaderResource(0)
	b.psSampler = ctx.PSGetSampler(0)
	b.viewport = ctx.RSGetViewport()
	b.scissor = ctx.RSGetScissorRect()
	b.rasterizer = ctx.RSGetState()
	b.blend, b.blendFactor, b.sampleMask = ctx.OMGetBlendState()
	b.depthStencil, b.stencilRef = ctx.OMGetDepthStencilState()
	return b
}

// restore writes the snapshot back and releases the captured references.
// Subsequent calls are no-ops.
func (b *stateBackup) restore() {
	if b.restored {
		return
	}
	b.restored = true

	ctx := b.ctx
	ctx.RSSetScissorRect(&b.scissor)
	ctx.RSSetViewport(&b.viewport)
	ctx.RSSetState(b.rasterizer)
	ctx.OMSetBlendState(b.blend, &b.blendFactor, b.sampleMask)
	ctx.OMSetDepthStencilState(b.depthStencil, b.stencilRef)
	ctx.PSSetShaderResource(0, b.psResource)
	ctx.PSSetSampler(0, b.psSampler)
	ctx.PSSetShader(b.ps, b.psInstance)
	ctx.VSSetShader(b.vs, b.vsInstance)
	ctx.VSSetConstantBuffer(b.vsConstants)
	ctx.GSSetShader(b.gs, b.gsInstance)
	ctx.IASetPrimitiveTopology(b.topology)
	ctx.IASetIndexBuffer(b.indexBuffer, b.indexFormat, b.indexOffset)
	ctx.IASetVertexBuffer(b.vertexBuffer, b.vertexStride, b.vertexOffset)
	ctx.IASetInputLayout(b.inputLayout)

	release := []Handle{
		b.indexBuffer, b.vertexBuffer, b.inputLayout,
		b.vs, b.vsInstance, b.vsConstants,
		b.gs, b.gsInstance,
		b.ps, b.psInstance, b.psResource, b.psSampler,
		b.rasterizer, b.blend, b.depthStencil,
	}
	for _, h := range release {
		if h != nil {
			h.Release()
		}
	}
}
