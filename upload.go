package imdx11

import (
	"fmt"
	"unsafe"

	"github.com/goimgui/imdx11/d3d11"
	"github.com/goimgui/imdx11/imdraw"
)

// projectionMatrix is the vertex constant buffer layout: a column-vector
// 4x4 matrix stored row-major, matching the shader's float4x4.
type projectionMatrix struct {
	mvp [4][4]float32
}

// writeBuffers uploads the frame's geometry and projection matrix. Both
// geometry buffers are mapped once with write-discard and every draw
// list's arrays are copied contiguously in list order; element commands
// address the result through their accumulated base offsets.
//
// A failed map is fatal for the frame: the caller must not translate any
// draw commands afterwards.
func (r *Renderer) writeBuffers(data *imdraw.DrawData) error {
	vtxMap, err := r.ctx.Map(r.vertexBuffer.buf, d3d11.MAP_WRITE_DISCARD)
	if err != nil {
		return fmt.Errorf("imdx11: map vertex buffer: %w", err)
	}
	idxMap, err := r.ctx.Map(r.indexBuffer.buf, d3d11.MAP_WRITE_DISCARD)
	if err != nil {
		r.ctx.Unmap(r.vertexBuffer.buf)
		return fmt.Errorf("imdx11: map index buffer: %w", err)
	}

	vtxDst := unsafe.Slice((*imdraw.DrawVert)(unsafe.Pointer(vtxMap.PData)), data.TotalVtxCount)
	idxDst := unsafe.Slice((*imdraw.DrawIdx)(unsafe.Pointer(idxMap.PData)), data.TotalIdxCount)
	for _, list := range data.Lists {
		n := copy(vtxDst, list.VtxBuffer)
		vtxDst = vtxDst[n:]
		n = copy(idxDst, list.IdxBuffer)
		idxDst = idxDst[n:]
	}

	r.ctx.Unmap(r.indexBuffer.buf)
	r.ctx.Unmap(r.vertexBuffer.buf)

	cbMap, err := r.ctx.Map(r.constantBuffer, d3d11.MAP_WRITE_DISCARD)
	if err != nil {
		return fmt.Errorf("imdx11: map constant buffer: %w", err)
	}
	*(*projectionMatrix)(unsafe.Pointer(cbMap.PData)) = ortho(data)
	r.ctx.Unmap(r.constantBuffer)
	return nil
}

// ortho maps display space onto clip space: (left,top) to (-1,+1) and
// (right,bottom) to (+1,-1). Window-space Y grows downward, clip-space Y
// grows upward, hence the sign flip on the Y scale.
func ortho(data *imdraw.DrawData) projectionMatrix {
	l := data.DisplayPos[0]
	r := data.DisplayPos[0] + data.DisplaySize[0]
	t := data.DisplayPos[1]
	b := data.DisplayPos[1] + data.DisplaySize[1]
	return projectionMatrix{mvp: [4][4]float32{
		{2 / (r - l), 0, 0, 0},
		{0, 2 / (t - b), 0, 0},
		{0, 0, 0.5, 0},
		{(r + l) / (l - r), (t + b) / (b - t), 0.5, 1},
	}}
}
