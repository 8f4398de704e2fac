package imdx11

import (
	"fmt"

	"github.com/goimgui/imdx11/d3d11"
	"github.com/goimgui/imdx11/imdraw"
)

// Render draws one GUI frame onto the currently bound render target.
//
// The device context's state is snapshotted before any change and restored
// on every exit path, including errors, so the host's own pipeline
// configuration survives the call. A frame whose display size is
// non-positive in either dimension is a no-op.
//
// The frame is borrowed for the duration of the call and never retained.
func (r *Renderer) Render(data *imdraw.DrawData) error {
	if data.DisplaySize[0] <= 0 || data.DisplaySize[1] <= 0 {
		return nil
	}

	if err := r.vertexBuffer.ensure(r.device, data.TotalVtxCount); err != nil {
		return fmt.Errorf("imdx11: grow vertex buffer: %w", err)
	}
	if err := r.indexBuffer.ensure(r.device, data.TotalIdxCount); err != nil {
		return fmt.Errorf("imdx11: grow index buffer: %w", err)
	}

	backup := captureState(r.ctx)
	defer backup.restore()

	if err := r.writeBuffers(data); err != nil {
		return err
	}
	r.setupRenderState(data)
	return r.translate(data)
}

// translate walks every draw list's commands in order, rebinding texture
// and scissor state only when a command changes them, and issues one
// indexed draw per element command.
//
// Index offsets accumulate per element command; the vertex base advances by
// a whole list's vertex count after its commands, since indices are
// list-relative and reach the right vertices through the draw call's base
// vertex argument.
func (r *Renderer) translate(data *imdraw.DrawData) error {
	clipOff := data.DisplayPos
	clipScale := data.FramebufferScale

	r.ctx.PSSetShaderResource(0, r.fontView)
	lastTex := imdraw.FontTextureID

	vertexOffset := 0
	indexOffset := 0
	for _, list := range data.Lists {
		for i := range list.CmdBuffer {
			cmd := &list.CmdBuffer[i]
			switch cmd.Kind {
			case imdraw.CmdElements:
				if cmd.TexID != lastTex {
					view := r.fontView
					if cmd.TexID != imdraw.FontTextureID {
						var ok bool
						if view, ok = r.textures.Lookup(cmd.TexID); !ok {
							return fmt.Errorf("%w: id %#x", ErrTextureNotFound, uint64(cmd.TexID))
						}
					}
					r.ctx.PSSetShaderResource(0, view)
					lastTex = cmd.TexID
				}

				scissor := d3d11.RECT{
					Left:   int32((cmd.ClipRect[0] - clipOff[0]) * clipScale[0]),
					Top:    int32((cmd.ClipRect[1] - clipOff[1]) * clipScale[1]),
					Right:  int32((cmd.ClipRect[2] - clipOff[0]) * clipScale[0]),
					Bottom: int32((cmd.ClipRect[3] - clipOff[1]) * clipScale[1]),
				}
				r.ctx.RSSetScissorRect(&scissor)
				r.ctx.DrawIndexed(cmd.ElemCount, uint32(indexOffset), int32(vertexOffset))
				indexOffset += int(cmd.ElemCount)

			case imdraw.CmdResetRenderState:
				r.setupRenderState(data)

			case imdraw.CmdCallback:
				// The callback may mutate pipeline state arbitrarily; the
				// command stream reasserts it via CmdResetRenderState.
				if cmd.Callback != nil {
					cmd.Callback(list, cmd)
				}
			}
		}
		vertexOffset += len(list.VtxBuffer)
	}
	return nil
}
