// Package imdraw defines the draw-data interchange model produced by an
// immediate-mode GUI each frame and consumed by a renderer backend.
//
// A frame is a DrawData value: an ordered set of draw lists, each carrying
// its own vertex and index arrays plus the commands that slice them into
// textured, clipped, indexed draws. The model is renderer-agnostic; the
// imdx11 package translates it into Direct3D 11 calls.
package imdraw

// TextureID is an opaque identifier for a texture registered with the
// renderer. The zero value means "no texture".
type TextureID uint64

// FontTextureID is the identifier reserved for the font atlas. Renderers
// recognize it without a registry lookup, and registries must never hand
// it out for user textures.
const FontTextureID = ^TextureID(0)

// DrawIdx is the index type used by draw lists. Indices are relative to
// the owning draw list's vertex array.
type DrawIdx = uint16

// DrawVert is a single GUI vertex: 2D position in display space, texture
// coordinates, and an RGBA color packed little-endian with R in the lowest
// byte. The layout matches the renderer's input layout and must not change.
type DrawVert struct {
	Pos [2]float32
	UV  [2]float32
	Col uint32
}

// Callback is a host-supplied function invoked by the renderer when it
// encounters a CmdCallback command. It receives the owning draw list and
// the raw command. The callback may change pipeline state arbitrarily;
// command streams that keep drawing afterwards must follow it with a
// CmdResetRenderState command.
type Callback func(list *DrawList, cmd *DrawCmd)

// DrawCmdKind discriminates the DrawCmd union.
type DrawCmdKind uint8

const (
	// CmdElements draws ElemCount indices with the command's texture and
	// clip rectangle.
	CmdElements DrawCmdKind = iota
	// CmdResetRenderState asks the renderer to reapply its fixed pipeline
	// configuration.
	CmdResetRenderState
	// CmdCallback invokes the host-supplied Callback.
	CmdCallback
)

// DrawCmd is one instruction within a draw list.
//
// For CmdElements, ElemCount indices starting at the list's running index
// cursor are drawn with TexID bound and ClipRect as scissor bounds.
// ClipRect is (x1, y1, x2, y2) in display space; the renderer converts it
// to framebuffer pixels. The other kinds ignore the element fields.
type DrawCmd struct {
	Kind      DrawCmdKind
	ElemCount uint32
	ClipRect  [4]float32
	TexID     TextureID

	Callback Callback
	UserData any
}

// DrawList is one window/layer's contiguous geometry and its commands.
// Element commands reference only vertices and indices of their own list.
type DrawList struct {
	VtxBuffer []DrawVert
	IdxBuffer []DrawIdx
	CmdBuffer []DrawCmd
}

// DrawData is one frame's complete output. It is borrowed by the renderer
// for the duration of a single render call and never retained.
type DrawData struct {
	Lists []*DrawList

	// DisplayPos is the top-left of the display area in GUI units.
	// Usually (0,0), but multi-viewport setups use window coordinates.
	DisplayPos [2]float32
	// DisplaySize is the display extent in GUI units. A non-positive
	// dimension means there is nothing to draw.
	DisplaySize [2]float32
	// FramebufferScale converts GUI units to framebuffer pixels
	// (the high-DPI scale factor).
	FramebufferScale [2]float32

	TotalVtxCount int
	TotalIdxCount int
}

// AddList appends a draw list and accounts its geometry in the totals.
func (d *DrawData) AddList(l *DrawList) {
	d.Lists = append(d.Lists, l)
	d.TotalVtxCount += len(l.VtxBuffer)
	d.TotalIdxCount += len(l.IdxBuffer)
}

// BackendFlags declares renderer capabilities back to the GUI.
type BackendFlags uint32

const (
	// BackendFlagsRendererHasVtxOffset signals that element commands may
	// carry a non-zero base vertex offset, so the GUI can emit large
	// meshes without rebasing 16-bit indices itself.
	BackendFlagsRendererHasVtxOffset BackendFlags = 1 << 0
)

// IO is the GUI-side handshake surface a renderer writes its identity and
// capabilities into.
type IO struct {
	BackendFlags        BackendFlags
	BackendRendererName string
}

// Context bundles the GUI state a renderer needs at construction time:
// the handshake IO block and the font atlas to upload.
type Context struct {
	IO    IO
	Fonts *FontAtlas
}

// NewContext returns a Context with a freshly rasterized default atlas.
func NewContext() *Context {
	return &Context{Fonts: NewDefaultFontAtlas()}
}
