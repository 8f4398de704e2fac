package imdx11

import "github.com/goimgui/imdx11/imdraw"

// TextureRegistry maps opaque texture identifiers carried by draw commands
// to the shader-resource views they should bind. The host registers
// externally created textures here and passes the returned identifiers to
// the GUI; the registry shares ownership of each view with the host (one
// reference is held per registered entry).
//
// The identifier reserved for the font atlas is never handed out and never
// accepted. Like the renderer, the registry is not safe for concurrent use.
type TextureRegistry struct {
	views  map[imdraw.TextureID]ShaderResourceView
	nextID imdraw.TextureID
}

// NewTextureRegistry returns an empty registry. Identifiers start at 1;
// 0 stays unused so the zero TextureID never resolves.
func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{
		views:  make(map[imdraw.TextureID]ShaderResourceView),
		nextID: 1,
	}
}

// Register stores view under a fresh identifier and returns it.
func (t *TextureRegistry) Register(view ShaderResourceView) imdraw.TextureID {
	id := t.nextID
	t.nextID++
	t.views[id] = view
	return id
}

// Replace swaps the view bound to an already registered identifier.
// The font identifier is rejected; replacing an unknown identifier fails
// with ErrTextureNotFound.
func (t *TextureRegistry) Replace(id imdraw.TextureID, view ShaderResourceView) error {
	if id == imdraw.FontTextureID {
		return ErrReservedTextureID
	}
	if _, ok := t.views[id]; !ok {
		return ErrTextureNotFound
	}
	t.views[id] = view
	return nil
}

// Unregister removes an identifier. Draw commands still referencing it
// make Render fail with ErrTextureNotFound rather than drawing stale data.
func (t *TextureRegistry) Unregister(id imdraw.TextureID) {
	delete(t.views, id)
}

// Lookup resolves an identifier to its view.
func (t *TextureRegistry) Lookup(id imdraw.TextureID) (ShaderResourceView, bool) {
	view, ok := t.views[id]
	return view, ok
}

// Len reports the number of registered textures.
func (t *TextureRegistry) Len() int {
	return len(t.views)
}
