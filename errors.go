package imdx11

import "errors"

var (
	// ErrTextureNotFound is returned by Render when a draw command
	// references a texture identifier that was never registered (or was
	// unregistered). Rendering stops at the offending command.
	ErrTextureNotFound = errors.New("imdx11: texture not found")

	// ErrReservedTextureID is returned when a registry operation names the
	// identifier reserved for the font atlas.
	ErrReservedTextureID = errors.New("imdx11: texture id is reserved for the font atlas")

	// ErrNoFontAtlas is returned by New when the GUI context carries no
	// font atlas to upload.
	ErrNoFontAtlas = errors.New("imdx11: GUI context has no font atlas")

	// ErrNilDevice is returned by New when no device is supplied.
	ErrNilDevice = errors.New("imdx11: nil device")
)
