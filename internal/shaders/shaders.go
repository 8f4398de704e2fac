// Package shaders holds the shader blobs the renderer feeds to ID3D11Device
// at initialization, committed as generated Go byte tables so the module
// builds without the DirectX SDK. See the zshaders.go header for the
// provenance of the committed tables; regenerate with tools/genshaders
// after editing hlsl/gui.hlsl.
package shaders

//go:generate go run ../../tools/genshaders
