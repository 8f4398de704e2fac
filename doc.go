// Package imdx11 renders immediate-mode GUI draw data onto a Direct3D 11
// render target, one frame at a time, without disturbing the pipeline state
// of a host application sharing the same device context.
//
// # Quick Start
//
//	gui := imdraw.NewContext()
//	dev, ctx, swchain, _ := d3d11.CreateDeviceAndSwapChain(hwnd, 0)
//	_ = ctx
//
//	renderer, err := imdx11.New(imdx11.NewDevice(dev), gui)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer renderer.Release()
//
//	// Each frame, after binding the swap chain's render target:
//	if err := renderer.Render(frame); err != nil {
//	    log.Fatal(err)
//	}
//	swchain.Present(1, 0)
//
// # Architecture
//
// The renderer is organized around five pieces:
//   - a resource bundle (shaders, input layout, blend/rasterizer/depth
//     states, font texture, sampler) created once at construction;
//   - growable dynamic vertex and index buffers that only ever expand;
//   - a frame uploader that maps both buffers once per frame and writes
//     every draw list's geometry contiguously, plus the projection matrix;
//   - a draw translator that walks draw commands, switching texture and
//     scissor state as needed and issuing indexed draws;
//   - a state guard that snapshots the device context before rendering and
//     restores it on every exit path, so the host's own rendering state
//     survives the GUI pass untouched.
//
// The core is coded against the Device and Context interfaces; NewDevice
// adapts a raw *d3d11.Device on Windows. The render target itself is bound
// by the caller, never by this package.
//
// # Concurrency
//
// All methods must be called from a single thread; the package does no
// locking of its own. Exactly one Render call may be in flight against a
// given device context at a time.
package imdx11
