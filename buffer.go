package imdx11

import "github.com/goimgui/imdx11/d3d11"

// growableBuffer owns one dynamic GPU buffer and its capacity in elements.
// Capacity only ever grows; each growth adds slack on top of the request so
// steadily sized frames never reallocate and one-off bursts are absorbed.
type growableBuffer struct {
	buf      Buffer
	capacity int

	bindFlags uint32
	elemSize  int
	slack     int
}

// ensure reallocates the buffer if the current capacity cannot hold
// required elements. On allocation failure the previous buffer stays valid,
// so a later frame can retry within the old capacity.
func (g *growableBuffer) ensure(device Device, required int) error {
	if g.buf != nil && g.capacity >= required {
		return nil
	}
	n := required + g.slack
	buf, err := device.CreateBuffer(&d3d11.BUFFER_DESC{
		ByteWidth:      uint32(n * g.elemSize),
		Usage:          d3d11.USAGE_DYNAMIC,
		BindFlags:      g.bindFlags,
		CPUAccessFlags: d3d11.CPU_ACCESS_WRITE,
	}, nil)
	if err != nil {
		return err
	}
	if g.buf != nil {
		g.buf.Release()
		Logger().Debug("buffer grown",
			"bind", g.bindFlags, "capacity", g.capacity, "new_capacity", n)
	}
	g.buf = buf
	g.capacity = n
	return nil
}
