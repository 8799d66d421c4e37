package engine

import "github.com/jsvensson/colorgap/internal/color"

// Cursor enumerates the RGB lattice visited by the search: starting at
// (255, 255, 255), each channel steps down by Step until it would
// underflow, with blue varying fastest and red slowest. The nested carry
// logic is linearized as index → (r, g, b) by div/mod, so boundary
// behavior for steps that don't divide 256 falls out of the arithmetic.
type Cursor struct {
	step    int
	perAxis int
	total   int
	index   int
}

// NewCursor returns a cursor over the lattice for the given step.
// Step must already be validated to [1, 255].
func NewCursor(step int) *Cursor {
	perAxis := 255/step + 1
	return &Cursor{
		step:    step,
		perAxis: perAxis,
		total:   perAxis * perAxis * perAxis,
	}
}

// Total returns the number of lattice points, ⌈256/step⌉³.
func (c *Cursor) Total() int {
	return c.total
}

// Next returns the next lattice point, or false when the sweep is done.
func (c *Cursor) Next() (color.Color, bool) {
	if c.index >= c.total {
		return color.Color{}, false
	}
	i := c.index
	c.index++

	n := c.perAxis
	return color.Color{
		R: uint8(255 - c.step*(i/(n*n))),
		G: uint8(255 - c.step*(i/n%n)),
		B: uint8(255 - c.step*(i%n)),
	}, true
}
