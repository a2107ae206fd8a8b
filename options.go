// SPDX-License-Identifier: MIT

package keymatrix

import "github.com/warpnine/go-keymatrix/mcp23s17"

// Option defines the interface required to provide an option to New.
type Option interface {
	applyOption(*Matrix)
}

// RowPortOption defines the expander port driving the matrix rows.
type RowPortOption mcp23s17.Port

// WithRowPort returns an option that maps the matrix rows onto the given
// expander port.
func WithRowPort(p mcp23s17.Port) RowPortOption {
	return RowPortOption(p)
}

func (o RowPortOption) applyOption(m *Matrix) {
	m.rowPort = mcp23s17.Port(o)
}

// ColPortOption defines the expander port driving the matrix columns.
type ColPortOption mcp23s17.Port

// WithColPort returns an option that maps the matrix columns onto the
// given expander port.
func WithColPort(p mcp23s17.Port) ColPortOption {
	return ColPortOption(p)
}

func (o ColPortOption) applyOption(m *Matrix) {
	m.colPort = mcp23s17.Port(o)
}
