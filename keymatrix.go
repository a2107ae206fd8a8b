// SPDX-License-Identifier: MIT

package keymatrix

import (
	"time"

	"github.com/pkg/errors"

	"github.com/warpnine/go-keymatrix/mcp23s17"
)

// ErrInvalidPosition indicates a row/column outside the configured matrix.
var ErrInvalidPosition = errors.New("position outside the configured matrix")

// Position identifies one row/column intersection of the matrix.
type Position struct {
	Row int
	Col int
}

// Matrix presses row/column intersections of a switch matrix by pulsing
// pins of an expander.
//
// Each row maps to the pin of the same index on the row port, and each
// column to the pin of the same index on the column port. A press drives
// the row pin and then the column pin high, holds both for the press
// duration, then releases them in the same order, so the intersection is
// energized for the full hold time.
//
// A Matrix holds no state beyond its dimensions and the expander
// reference; it is as single-threaded as the expander beneath it, and
// every press blocks the caller for its full duration.
type Matrix struct {
	exp     *mcp23s17.Expander
	rows    int
	cols    int
	rowPort mcp23s17.Port
	colPort mcp23s17.Port
}

// New returns a Matrix of the given dimensions over exp.
//
// Rows are driven from port A and columns from port B unless overridden
// with [WithRowPort] and [WithColPort]. Each dimension is limited to the 8
// pins of its port.
func New(exp *mcp23s17.Expander, rows, cols int, options ...Option) (*Matrix, error) {
	m := &Matrix{
		exp:     exp,
		rows:    rows,
		cols:    cols,
		rowPort: mcp23s17.PortA,
		colPort: mcp23s17.PortB,
	}
	for _, o := range options {
		o.applyOption(m)
	}
	if rows < 1 || rows > 8 {
		return nil, errors.Errorf("rows must be in the range 1-8, got %d", rows)
	}
	if cols < 1 || cols > 8 {
		return nil, errors.Errorf("cols must be in the range 1-8, got %d", cols)
	}
	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the matrix.
func (m *Matrix) Cols() int {
	return m.cols
}

// Press energizes the intersection at (row, col) for the hold duration.
//
// The row pin is asserted before the column pin, matching the hardware's
// expectation that the row line drives and the column line senses, and
// both are released after the hold. The call blocks until the press
// completes.
//
// On a transport failure the press is abandoned as-is; the caller owns
// recovery, normally by closing the expander to force every line low.
func (m *Matrix) Press(row, col int, hold time.Duration) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return errors.Wrapf(ErrInvalidPosition, "position [%d][%d] in %dx%d matrix",
			row, col, m.rows, m.cols)
	}
	if err := m.exp.SetPin(m.rowPort, row, true); err != nil {
		return err
	}
	if err := m.exp.SetPin(m.colPort, col, true); err != nil {
		return err
	}
	time.Sleep(hold)
	if err := m.exp.SetPin(m.rowPort, row, false); err != nil {
		return err
	}
	return m.exp.SetPin(m.colPort, col, false)
}

// PressSequence presses each position in order, pausing for interval
// between consecutive presses but not after the last.
//
// Positions are pressed strictly in the order given, one at a time; the
// physical matrix can only register one intersection reliably at a time.
// An empty sequence is a no-op. The first failing press aborts the
// remainder and its error is returned.
func (m *Matrix) PressSequence(positions []Position, hold, interval time.Duration) error {
	for i, p := range positions {
		if err := m.Press(p.Row, p.Col, hold); err != nil {
			return errors.Wrapf(err, "press %d of %d", i+1, len(positions))
		}
		if i < len(positions)-1 {
			time.Sleep(interval)
		}
	}
	return nil
}
