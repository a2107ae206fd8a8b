// SPDX-License-Identifier: MIT

package keymatrix_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warpnine/go-keymatrix"
	"github.com/warpnine/go-keymatrix/mcp23s17"
	"github.com/warpnine/go-keymatrix/spitest"
)

func newMatrix(t *testing.T, rows, cols int, options ...keymatrix.Option) (*spitest.Chip, *keymatrix.Matrix) {
	t.Helper()
	chip := spitest.New()
	e, err := mcp23s17.New(chip, mcp23s17.WithCloser(chip))
	require.Nil(t, err)
	m, err := keymatrix.New(e, rows, cols, options...)
	require.Nil(t, err)
	chip.Reset()
	return chip, m
}

func TestNew(t *testing.T) {
	chip := spitest.New()
	e, err := mcp23s17.New(chip)
	require.Nil(t, err)

	m, err := keymatrix.New(e, 3, 4)
	require.Nil(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())

	// dimensions bounded by the 8 pins of a port
	m, err = keymatrix.New(e, 9, 4)
	assert.NotNil(t, err)
	assert.Nil(t, m)
	m, err = keymatrix.New(e, 3, 0)
	assert.NotNil(t, err)
	assert.Nil(t, m)
}

func TestPress(t *testing.T) {
	chip, m := newMatrix(t, 3, 4)

	hold := 20 * time.Millisecond
	err := m.Press(1, 3, hold)
	assert.Nil(t, err)

	// exactly four writes: row-high, col-high, row-low, col-low
	writes := chip.Writes()
	require.Equal(t, 4, len(writes))
	assert.Equal(t, mcp23s17.GPIOA, writes[0].Register)
	assert.Equal(t, byte(0x02), writes[0].Data)
	assert.Equal(t, mcp23s17.GPIOB, writes[1].Register)
	assert.Equal(t, byte(0x08), writes[1].Data)
	assert.Equal(t, mcp23s17.GPIOA, writes[2].Register)
	assert.Equal(t, byte(0x00), writes[2].Data)
	assert.Equal(t, mcp23s17.GPIOB, writes[3].Register)
	assert.Equal(t, byte(0x00), writes[3].Data)

	// both lines held concurrently for at least the hold time
	assert.GreaterOrEqual(t, writes[2].At.Sub(writes[1].At), hold)

	assert.Equal(t, byte(0x00), chip.Reg(mcp23s17.GPIOA))
	assert.Equal(t, byte(0x00), chip.Reg(mcp23s17.GPIOB))
}

func TestPressInvalidPosition(t *testing.T) {
	chip, m := newMatrix(t, 3, 4)

	err := m.Press(3, 0, time.Millisecond)
	assert.ErrorIs(t, err, keymatrix.ErrInvalidPosition)
	err = m.Press(0, 4, time.Millisecond)
	assert.ErrorIs(t, err, keymatrix.ErrInvalidPosition)
	err = m.Press(-1, 0, time.Millisecond)
	assert.ErrorIs(t, err, keymatrix.ErrInvalidPosition)
	err = m.Press(0, -1, time.Millisecond)
	assert.ErrorIs(t, err, keymatrix.ErrInvalidPosition)

	// rejected before any bus access
	assert.Equal(t, 0, len(chip.Frames()))
}

func TestPressPorts(t *testing.T) {
	// rows and columns swapped onto the opposite ports
	chip, m := newMatrix(t, 4, 4,
		keymatrix.WithRowPort(mcp23s17.PortB),
		keymatrix.WithColPort(mcp23s17.PortA),
	)

	err := m.Press(2, 0, time.Millisecond)
	assert.Nil(t, err)

	writes := chip.Writes()
	require.Equal(t, 4, len(writes))
	assert.Equal(t, mcp23s17.GPIOB, writes[0].Register)
	assert.Equal(t, byte(0x04), writes[0].Data)
	assert.Equal(t, mcp23s17.GPIOA, writes[1].Register)
	assert.Equal(t, byte(0x01), writes[1].Data)
}

func TestPressTransportFailure(t *testing.T) {
	chip, m := newMatrix(t, 3, 4)

	xerr := errors.New("bus fault")
	chip.SetErr(xerr)
	err := m.Press(0, 0, time.Millisecond)
	assert.ErrorIs(t, err, xerr)
}

func TestPressSequence(t *testing.T) {
	chip, m := newMatrix(t, 3, 4)

	hold := 10 * time.Millisecond
	interval := 25 * time.Millisecond
	err := m.PressSequence([]keymatrix.Position{{0, 0}, {1, 1}}, hold, interval)
	assert.Nil(t, err)

	// two full presses, four writes each
	writes := chip.Writes()
	require.Equal(t, 8, len(writes))
	assert.Equal(t, byte(0x01), writes[0].Data) // A0 high
	assert.Equal(t, byte(0x01), writes[1].Data) // B0 high
	assert.Equal(t, byte(0x02), writes[4].Data) // A1 high
	assert.Equal(t, byte(0x02), writes[5].Data) // B1 high

	// presses separated by at least the interval
	assert.GreaterOrEqual(t, writes[4].At.Sub(writes[3].At), interval)
}

func TestPressSequenceEmpty(t *testing.T) {
	chip, m := newMatrix(t, 3, 4)

	start := time.Now()
	err := m.PressSequence(nil, time.Second, time.Second)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(chip.Frames()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestPressSequenceAbortsOnInvalid(t *testing.T) {
	chip, m := newMatrix(t, 3, 4)

	err := m.PressSequence([]keymatrix.Position{{0, 0}, {5, 5}, {1, 1}},
		time.Millisecond, time.Millisecond)
	assert.ErrorIs(t, err, keymatrix.ErrInvalidPosition)

	// only the first press reached the bus
	assert.Equal(t, 4, len(chip.Writes()))
}

func TestPress3x4Scenario(t *testing.T) {
	// 3x4 matrix, rows on port A pins 0-2, columns on port B pins 0-3.
	// Pressing (1,3) holds A1 and B3, i.e. 0x02/0x08, then releases both.
	chip, m := newMatrix(t, 3, 4)

	err := m.Press(1, 3, 15*time.Millisecond)
	assert.Nil(t, err)

	writes := chip.Writes()
	require.Equal(t, 4, len(writes))
	assert.Equal(t, byte(0x02), writes[0].Data)
	assert.Equal(t, byte(0x08), writes[1].Data)
	assert.Equal(t, byte(0x00), chip.Reg(mcp23s17.GPIOA))
	assert.Equal(t, byte(0x00), chip.Reg(mcp23s17.GPIOB))
}
