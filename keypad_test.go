// SPDX-License-Identifier: MIT

package keymatrix_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warpnine/go-keymatrix"
	"github.com/warpnine/go-keymatrix/mcp23s17"
)

func TestLayout3x4(t *testing.T) {
	layout := keymatrix.Layout3x4()
	assert.Equal(t, 12, len(layout))
	assert.Equal(t, keymatrix.Position{0, 0}, layout["1"])
	assert.Equal(t, keymatrix.Position{1, 3}, layout["0"])
	assert.Equal(t, keymatrix.Position{0, 3}, layout["CALL"])
	assert.Equal(t, keymatrix.Position{2, 3}, layout["CLR"])
}

func TestNewKeypad(t *testing.T) {
	_, m := newMatrix(t, 3, 4)

	kp, err := keymatrix.NewKeypad(m, keymatrix.Layout3x4())
	require.Nil(t, err)
	assert.NotNil(t, kp)

	p, ok := kp.Position("5")
	assert.True(t, ok)
	assert.Equal(t, keymatrix.Position{1, 1}, p)
	_, ok = kp.Position("#")
	assert.False(t, ok)

	// layout positions must fit the matrix
	_, m2 := newMatrix(t, 2, 2)
	kp, err = keymatrix.NewKeypad(m2, keymatrix.Layout3x4())
	assert.ErrorIs(t, err, keymatrix.ErrInvalidPosition)
	assert.Nil(t, kp)
}

func TestKeypadPress(t *testing.T) {
	chip, m := newMatrix(t, 3, 4)
	kp, err := keymatrix.NewKeypad(m, keymatrix.Layout3x4())
	require.Nil(t, err)

	err = kp.Press("CALL", time.Millisecond)
	assert.Nil(t, err)

	writes := chip.Writes()
	require.Equal(t, 4, len(writes))
	assert.Equal(t, mcp23s17.GPIOA, writes[0].Register)
	assert.Equal(t, byte(0x01), writes[0].Data) // row 0
	assert.Equal(t, mcp23s17.GPIOB, writes[1].Register)
	assert.Equal(t, byte(0x08), writes[1].Data) // col 3

	err = kp.Press("#", time.Millisecond)
	assert.NotNil(t, err)
}

func TestKeypadPressDigits(t *testing.T) {
	chip, m := newMatrix(t, 3, 4)
	kp, err := keymatrix.NewKeypad(m, keymatrix.Layout3x4())
	require.Nil(t, err)

	err = kp.PressDigits("19", time.Millisecond, time.Millisecond)
	assert.Nil(t, err)

	writes := chip.Writes()
	require.Equal(t, 8, len(writes))
	assert.Equal(t, byte(0x01), writes[0].Data) // 1: row 0
	assert.Equal(t, byte(0x01), writes[1].Data) // 1: col 0
	assert.Equal(t, byte(0x04), writes[4].Data) // 9: row 2
	assert.Equal(t, byte(0x04), writes[5].Data) // 9: col 2
}

func TestKeypadPressDigitsUnknown(t *testing.T) {
	chip, m := newMatrix(t, 3, 4)
	kp, err := keymatrix.NewKeypad(m, keymatrix.Layout3x4())
	require.Nil(t, err)

	// unknown character fails before any button is pressed
	err = kp.PressDigits("1#2", time.Millisecond, time.Millisecond)
	assert.NotNil(t, err)
	assert.Equal(t, 0, len(chip.Frames()))
}

func TestKeypadPressNames(t *testing.T) {
	chip, m := newMatrix(t, 3, 4)
	kp, err := keymatrix.NewKeypad(m, keymatrix.Layout3x4())
	require.Nil(t, err)

	err = kp.PressNames([]string{"5", "CALL"}, time.Millisecond, time.Millisecond)
	assert.Nil(t, err)
	assert.Equal(t, 8, len(chip.Writes()))
}
