// SPDX-License-Identifier: MIT

/*
Package keymatrix simulates button presses on a row/column switch matrix,
such as a keypad, by pulsing pins of an MCP23S17 SPI GPIO expander.

A [Matrix] maps logical (row, col) positions onto expander pins, rows on
one port and columns on the other. Pressing a position asserts its row pin
and column pin together, holds both for the press duration, then releases
them, so exactly one intersection of the matrix is energized at a time.
Sequences of presses run strictly in order with a configurable pause
between presses.

	exp, err := mcp23s17.Open("/dev/spidev0.0")
	if err != nil {
		...
	}
	defer exp.Close()

	m, err := keymatrix.New(exp, 3, 4)
	m.Press(1, 3, 100*time.Millisecond)
	m.PressSequence([]keymatrix.Position{{0, 0}, {1, 1}},
		100*time.Millisecond, 200*time.Millisecond)

The [Keypad] adds a named-button layer over a Matrix, with [Layout3x4]
providing the common 3x4 telephone-style layout:

	kp, err := keymatrix.NewKeypad(m, keymatrix.Layout3x4())
	kp.PressDigits("5551234", 100*time.Millisecond, 200*time.Millisecond)

Everything is blocking and single-threaded: a press occupies the caller
for its full duration, matching the hardware's one-press-at-a-time
constraint. On any failure the expander's Close forces every line low, and
the owning caller is expected to arrange that on every exit path.

Package mcp23s17 provides the expander driver and package spitest a
simulated chip for testing without hardware.
*/
package keymatrix
