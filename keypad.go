// SPDX-License-Identifier: MIT

package keymatrix

import (
	"time"

	"github.com/pkg/errors"
)

// Keypad presses matrix positions by button name.
//
// The layout maps button names to positions within the underlying Matrix.
// Multi-character names such as "CALL" are pressed via [Keypad.Press];
// [Keypad.PressDigits] treats each character of its argument as a
// single-character button name.
type Keypad struct {
	matrix *Matrix
	layout map[string]Position
}

// Layout3x4 returns the button layout of the common 3x4 telephone-style
// keypad:
//
//	1    2    3    CALL
//	4    5    6    0
//	7    8    9    CLR
func Layout3x4() map[string]Position {
	return map[string]Position{
		"1": {0, 0}, "2": {0, 1}, "3": {0, 2}, "CALL": {0, 3},
		"4": {1, 0}, "5": {1, 1}, "6": {1, 2}, "0": {1, 3},
		"7": {2, 0}, "8": {2, 1}, "9": {2, 2}, "CLR": {2, 3},
	}
}

// NewKeypad returns a Keypad pressing the buttons of layout on m.
//
// Every position in the layout must lie within the matrix.
func NewKeypad(m *Matrix, layout map[string]Position) (*Keypad, error) {
	for name, p := range layout {
		if p.Row < 0 || p.Row >= m.rows || p.Col < 0 || p.Col >= m.cols {
			return nil, errors.Wrapf(ErrInvalidPosition,
				"button %q at [%d][%d] in %dx%d matrix", name, p.Row, p.Col, m.rows, m.cols)
		}
	}
	return &Keypad{matrix: m, layout: layout}, nil
}

// Position returns the matrix position of a named button.
func (k *Keypad) Position(name string) (Position, bool) {
	p, ok := k.layout[name]
	return p, ok
}

// Press presses a button by name, holding it for the hold duration.
func (k *Keypad) Press(name string, hold time.Duration) error {
	p, ok := k.layout[name]
	if !ok {
		return errors.Errorf("no button %q in layout", name)
	}
	return k.matrix.Press(p.Row, p.Col, hold)
}

// PressNames presses each named button in order, pausing for interval
// between consecutive presses.
func (k *Keypad) PressNames(names []string, hold, interval time.Duration) error {
	positions := make([]Position, 0, len(names))
	for _, name := range names {
		p, ok := k.layout[name]
		if !ok {
			return errors.Errorf("no button %q in layout", name)
		}
		positions = append(positions, p)
	}
	return k.matrix.PressSequence(positions, hold, interval)
}

// PressDigits presses the button for each character of digits in order,
// pausing for interval between consecutive presses.
//
// Unknown characters fail before any button is pressed.
func (k *Keypad) PressDigits(digits string, hold, interval time.Duration) error {
	names := make([]string, 0, len(digits))
	for _, c := range digits {
		names = append(names, string(c))
	}
	return k.PressNames(names, hold, interval)
}
