// SPDX-License-Identifier: MIT

package mcp23s17

import (
	"time"

	"github.com/pkg/errors"
	"github.com/warthog618/go-gpiocdev"
)

// HardwareReset pulses the expander's active-low RESET pin via a host GPIO
// line, returning every register to its power-on default.
//
// chip names the gpiochip the RESET pin is wired to, e.g. "gpiochip0", and
// offset the line within it. The line is requested, driven low for
// longer than the 1us minimum reset pulse the datasheet requires, released
// high, and then freed.
//
// Call before New or Open when the RESET pin is under host control rather
// than tied to VDD.
func HardwareReset(chip string, offset int) error {
	l, err := gpiocdev.RequestLine(chip, offset,
		gpiocdev.AsOutput(0), gpiocdev.WithConsumer("mcp23s17-reset"))
	if err != nil {
		return errors.Wrapf(err, "requesting reset line %s:%d", chip, offset)
	}
	defer l.Close()
	time.Sleep(10 * time.Microsecond)
	if err := l.SetValue(1); err != nil {
		return errors.Wrap(err, "releasing reset line")
	}
	// tRESET to output valid, per datasheet.
	time.Sleep(10 * time.Microsecond)
	return nil
}
