// SPDX-License-Identifier: MIT

package mcp23s17

import (
	"io"

	"periph.io/x/conn/v3/physic"
)

// config contains the constructor options for an Expander.
type config struct {
	chipSelect int
	closer     io.Closer
	speed      physic.Frequency
}

// Option defines the interface required to provide an option to New or
// Open.
type Option interface {
	applyOption(*config)
}

// ChipSelectOption defines the chip-select address bit for an Expander.
type ChipSelectOption int

// WithChipSelect returns an option that sets the chip-select address bit
// (0 or 1) encoded into every command byte.
func WithChipSelect(cs int) ChipSelectOption {
	return ChipSelectOption(cs)
}

func (o ChipSelectOption) applyOption(c *config) {
	c.chipSelect = int(o)
}

// CloserOption defines the resource released when an Expander is closed.
type CloserOption struct {
	closer io.Closer
}

// WithCloser returns an option that has the Expander close the given
// resource, typically the SPI port, as the final step of Close.
func WithCloser(closer io.Closer) CloserOption {
	return CloserOption{closer}
}

func (o CloserOption) applyOption(c *config) {
	c.closer = o.closer
}

// SpeedOption defines the SPI clock frequency used by Open.
type SpeedOption physic.Frequency

// WithSpeed returns an option that sets the SPI clock frequency, in the
// range 100 kHz to 10 MHz. Only meaningful to Open; New does not touch the
// transport configuration.
func WithSpeed(f physic.Frequency) SpeedOption {
	return SpeedOption(f)
}

func (o SpeedOption) applyOption(c *config) {
	c.speed = physic.Frequency(o)
}
