// SPDX-License-Identifier: MIT

package mcp23s17

import (
	"io"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidPort indicates a port other than PortA or PortB.
	ErrInvalidPort = errors.New("port must be PortA or PortB")

	// ErrInvalidPin indicates a pin outside the range 0-7.
	ErrInvalidPin = errors.New("pin must be in the range 0-7")

	// ErrClosed indicates the expander has been closed.
	ErrClosed = errors.New("expander is closed")
)

// Expander provides pin and port level control of a single MCP23S17.
//
// The expander keeps a shadow copy of each port's output value, so pin
// updates never need to read the chip, and PortState never touches the
// bus. The shadow is only updated once the corresponding register write
// has succeeded, so it always reflects the last value the chip accepted.
//
// An Expander is the sole owner of its bus connection and is not safe for
// concurrent use. Pulse operations block the caller for their full
// duration.
type Expander struct {
	bus    *Bus
	closer io.Closer

	// Shadow output values, indexed by Port.
	state [2]byte

	closed bool
}

// New constructs an Expander on conn and initializes the chip: both ports
// all-outputs, pull-ups disabled, all pins driven low.
//
// Any failure during initialization is fatal and the Expander must not be
// used. The available options are [WithChipSelect] and [WithCloser].
func New(conn Conn, options ...Option) (*Expander, error) {
	c := config{speed: DefaultSpeed}
	for _, o := range options {
		o.applyOption(&c)
	}
	bus, err := NewBus(conn, c.chipSelect)
	if err != nil {
		return nil, err
	}
	e := &Expander{bus: bus, closer: c.closer}
	if err := e.initialize(); err != nil {
		return nil, errors.Wrap(err, "initializing expander")
	}
	return e, nil
}

// initialize puts the chip in the known starting state: all 16 pins
// outputs, no pull-ups, everything low.
func (e *Expander) initialize() error {
	for _, p := range []Port{PortA, PortB} {
		if err := e.bus.WriteRegister(p.iodir(), 0x00); err != nil {
			return err
		}
	}
	for _, p := range []Port{PortA, PortB} {
		if err := e.bus.WriteRegister(p.gppu(), 0x00); err != nil {
			return err
		}
	}
	for _, p := range []Port{PortA, PortB} {
		if err := e.bus.WriteRegister(p.gpio(), 0x00); err != nil {
			return err
		}
		e.state[p] = 0x00
	}
	return nil
}

// check validates the port and pin and that the expander is usable.
func (e *Expander) check(port Port, pin int) error {
	if e.closed {
		return ErrClosed
	}
	if port != PortA && port != PortB {
		return errors.Wrapf(ErrInvalidPort, "port %d", int(port))
	}
	if pin < 0 || pin > 7 {
		return errors.Wrapf(ErrInvalidPin, "pin %d", pin)
	}
	return nil
}

// SetPin drives a single pin high or low, leaving the rest of the port
// untouched.
func (e *Expander) SetPin(port Port, pin int, level bool) error {
	if err := e.check(port, pin); err != nil {
		return err
	}
	s := e.state[port]
	if level {
		s |= 1 << pin
	} else {
		s &^= 1 << pin
	}
	if err := e.bus.WriteRegister(port.gpio(), s); err != nil {
		return err
	}
	e.state[port] = s
	return nil
}

// TogglePin inverts a pin and returns the new level.
func (e *Expander) TogglePin(port Port, pin int) (bool, error) {
	if err := e.check(port, pin); err != nil {
		return false, err
	}
	level := e.state[port]&(1<<pin) == 0
	if err := e.SetPin(port, pin, level); err != nil {
		return false, err
	}
	return level, nil
}

// SetPort writes the whole 8-bit value to a port in one transfer.
func (e *Expander) SetPort(port Port, value byte) error {
	if err := e.check(port, 0); err != nil {
		return err
	}
	if err := e.bus.WriteRegister(port.gpio(), value); err != nil {
		return err
	}
	e.state[port] = value
	return nil
}

// PortState returns the shadow output value of a port.
//
// The shadow is authoritative once New has completed, since the expander
// is the only writer, so no bus transfer is issued.
func (e *Expander) PortState(port Port) (byte, error) {
	if err := e.check(port, 0); err != nil {
		return 0, err
	}
	return e.state[port], nil
}

// ReadInput reads the live value of a port from the chip, bypassing the
// shadow. Only meaningful for pins configured as inputs.
func (e *Expander) ReadInput(port Port) (byte, error) {
	if err := e.check(port, 0); err != nil {
		return 0, err
	}
	return e.bus.ReadRegister(port.gpio())
}

// ConfigurePinMode configures a single pin as an output or an input.
//
// This is a read-modify-write of the direction register and relies on the
// expander being the only agent on the bus.
func (e *Expander) ConfigurePinMode(port Port, pin int, output bool) error {
	if err := e.check(port, pin); err != nil {
		return err
	}
	dir, err := e.bus.ReadRegister(port.iodir())
	if err != nil {
		return err
	}
	// IODIR: 0=output, 1=input.
	if output {
		dir &^= 1 << pin
	} else {
		dir |= 1 << pin
	}
	return e.bus.WriteRegister(port.iodir(), dir)
}

// PulsePin drives a pin high, holds it for the given duration, then drives
// it low again. The call blocks for the full duration.
func (e *Expander) PulsePin(port Port, pin int, duration time.Duration) error {
	if err := e.SetPin(port, pin, true); err != nil {
		return err
	}
	time.Sleep(duration)
	return e.SetPin(port, pin, false)
}

// Close forces every output low and releases the bus.
//
// Both port registers are written 0x00 unconditionally rather than trusting
// the shadow, so Close may be called after a failure has left the cached
// state in doubt. Closing an already closed expander is a no-op.
func (e *Expander) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	var firstErr error
	for _, p := range []Port{PortA, PortB} {
		if err := e.bus.WriteRegister(p.gpio(), 0x00); err != nil && firstErr == nil {
			firstErr = err
		}
		e.state[p] = 0x00
	}
	if e.closer != nil {
		if err := e.closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
