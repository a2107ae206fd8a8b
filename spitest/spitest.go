// SPDX-License-Identifier: MIT

/*
Package spitest provides a simulated MCP23S17 for testing users of the
mcp23s17 package without hardware.

The [Chip] implements the driver's transport contract, models the chip's
register file, and records every frame transferred with a timestamp, so
tests can assert both the state the chip was left in and the exact order
and timing of the transfers that put it there.
*/
package spitest

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/warpnine/go-keymatrix/mcp23s17"
)

// Frame records a single 3-byte transfer seen by the chip.
type Frame struct {
	// At is the time the transfer arrived.
	At time.Time

	// Cmd is the raw command byte.
	Cmd byte

	// Register addressed by the transfer.
	Register mcp23s17.Register

	// Data is the byte written, or for a read the byte returned.
	Data byte

	// Read reports whether the opcode bit was set.
	Read bool
}

// Chip simulates an MCP23S17 on the far side of the SPI bus.
//
// The zero value is not usable; construct with New.
type Chip struct {
	mu     sync.Mutex
	regs   [22]byte
	frames []Frame
	err    error
	closed int
}

// New returns a simulated chip with all registers at their IODIR power-on
// defaults cleared to zero.
func New() *Chip {
	return &Chip{}
}

// Tx implements the mcp23s17.Conn transport contract.
//
// Write frames update the addressed register; read frames return its
// current value in the third reply byte.
func (c *Chip) Tx(w, r []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	if len(w) != 3 || len(r) != 3 {
		return errors.Errorf("frame must be 3 bytes, got %d/%d", len(w), len(r))
	}
	reg := mcp23s17.Register(w[1])
	if int(reg) >= len(c.regs) {
		return errors.Errorf("register address 0x%02x out of range", w[1])
	}
	f := Frame{
		At:       time.Now(),
		Cmd:      w[0],
		Register: reg,
		Read:     w[0]&0x01 != 0,
	}
	if f.Read {
		r[2] = c.regs[reg]
		f.Data = r[2]
	} else {
		c.regs[reg] = w[2]
		f.Data = w[2]
	}
	c.frames = append(c.frames, f)
	return nil
}

// Close satisfies io.Closer so the chip can stand in for the bus handle.
func (c *Chip) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
	return nil
}

// Closed returns the number of times Close has been called.
func (c *Chip) Closed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Reg returns the current value of a register.
func (c *Chip) Reg(reg mcp23s17.Register) byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regs[reg]
}

// SetReg loads a register directly, e.g. to present input pin levels
// without a bus transfer.
func (c *Chip) SetReg(reg mcp23s17.Register, value byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.regs[reg] = value
}

// SetErr makes every subsequent transfer fail with err, or succeed again
// if err is nil.
func (c *Chip) SetErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

// Frames returns a copy of every frame transferred so far.
func (c *Chip) Frames() []Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Frame(nil), c.frames...)
}

// Writes returns a copy of the write frames transferred so far.
func (c *Chip) Writes() []Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	var w []Frame
	for _, f := range c.frames {
		if !f.Read {
			w = append(w, f)
		}
	}
	return w
}

// Reset clears the frame record, keeping the register state.
func (c *Chip) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = nil
}
