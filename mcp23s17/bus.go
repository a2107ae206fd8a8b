// SPDX-License-Identifier: MIT

package mcp23s17

import (
	"github.com/pkg/errors"
)

// Conn is the transport contract the driver requires of the SPI bus.
//
// Tx performs a full-duplex transfer, clocking out w while filling r with
// the bytes clocked in. Both slices are the same length. periph.io's
// spi.Conn satisfies this, as does the spitest simulator.
type Conn interface {
	Tx(w, r []byte) error
}

const (
	// Fixed prefix of the command byte (bits 7:6 = 01).
	cmdPrefix = 0x40

	// Opcode bit (bit 0): 0 for write, 1 for read.
	cmdRead = 0x01
)

// Bus frames register transfers for a single MCP23S17 on an SPI connection.
//
// Every transfer is a 3-byte frame: command byte, register address, data.
// The command byte is fixed at construction from the chip-select address
// bit, with only the opcode bit varying between reads and writes.
type Bus struct {
	conn Conn
	wcmd byte
	rcmd byte
}

// NewBus returns a Bus addressing the chip with the given chip-select
// address bit (0 or 1) on conn.
func NewBus(conn Conn, chipSelect int) (*Bus, error) {
	if chipSelect != 0 && chipSelect != 1 {
		return nil, errors.Errorf("chip select must be 0 or 1, got %d", chipSelect)
	}
	cmd := byte(cmdPrefix | chipSelect<<1)
	return &Bus{conn: conn, wcmd: cmd, rcmd: cmd | cmdRead}, nil
}

// WriteRegister writes a single byte to the given register.
//
// Transport failures are returned to the caller with the cause intact.
// There is no retry at this layer.
func (b *Bus) WriteRegister(reg Register, data byte) error {
	var r [3]byte
	if err := b.conn.Tx([]byte{b.wcmd, byte(reg), data}, r[:]); err != nil {
		return errors.Wrapf(err, "writing %v", reg)
	}
	return nil
}

// ReadRegister reads a single byte from the given register.
func (b *Bus) ReadRegister(reg Register) (byte, error) {
	var r [3]byte
	if err := b.conn.Tx([]byte{b.rcmd, byte(reg), 0x00}, r[:]); err != nil {
		return 0, errors.Wrapf(err, "reading %v", reg)
	}
	return r[2], nil
}
