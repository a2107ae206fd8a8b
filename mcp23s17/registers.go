// SPDX-License-Identifier: MIT

package mcp23s17

import "fmt"

// Register identifies one of the MCP23S17 control registers.
//
// The addresses assume IOCON.BANK=0 (the power-on default), where the
// port A and port B copies of each register sit at consecutive addresses.
type Register byte

const (
	// I/O direction (1=input, 0=output).
	IODIRA Register = 0x00
	IODIRB Register = 0x01

	// Input polarity inversion.
	IPOLA Register = 0x02
	IPOLB Register = 0x03

	// Interrupt-on-change enable.
	GPINTENA Register = 0x04
	GPINTENB Register = 0x05

	// Default comparison value for interrupt-on-change.
	DEFVALA Register = 0x06
	DEFVALB Register = 0x07

	// Interrupt control (compare against DEFVAL or previous value).
	INTCONA Register = 0x08
	INTCONB Register = 0x09

	// Chip configuration.
	IOCONA Register = 0x0a
	IOCONB Register = 0x0b

	// 100k pull-up enable.
	GPPUA Register = 0x0c
	GPPUB Register = 0x0d

	// Interrupt flag (read-only).
	INTFA Register = 0x0e
	INTFB Register = 0x0f

	// Port value captured at interrupt time (read-only).
	INTCAPA Register = 0x10
	INTCAPB Register = 0x11

	// Port value.
	GPIOA Register = 0x12
	GPIOB Register = 0x13

	// Output latch.
	OLATA Register = 0x14
	OLATB Register = 0x15
)

var registerNames = [...]string{
	"IODIRA", "IODIRB",
	"IPOLA", "IPOLB",
	"GPINTENA", "GPINTENB",
	"DEFVALA", "DEFVALB",
	"INTCONA", "INTCONB",
	"IOCONA", "IOCONB",
	"GPPUA", "GPPUB",
	"INTFA", "INTFB",
	"INTCAPA", "INTCAPB",
	"GPIOA", "GPIOB",
	"OLATA", "OLATB",
}

func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("Register(0x%02x)", byte(r))
}

// Port identifies one of the two 8-bit GPIO groups on the expander.
type Port int

const (
	PortA Port = iota
	PortB
)

func (p Port) String() string {
	switch p {
	case PortA:
		return "A"
	case PortB:
		return "B"
	}
	return fmt.Sprintf("Port(%d)", int(p))
}

// gpio returns the port value register for the port.
//
// Port A registers sit at even addresses with the port B copy immediately
// after, so the port number is the offset from the A register.
func (p Port) gpio() Register {
	return GPIOA + Register(p)
}

// iodir returns the direction register for the port.
func (p Port) iodir() Register {
	return IODIRA + Register(p)
}

// gppu returns the pull-up register for the port.
func (p Port) gppu() Register {
	return GPPUA + Register(p)
}
