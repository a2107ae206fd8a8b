// SPDX-License-Identifier: MIT

/*
Package mcp23s17 drives a Microchip MCP23S17 16-bit SPI GPIO expander.

The chip exposes two 8-bit ports, [PortA] and [PortB], each pin of which
can be driven high or low once configured as an output. The [Expander]
keeps a shadow copy of each port's output value so that single-pin updates
are a single register write and [Expander.PortState] never touches the
bus.

[New] constructs an Expander on any transport satisfying the [Conn]
contract and initializes the chip with all 16 pins as outputs driven low.
[Open] is a convenience that opens a Linux spidev port via
periph.io/x/conn/v3/spi/spireg first:

	exp, err := mcp23s17.Open("/dev/spidev0.0")
	if err != nil {
		...
	}
	defer exp.Close()

	exp.SetPin(mcp23s17.PortA, 3, true)
	exp.PulsePin(mcp23s17.PortB, 0, 100*time.Millisecond)

[Expander.Close] unconditionally drives every output low before releasing
the bus, and is safe to call on any exit path, including after a failed
operation.

An Expander assumes it is the only agent on its chip select and is not
safe for concurrent use; pulse operations block the caller for their full
duration.
*/
package mcp23s17
