// SPDX-License-Identifier: MIT

package mcp23s17

import (
	"io"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

const (
	// DefaultSpeed is the default SPI clock frequency.
	DefaultSpeed = 100 * physic.KiloHertz

	// MaxSpeed is the highest SPI clock frequency the chip supports.
	MaxSpeed = 10 * physic.MegaHertz
)

// Open opens the SPI port registered under addr, e.g. "/dev/spidev0.0" or
// "SPI0.0", connects to it in mode 0 at the configured clock frequency,
// and returns an initialized Expander owning the port.
//
// The host SPI drivers must already be loaded, typically via
// periph.io/x/host/v3 host.Init.
//
// The available options are [WithChipSelect], [WithSpeed] and [WithCloser].
// The opened port is always closed by Expander.Close, before any
// additional closer provided by option.
func Open(addr string, options ...Option) (*Expander, error) {
	c := config{speed: DefaultSpeed}
	for _, o := range options {
		o.applyOption(&c)
	}
	if c.speed < DefaultSpeed || c.speed > MaxSpeed {
		return nil, errors.Errorf("SPI clock %v outside the supported range %v-%v",
			c.speed, DefaultSpeed, MaxSpeed)
	}
	port, err := spireg.Open(addr)
	if err != nil {
		return nil, errors.Wrapf(err, "opening SPI port %s", addr)
	}
	conn, err := port.Connect(c.speed, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, errors.Wrapf(err, "connecting to SPI port %s", addr)
	}
	e, err := New(conn, append(options, WithCloser(portCloser{port, c.closer}))...)
	if err != nil {
		port.Close()
		return nil, err
	}
	return e, nil
}

// portCloser closes the SPI port and then any caller-provided closer.
type portCloser struct {
	port  spi.PortCloser
	extra io.Closer
}

func (p portCloser) Close() error {
	err := p.port.Close()
	if p.extra != nil {
		if cerr := p.extra.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
