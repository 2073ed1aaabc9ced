// SPDX-License-Identifier: MIT
package tape

import (
	"github.com/sirupsen/logrus"
)

// Config defines configuration options for the [Builder] & [Machine]'s operations.
type Config struct {
	// Logger for debug traces.
	//
	// Preferring a public field to allow for sharing.
	Logger logrus.FieldLogger

	// Reporter receives structural diagnostics; defaults to a LogReporter on Logger.
	Reporter Reporter

	Debug bool

	// MaxDepth bounds loop nesting at build time.
	MaxDepth int

	// WideAddressing wraps the pointer over the whole tape instead of 0-255.
	WideAddressing bool

	// SharedInput threads one input queue through every loop iteration.
	SharedInput bool
}

const (
	// TapeSize is the number of cells on the tape.
	TapeSize = 30000

	// DefaultMaxDepth is the loop nesting limit used when none is configured.
	DefaultMaxDepth = 10000

	// narrowAddressSpace is the pointer modulus without WideAddressing.
	narrowAddressSpace = 256
)

// DefConfig obtains the package's default options.
func DefConfig() *Config {
	c := &Config{}
	c.Validate()

	return c
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.Reporter == nil {
		c.Reporter = &LogReporter{Logger: c.Logger}
	}
	if c.MaxDepth < 1 {
		c.MaxDepth = DefaultMaxDepth
	}
}

// addressSpace obtains the pointer modulus.
func (c *Config) addressSpace() int {
	if c.WideAddressing {
		return TapeSize
	}

	return narrowAddressSpace
}
