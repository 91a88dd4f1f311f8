// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"

	"github.com/zokrezyl/ymery/buffer"
)

// Device is a source providing one or more channels of sample data through
// mediated views.
type Device interface {
	// Channels is the number of channels this device provides.
	Channels() int
	// Open returns a view into the given channel's mediator.
	Open(channel int, cfg Config) (*buffer.View, error)
	// Close stops any producer loop and tears down the backends.
	Close() error
}

// Config selects the window a consumer wants when opening a channel.
type Config struct {
	// Start offset into the channel's window.
	Start int `yaml:"start"`
	// Length of the window in samples; 0 means the whole currently available
	// window.
	Length int `yaml:"length"`
}

// channelState is the per-channel ring buffer and mediator shared by the
// generator-backed devices.
type channelState struct {
	ring *buffer.RingBuffer
	med  *buffer.DynamicMediator
}

func newChannelState(sampleRate, periodSize int) *channelState {
	ring := buffer.NewRingBuffer(sampleRate, 0, periodSize)
	return &channelState{
		ring: ring,
		med:  buffer.NewDynamicMediator(ring),
	}
}

func (c *channelState) open(channel int, cfg Config) (*buffer.View, error) {
	if channel != 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownChannel, channel)
	}

	length := cfg.Length
	if length <= 0 {
		length = c.ring.Len()
	}
	return c.med.Open(cfg.Start, length)
}

// Mediator exposes the channel's mediator for direct snapshot access.
func (c *channelState) Mediator() buffer.Mediator { return c.med }

func (c *channelState) Channels() int { return 1 }
