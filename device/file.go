// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"

	"github.com/zokrezyl/ymery/audio"
	"github.com/zokrezyl/ymery/buffer"
)

// FileDevice is a static source: an audio stream decoded once into one file
// buffer and static mediator per channel. Views over it never resize
// anything and need no locking.
type FileDevice struct {
	sampleRate int
	frames     int
	buffers    []*buffer.FileBuffer
	mediators  []*buffer.StaticMediator
}

// NewFileDevice drains src, splits it into per-channel streams and builds
// the per-channel buffers. src is closed afterwards.
func NewFileDevice(src audio.Source) (*FileDevice, error) {
	defer src.Close()

	interleaved, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("draining source: %w", err)
	}
	if len(interleaved) == 0 {
		return nil, ErrEmptySource
	}

	channels, err := audio.SplitChannels(interleaved, src.Channels())
	if err != nil {
		return nil, fmt.Errorf("splitting channels: %w", err)
	}

	d := &FileDevice{
		sampleRate: src.SampleRate(),
		frames:     len(channels[0]),
		buffers:    make([]*buffer.FileBuffer, len(channels)),
		mediators:  make([]*buffer.StaticMediator, len(channels)),
	}
	for c, samples := range channels {
		d.buffers[c] = buffer.NewFileBuffer(d.sampleRate, samples)
		d.mediators[c] = buffer.NewStaticMediator(d.buffers[c])
	}

	return d, nil
}

// SampleRate of the decoded stream in Hz.
func (d *FileDevice) SampleRate() int { return d.sampleRate }

// Frames per channel.
func (d *FileDevice) Frames() int { return d.frames }

func (d *FileDevice) Channels() int { return len(d.mediators) }

// Open returns a view into one channel. A zero cfg.Length means the whole
// file.
func (d *FileDevice) Open(channel int, cfg Config) (*buffer.View, error) {
	if channel < 0 || channel >= len(d.mediators) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownChannel, channel)
	}

	length := cfg.Length
	if length <= 0 {
		length = d.frames
	}
	return d.mediators[channel].Open(cfg.Start, length)
}

// Mediator exposes a channel's mediator for direct snapshot access.
func (d *FileDevice) Mediator(channel int) (buffer.Mediator, error) {
	if channel < 0 || channel >= len(d.mediators) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownChannel, channel)
	}
	return d.mediators[channel], nil
}

// Close disposes every channel buffer.
func (d *FileDevice) Close() error {
	for _, b := range d.buffers {
		b.Dispose()
	}
	return nil
}
