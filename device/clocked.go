// SPDX-License-Identifier: EPL-2.0

package device

import (
	"time"

	"github.com/zokrezyl/ymery/buffer"
)

// ClockedWaveformDevice is the cooperative variant of WaveformDevice for
// hosts without real threads. Instead of a producer goroutine it keeps a
// virtual clock: each Pump call generates however many periods the elapsed
// wall-clock time implies, so a render loop that calls Pump before reading
// always catches the stream up to "now".
type ClockedWaveformDevice struct {
	*channelState

	gen        *generator
	periodSize int

	now     func() time.Time // injectable for tests
	epoch   time.Time
	written int // samples generated since epoch
	running bool
}

// NewClockedWaveformDevice creates a virtual-clock waveform device.
func NewClockedWaveformDevice(waveform WaveType, sampleRate int, frequency float64, periodSize int) (*ClockedWaveformDevice, error) {
	state := newChannelState(sampleRate, periodSize)

	gen, err := newGenerator(waveform, sampleRate, frequency, state.ring.PeriodSize())
	if err != nil {
		return nil, err
	}

	return &ClockedWaveformDevice{
		channelState: state,
		gen:          gen,
		periodSize:   state.ring.PeriodSize(),
		now:          time.Now,
	}, nil
}

// Open returns a view into the device's single channel.
func (d *ClockedWaveformDevice) Open(channel int, cfg Config) (*buffer.View, error) {
	return d.open(channel, cfg)
}

// Start resets the virtual clock and begins counting generated samples.
func (d *ClockedWaveformDevice) Start() error {
	if d.running {
		return ErrAlreadyStarted
	}
	d.epoch = d.now()
	d.written = 0
	d.running = true
	return nil
}

// Pump generates the samples implied by the elapsed time since Start, in
// whole periods. Call it from the host's poll loop before reading views.
func (d *ClockedWaveformDevice) Pump() {
	if !d.running {
		return
	}

	elapsed := d.now().Sub(d.epoch)
	expected := int(elapsed.Seconds() * float64(d.gen.sampleRate))

	for d.written+d.periodSize <= expected {
		d.ring.Write(d.gen.next())
		d.written += d.periodSize
	}
}

// Stop halts generation; Pump becomes a no-op until the next Start.
func (d *ClockedWaveformDevice) Stop() {
	d.running = false
}

// Close stops the clock and disposes the backend.
func (d *ClockedWaveformDevice) Close() error {
	d.Stop()
	d.ring.Dispose()
	return nil
}
