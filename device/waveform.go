// SPDX-License-Identifier: EPL-2.0

package device

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/zokrezyl/ymery/buffer"
)

// WaveType selects the shape a waveform device generates.
type WaveType string

const (
	WaveSine     WaveType = "sine"
	WaveSquare   WaveType = "square"
	WaveTriangle WaveType = "triangle"
)

// generator produces period-sized chunks of a waveform with phase continuity
// across chunks. Not safe for concurrent use; each device drives its own.
type generator struct {
	waveform   WaveType
	sampleRate int
	frequency  float64
	chunk      []float32
	phase      float64 // radians, kept in [0, 2π)
}

func newGenerator(waveform WaveType, sampleRate int, frequency float64, periodSize int) (*generator, error) {
	switch waveform {
	case WaveSine, WaveSquare, WaveTriangle:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWaveform, waveform)
	}
	if frequency <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrequency, frequency)
	}

	return &generator{
		waveform:   waveform,
		sampleRate: sampleRate,
		frequency:  frequency,
		chunk:      make([]float32, periodSize),
	}, nil
}

// next fills and returns the generator's chunk. The slice is reused between
// calls; the ring buffer copies it during Write.
func (g *generator) next() []float32 {
	inc := 2 * math.Pi * g.frequency / float64(g.sampleRate)

	for i := range g.chunk {
		p := g.phase + float64(i)*inc
		switch g.waveform {
		case WaveSine:
			g.chunk[i] = float32(math.Sin(p))
		case WaveSquare:
			if math.Sin(p) >= 0 {
				g.chunk[i] = 1
			} else {
				g.chunk[i] = -1
			}
		case WaveTriangle:
			// Normalized phase in [0, 1), folded into a -1..1 triangle.
			x := math.Mod(p/(2*math.Pi), 1)
			g.chunk[i] = float32(2*math.Abs(2*x-1) - 1)
		}
	}

	g.phase = math.Mod(g.phase+float64(len(g.chunk))*inc, 2*math.Pi)
	return g.chunk
}

// WaveformDevice is a synthetic single-channel signal source. Start launches
// a producer goroutine that writes one period per tick at the stream's
// real-time cadence; consumers poll views with TryData.
type WaveformDevice struct {
	*channelState

	gen        *generator
	periodSize int

	cancel context.CancelFunc
	done   chan struct{}
}

// NewWaveformDevice creates a waveform device. periodSize 0 selects the
// buffer package default.
func NewWaveformDevice(waveform WaveType, sampleRate int, frequency float64, periodSize int) (*WaveformDevice, error) {
	state := newChannelState(sampleRate, periodSize)

	gen, err := newGenerator(waveform, sampleRate, frequency, state.ring.PeriodSize())
	if err != nil {
		return nil, err
	}

	return &WaveformDevice{
		channelState: state,
		gen:          gen,
		periodSize:   state.ring.PeriodSize(),
	}, nil
}

// Open returns a view into the device's single channel.
func (d *WaveformDevice) Open(channel int, cfg Config) (*buffer.View, error) {
	return d.open(channel, cfg)
}

// Start launches the producer loop. It returns ErrAlreadyStarted if the loop
// is already running; cancel ctx or call Close to stop it.
func (d *WaveformDevice) Start(ctx context.Context) error {
	if d.cancel != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.done = make(chan struct{})

	period := time.Duration(float64(d.periodSize) / float64(d.gen.sampleRate) * float64(time.Second))
	ticker := time.NewTicker(period)

	go func() {
		defer func() {
			ticker.Stop()
			close(d.done)
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				d.ring.Write(d.gen.next())
			}
		}
	}()

	return nil
}

// Close stops the producer loop, waits for it to finish and disposes the
// backend.
func (d *WaveformDevice) Close() error {
	if d.cancel != nil {
		d.cancel()
		<-d.done
		d.cancel = nil
	}
	d.ring.Dispose()
	return nil
}
