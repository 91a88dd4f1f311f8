// SPDX-License-Identifier: EPL-2.0

package device

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

// TestGeneratorPhaseContinuity: consecutive chunks must form one continuous
// waveform, identical to generating the same span in a single pass.
func TestGeneratorPhaseContinuity(t *testing.T) {
	t.Parallel()

	for _, waveform := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		t.Run(string(waveform), func(t *testing.T) {
			t.Parallel()

			const period = 64
			chunked, err := newGenerator(waveform, 48000, 440, period)
			if err != nil {
				t.Fatalf("newGenerator failed: %v", err)
			}
			whole, err := newGenerator(waveform, 48000, 440, 4*period)
			if err != nil {
				t.Fatalf("newGenerator failed: %v", err)
			}

			var got []float32
			for range 4 {
				got = append(got, chunked.next()...)
			}
			want := whole.next()

			for i := range want {
				if math.Abs(float64(got[i]-want[i])) > 1e-5 {
					t.Fatalf("sample %d = %v, want %v (phase discontinuity)", i, got[i], want[i])
				}
			}
		})
	}
}

func TestGeneratorRange(t *testing.T) {
	t.Parallel()

	gen, err := newGenerator(WaveTriangle, 48000, 100, 1024)
	if err != nil {
		t.Fatalf("newGenerator failed: %v", err)
	}

	for range 10 {
		for i, s := range gen.next() {
			if s < -1 || s > 1 {
				t.Fatalf("sample %d = %v outside [-1, 1]", i, s)
			}
		}
	}
}

func TestNewWaveformDeviceValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewWaveformDevice("sawtooth", 48000, 440, 64); !errors.Is(err, ErrUnknownWaveform) {
		t.Errorf("unknown waveform error = %v, want ErrUnknownWaveform", err)
	}
	if _, err := NewWaveformDevice(WaveSine, 48000, 0, 64); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("zero frequency error = %v, want ErrInvalidFrequency", err)
	}
}

func TestWaveformDeviceOpen(t *testing.T) {
	t.Parallel()

	dev, err := NewWaveformDevice(WaveSine, 48000, 440, 64)
	if err != nil {
		t.Fatalf("NewWaveformDevice failed: %v", err)
	}
	defer dev.Close()

	if dev.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", dev.Channels())
	}

	if _, err := dev.Open(1, Config{}); !errors.Is(err, ErrUnknownChannel) {
		t.Errorf("Open(1) = %v, want ErrUnknownChannel", err)
	}

	// Zero length means the whole currently available window.
	v, err := dev.Open(0, Config{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if v.Length() != dev.ring.Len() {
		t.Errorf("default view length = %d, want %d", v.Length(), dev.ring.Len())
	}

	// An explicit demand grows the backend.
	if _, err := dev.Open(0, Config{Length: 1000}); err != nil {
		t.Fatalf("Open(length=1000) failed: %v", err)
	}
	if got := dev.ring.Len(); got < 1000 {
		t.Errorf("backend length = %d after demanding view, want >= 1000", got)
	}
}

// TestWaveformDeviceProduces runs the real producer loop briefly and polls a
// view until data shows up.
func TestWaveformDeviceProduces(t *testing.T) {
	t.Parallel()

	dev, err := NewWaveformDevice(WaveSine, 48000, 440, 64)
	if err != nil {
		t.Fatalf("NewWaveformDevice failed: %v", err)
	}
	defer dev.Close()

	v, err := dev.Open(0, Config{Length: 128})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := dev.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := dev.Start(ctx); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start = %v, want ErrAlreadyStarted", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if data := v.CopyData(); len(data) > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("producer wrote no samples within the deadline")
}
