// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// mockOggReader simulates oggvorbis.Reader.
type mockOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(dst []float32) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}
	n := min(len(dst), len(m.samples)-m.offset)
	copy(dst, m.samples[m.offset:m.offset+n])
	m.offset += n
	return n, nil
}

func TestSourcePassThrough(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3},
	}
	src := &source{dec: mock, sampleRate: mock.sampleRate, channels: mock.channels}

	if src.SampleRate() != 48000 || src.Channels() != 2 {
		t.Errorf("metadata = (%d, %d), want (48000, 2)", src.SampleRate(), src.Channels())
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples failed: %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples returned %d, want 4", n)
	}
	for i, want := range []float32{0.1, -0.1, 0.2, -0.2} {
		if dst[i] != want {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want)
		}
	}

	// Drain the rest.
	n, err = src.ReadSamples(dst)
	if n != 2 {
		t.Fatalf("second ReadSamples returned %d, want 2", n)
	}
	if err != nil {
		t.Fatalf("second ReadSamples failed: %v", err)
	}

	if _, err := src.ReadSamples(dst); err != io.EOF {
		t.Errorf("drained source error = %v, want io.EOF", err)
	}
}

func TestSourceFrameAlignment(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{sampleRate: 48000, channels: 2, samples: make([]float32, 100)}
	src := &source{dec: mock, sampleRate: 48000, channels: 2}

	// An odd-length dst must still be fed whole frames.
	dst := make([]float32, 7)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples failed: %v", err)
	}
	if n != 6 {
		t.Errorf("ReadSamples returned %d, want 6 (3 whole frames)", n)
	}
}

func TestDecodeInvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an ogg stream"))); err == nil {
		t.Error("Decode(garbage) succeeded, want error")
	}
}
