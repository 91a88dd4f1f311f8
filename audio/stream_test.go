// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"testing"

	"github.com/zokrezyl/ymery/audio"
	"github.com/zokrezyl/ymery/internal/audiotest"
)

func TestReadAllDrainsSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		frames   int
	}{
		{name: "mono", channels: 1, frames: 1000},
		{name: "stereo", channels: 2, frames: 999},
		{name: "quad", channels: 4, frames: 4096},
		{name: "empty", channels: 1, frames: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewConstantSource(48000, tt.channels, tt.frames, 0.5)

			all, err := audio.ReadAll(src)
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if len(all) != tt.frames*tt.channels {
				t.Errorf("ReadAll returned %d samples, want %d", len(all), tt.frames*tt.channels)
			}
			for i, s := range all {
				if s != 0.5 {
					t.Fatalf("sample %d = %v, want 0.5", i, s)
				}
			}
		})
	}
}

func TestSplitChannels(t *testing.T) {
	t.Parallel()

	// Interleaved ramp: channel c frame f carries f*channels+c.
	src := audiotest.NewRampSource(48000, 2, 8, 1)
	interleaved, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	channels, err := audio.SplitChannels(interleaved, 2)
	if err != nil {
		t.Fatalf("SplitChannels failed: %v", err)
	}
	if len(channels) != 2 {
		t.Fatalf("SplitChannels returned %d channels, want 2", len(channels))
	}

	for c := range channels {
		if len(channels[c]) != 8 {
			t.Fatalf("channel %d has %d frames, want 8", c, len(channels[c]))
		}
		for f, s := range channels[c] {
			if want := float32(f*2 + c); s != want {
				t.Errorf("channel %d frame %d = %v, want %v", c, f, s, want)
			}
		}
	}
}

func TestSplitChannelsGeneric(t *testing.T) {
	t.Parallel()

	interleaved := []float32{0, 1, 2, 3, 4, 5, 6, 7, 8} // 3 frames of 3 + 0 leftover
	channels, err := audio.SplitChannels(interleaved, 3)
	if err != nil {
		t.Fatalf("SplitChannels failed: %v", err)
	}

	want := [][]float32{{0, 3, 6}, {1, 4, 7}, {2, 5, 8}}
	for c := range want {
		for f := range want[c] {
			if channels[c][f] != want[c][f] {
				t.Errorf("channel %d frame %d = %v, want %v", c, f, channels[c][f], want[c][f])
			}
		}
	}
}

func TestSplitChannelsDropsPartialFrame(t *testing.T) {
	t.Parallel()

	channels, err := audio.SplitChannels([]float32{1, 2, 3, 4, 5}, 2)
	if err != nil {
		t.Fatalf("SplitChannels failed: %v", err)
	}
	if len(channels[0]) != 2 || len(channels[1]) != 2 {
		t.Errorf("channel lengths = %d, %d; want 2, 2", len(channels[0]), len(channels[1]))
	}
}

func TestSplitChannelsMonoCopies(t *testing.T) {
	t.Parallel()

	in := []float32{1, 2, 3}
	channels, err := audio.SplitChannels(in, 1)
	if err != nil {
		t.Fatalf("SplitChannels failed: %v", err)
	}

	in[0] = 99
	if channels[0][0] != 1 {
		t.Error("mono split aliases the input slice")
	}
}

func TestSplitChannelsInvalidCount(t *testing.T) {
	t.Parallel()

	if _, err := audio.SplitChannels([]float32{1, 2}, 0); !errors.Is(err, audio.ErrInvalidChannelCount) {
		t.Errorf("SplitChannels(.., 0) = %v, want ErrInvalidChannelCount", err)
	}
}
