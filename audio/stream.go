// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src and returns every interleaved sample it produced.
func ReadAll(src Source) ([]float32, error) {
	buf := make([]float32, 4096)
	var all []float32

	for {
		n, err := src.ReadSamples(buf)
		all = append(all, buf[:n]...)

		if err == io.EOF {
			return all, nil
		}
		if err != nil {
			return all, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			// A well-behaved source never returns (0, nil); stop rather
			// than spin.
			return all, nil
		}
	}
}

// SplitChannels deinterleaves samples into one contiguous slice per channel,
// the shape a per-channel buffer backend expects. Trailing samples that do
// not form a complete frame are dropped.
func SplitChannels(interleaved []float32, channels int) ([][]float32, error) {
	if channels < 1 {
		return nil, ErrInvalidChannelCount
	}
	if channels == 1 {
		out := make([]float32, len(interleaved))
		copy(out, interleaved)
		return [][]float32{out}, nil
	}

	frames := len(interleaved) / channels
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
	}

	switch channels {
	case 2: // Stereo (most common)
		for f := range frames {
			idx := f << 1
			out[0][f] = interleaved[idx]
			out[1][f] = interleaved[idx+1]
		}
	default:
		for f := range frames {
			base := f * channels
			for c := range channels {
				out[c][f] = interleaved[base+c]
			}
		}
	}

	return out, nil
}
