// SPDX-License-Identifier: EPL-2.0

// Package audio provides the stream primitives the rest of the module builds
// on.
//
// # Source Interface
//
// The Source interface is implemented by every format decoder:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]; ReadSamples returns
// io.EOF when the stream is finished.
//
// # Format Registry
//
// The registry allows dynamic decoder registration keyed by file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Channel Splitting
//
// Buffer backends store one channel per buffer, so decoded interleaved
// streams get split first:
//
//	samples, _ := audio.ReadAll(src)
//	channels, _ := audio.SplitChannels(samples, src.Channels())
//
// Each element of channels is a contiguous single-channel stream ready to be
// handed to a buffer backend.
package audio
