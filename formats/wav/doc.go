// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes PCM 16-bit WAV files via
// github.com/go-audio/wav.
//
// The Decoder returns an audio.Source producing normalized float32 samples:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// WritePCM16 is the inverse, writing interleaved normalized samples to a
// seekable writer:
//
//	err := wav.WritePCM16(file, 48000, 2, samples)
//
// Only 16-bit PCM is supported; other layouts fail with
// ErrOnlyPCM16Supported.
package wav
