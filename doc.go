// SPDX-License-Identifier: EPL-2.0

// Package ymery mediates sample buffers between producers and consumers.
//
// Producers (synthetic waveform generators, decoded audio files) write into
// backends: a double-depth ring buffer for live streams, a static file buffer
// for decoded streams. Consumers open lightweight views through a mediator,
// which sizes the backend to the union of open view demands. Views read
// contiguous windows under the backend's lock, or skip a frame with TryData
// when the producer holds it.
//
// The subpackages carry the machinery: buffer holds the backends, mediators
// and views; device wraps them into sources; formats/* decode wav, aiff, mp3
// and ogg/vorbis files into sample streams. This package adds the convenience
// surface for the common case of opening an audio file by path.
package ymery
