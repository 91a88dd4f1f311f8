// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio via github.com/hajimehoshi/go-mp3.
//
// The decoder always produces stereo interleaved samples, since go-mp3
// upmixes mono streams to two channels.
package mp3
