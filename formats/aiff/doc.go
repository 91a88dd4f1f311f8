// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes PCM 16-bit AIFF audio via github.com/go-audio/aiff.
package aiff
