// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	ErrUnknownChannel   = errors.New("channel not provided by device")
	ErrUnknownWaveform  = errors.New("unknown waveform type")
	ErrUnknownDevice    = errors.New("unknown device type")
	ErrAlreadyStarted   = errors.New("device already started")
	ErrEmptySource      = errors.New("source produced no samples")
	ErrMissingFilePath  = errors.New("file device requires a path")
	ErrInvalidFrequency = errors.New("frequency must be positive")
)
