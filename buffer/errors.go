// SPDX-License-Identifier: EPL-2.0

package buffer

import "errors"

var (
	// ErrNonZeroStart is returned by SetRange on a dynamic backend when the
	// requested start is not zero. Dynamic buffers do not support a sliding
	// window start.
	ErrNonZeroStart = errors.New("dynamic buffers require start=0")
	// ErrUnknownView is returned when closing a view that is not registered,
	// typically a double close.
	ErrUnknownView = errors.New("view not registered with mediator")
	// ErrBufferDisposed is returned when activating a backend whose storage
	// has been torn down.
	ErrBufferDisposed = errors.New("buffer disposed")
	// ErrViewClosed is returned by operations on a closed view.
	ErrViewClosed = errors.New("view closed")
)
