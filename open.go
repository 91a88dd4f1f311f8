// SPDX-License-Identifier: EPL-2.0

package ymery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zokrezyl/ymery/audio"
	"github.com/zokrezyl/ymery/device"
	"github.com/zokrezyl/ymery/formats/aiff"
	"github.com/zokrezyl/ymery/formats/mp3"
	"github.com/zokrezyl/ymery/formats/vorbis"
	"github.com/zokrezyl/ymery/formats/wav"
)

// ErrUnsupportedFormat is returned when no decoder is registered for a file's
// extension.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// DefaultRegistry returns a registry with every built-in decoder registered
// under its usual file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}

// OpenFile decodes the audio file at path into a file device, picking the
// decoder by extension. The whole stream is decoded up front; the returned
// device serves per-channel views over the static result.
func OpenFile(path string) (*device.FileDevice, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	dec, ok := DefaultRegistry().Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return device.NewFileDevice(src)
}
