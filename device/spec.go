// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zokrezyl/ymery/audio"
)

// Spec is a declarative device description, the shape a YAML layout layer
// hands to the backend when it wants a channel source.
type Spec struct {
	// Type is "waveform", "clocked-waveform" or "file".
	Type string `yaml:"type"`

	// Waveform devices.
	Waveform   string  `yaml:"waveform"`
	SampleRate int     `yaml:"sample_rate"`
	Frequency  float64 `yaml:"frequency"`
	PeriodSize int     `yaml:"period_size"`

	// File devices.
	Path string `yaml:"path"`
}

// LoadSpec parses a YAML device description.
func LoadSpec(r io.Reader) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &spec, nil
}

// Build instantiates the described device. File devices pick their decoder
// from registry by the path's extension.
func (s *Spec) Build(registry *audio.Registry) (Device, error) {
	switch s.Type {
	case "waveform":
		return NewWaveformDevice(WaveType(s.Waveform), s.sampleRateOrDefault(), s.Frequency, s.PeriodSize)

	case "clocked-waveform":
		return NewClockedWaveformDevice(WaveType(s.Waveform), s.sampleRateOrDefault(), s.Frequency, s.PeriodSize)

	case "file":
		if s.Path == "" {
			return nil, ErrMissingFilePath
		}

		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(s.Path)), ".")
		dec, ok := registry.Get(ext)
		if !ok {
			return nil, fmt.Errorf("%w: no decoder for %q", ErrUnknownDevice, ext)
		}

		f, err := os.Open(s.Path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", s.Path, err)
		}
		defer f.Close()

		src, err := dec.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", s.Path, err)
		}
		return NewFileDevice(src)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDevice, s.Type)
	}
}

func (s *Spec) sampleRateOrDefault() int {
	if s.SampleRate > 0 {
		return s.SampleRate
	}
	return 48000
}
