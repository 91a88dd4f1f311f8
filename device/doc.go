// SPDX-License-Identifier: EPL-2.0

// Package device connects sample sources to the buffer layer.
//
// A Device owns one backend buffer and one mediator per channel, constructed
// at device-open time. Consumers obtain views through Open:
//
//	dev, _ := device.NewWaveformDevice(device.WaveSine, 48000, 440, 1024)
//	dev.Start(ctx)
//	defer dev.Close()
//
//	view, _ := dev.Open(0, device.Config{Length: 4096})
//	defer view.Close()
//
// Three devices are provided:
//
//   - WaveformDevice: a synthetic signal source writing from its own
//     goroutine at the stream's real-time cadence.
//   - ClockedWaveformDevice: the cooperative variant for single-threaded
//     hosts; Pump generates whatever the elapsed wall-clock time implies.
//   - FileDevice: a static source decoded once, one file buffer per channel.
//
// Devices can also be described in YAML and built through Spec, which is how
// a declarative layout layer instantiates them.
package device
