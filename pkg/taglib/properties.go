package taglib

import (
	"time"

	"github.com/ebassi/taglib-go/pkg/taglib/internal/backend"
)

// AudioProperties is a read-only view of a stream's audio properties,
// borrowed from its File. After the File is closed every accessor returns 0.
type AudioProperties struct {
	file *File
	raw  nativeProperties
}

// Length returns the length of the stream in seconds.
func (p *AudioProperties) Length() int { return p.value(backend.Length) }

// Duration returns Length as a time.Duration.
func (p *AudioProperties) Duration() time.Duration {
	return time.Duration(p.Length()) * time.Second
}

// Bitrate returns the bit rate in kb/s. For variable bit rate streams this is
// the average or nominal rate.
func (p *AudioProperties) Bitrate() int { return p.value(backend.Bitrate) }

// SampleRate returns the sample rate in Hz.
func (p *AudioProperties) SampleRate() int { return p.value(backend.SampleRate) }

// Channels returns the number of audio channels.
func (p *AudioProperties) Channels() int { return p.value(backend.Channels) }

func (p *AudioProperties) value(prop backend.Property) int {
	var v int
	p.file.with(func(nativeFile) { v = p.raw.Int(prop) })
	return v
}

// Values returns a snapshot of every property.
func (p *AudioProperties) Values() PropertyValues {
	return PropertyValues{
		Length:     p.Length(),
		Bitrate:    p.Bitrate(),
		SampleRate: p.SampleRate(),
		Channels:   p.Channels(),
	}
}
