//go:build cgo && !notaglib

package taglib_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/require"
)

// MPEG-1 Layer III, 128 kb/s, 44.1 kHz, no CRC, no padding: 417 bytes.
var mp3FrameHeader = []byte{0xFF, 0xFB, 0x90, 0x00}

const (
	mp3FrameSize  = 417
	mp3FrameCount = 100
)

// writeMP3 writes a silent MP3 stream to dir/name, preceded by an ID3v2 tag
// carrying fields when fields is not nil.
func writeMP3(t *testing.T, dir, name string, fields map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	if fields != nil {
		tag := id3v2.NewEmptyTag()
		tag.SetDefaultEncoding(id3v2.EncodingUTF8)
		for id, value := range fields {
			tag.AddTextFrame(id, tag.DefaultEncoding(), value)
		}
		_, err := tag.WriteTo(&buf)
		require.NoError(t, err)
	}

	frame := make([]byte, mp3FrameSize)
	copy(frame, mp3FrameHeader)
	for range mp3FrameCount {
		buf.Write(frame)
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

// fixtureMP3 writes the standard tagged fixture.
func fixtureMP3(t *testing.T, name string) string {
	t.Helper()
	return writeMP3(t, t.TempDir(), name, map[string]string{
		"TIT2": "Title",
		"TPE1": "Artist",
		"TALB": "Album",
		"TDRC": "2015",
	})
}
