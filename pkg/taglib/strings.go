package taglib

import (
	"fmt"
	"sync"
)

// ID3v2Encoding selects the text encoding TagLib uses for new ID3v2 frames.
type ID3v2Encoding int

const (
	ID3v2Latin1 ID3v2Encoding = iota
	ID3v2UTF16
	ID3v2UTF16BE
	ID3v2UTF8
)

func (e ID3v2Encoding) String() string {
	switch e {
	case ID3v2Latin1:
		return "Latin1"
	case ID3v2UTF16:
		return "UTF16"
	case ID3v2UTF16BE:
		return "UTF16BE"
	case ID3v2UTF8:
		return "UTF8"
	default:
		return fmt.Sprintf("ID3v2Encoding(%d)", int(e))
	}
}

var (
	settingsMu     sync.Mutex
	stringsUnicode = true
)

// SetStringsUnicode chooses whether TagLib converts tag strings as UTF-8
// (true, the initial setting) or Latin-1. The setting is global to the
// process and applies to every conversion after the call; there is no
// per-file override. Callers that toggle it while other goroutines read or
// write tags must serialize those themselves.
func SetStringsUnicode(enabled bool) {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	native.setStringsUnicode(enabled)
	stringsUnicode = enabled
}

// StringsUnicode reports the last value passed to SetStringsUnicode.
func StringsUnicode() bool {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	return stringsUnicode
}

// SetID3v2DefaultTextEncoding sets the encoding of ID3v2 frames TagLib
// writes from now on. Like SetStringsUnicode it is process-wide.
func SetID3v2DefaultTextEncoding(enc ID3v2Encoding) error {
	if enc < ID3v2Latin1 || enc > ID3v2UTF8 {
		return fmt.Errorf("taglib: invalid ID3v2 encoding %d", int(enc))
	}

	settingsMu.Lock()
	defer settingsMu.Unlock()

	native.setID3v2DefaultTextEncoding(enc)
	return nil
}
