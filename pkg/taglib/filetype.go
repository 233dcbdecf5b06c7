package taglib

import (
	"fmt"
	"strings"

	"github.com/ebassi/taglib-go/pkg/taglib/internal/backend"
)

// FileType selects a container/codec family explicitly, bypassing TagLib's
// detection by file extension.
type FileType int

const (
	MPEG      = FileType(backend.FileMPEG)
	OggVorbis = FileType(backend.FileOggVorbis)
	FLAC      = FileType(backend.FileFLAC)
	MPC       = FileType(backend.FileMPC)
	OggFLAC   = FileType(backend.FileOggFLAC)
	WavPack   = FileType(backend.FileWavPack)
	Speex     = FileType(backend.FileSpeex)
	TrueAudio = FileType(backend.FileTrueAudio)
	MP4       = FileType(backend.FileMP4)
	ASF       = FileType(backend.FileASF)
)

var fileTypeNames = [...]string{
	MPEG:      "MPEG",
	OggVorbis: "OggVorbis",
	FLAC:      "FLAC",
	MPC:       "MPC",
	OggFLAC:   "OggFLAC",
	WavPack:   "WavPack",
	Speex:     "Speex",
	TrueAudio: "TrueAudio",
	MP4:       "MP4",
	ASF:       "ASF",
}

// Common extension-style spellings accepted by ParseFileType.
var fileTypeAliases = map[string]FileType{
	"mp3": MPEG,
	"ogg": OggVorbis,
	"oga": OggFLAC,
	"wv":  WavPack,
	"spx": Speex,
	"tta": TrueAudio,
	"m4a": MP4,
	"wma": ASF,
}

// FileTypes returns every known FileType in native enum order.
func FileTypes() []FileType {
	out := make([]FileType, len(fileTypeNames))
	for i := range out {
		out[i] = FileType(i)
	}
	return out
}

// Valid reports whether ft is one of the ten known types.
func (ft FileType) Valid() bool {
	return ft >= 0 && int(ft) < len(fileTypeNames)
}

func (ft FileType) String() string {
	if !ft.Valid() {
		return fmt.Sprintf("FileType(%d)", int(ft))
	}
	return fileTypeNames[ft]
}

// ParseFileType accepts a FileType name ("FLAC", "OggVorbis", ...) or a
// common extension ("mp3", "m4a", ...), case-insensitively.
func ParseFileType(s string) (FileType, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	for i, n := range fileTypeNames {
		if strings.ToLower(n) == name {
			return FileType(i), nil
		}
	}
	if ft, ok := fileTypeAliases[name]; ok {
		return ft, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFileType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (ft FileType) MarshalText() ([]byte, error) {
	if !ft.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFileType, int(ft))
	}
	return []byte(ft.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ft *FileType) UnmarshalText(text []byte) error {
	parsed, err := ParseFileType(string(text))
	if err != nil {
		return err
	}
	*ft = parsed
	return nil
}
