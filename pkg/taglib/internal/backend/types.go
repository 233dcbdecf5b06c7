package backend

// FileType mirrors TagLib_File_Type. The values are the native enum order.
type FileType int

const (
	FileMPEG FileType = iota
	FileOggVorbis
	FileFLAC
	FileMPC
	FileOggFLAC
	FileWavPack
	FileSpeex
	FileTrueAudio
	FileMP4
	FileASF
)

// TagField selects one of the string fields of a TagLib_Tag.
type TagField int

const (
	Title TagField = iota
	Artist
	Album
	Comment
	Genre
)

func (f TagField) String() string {
	switch f {
	case Title:
		return "title"
	case Artist:
		return "artist"
	case Album:
		return "album"
	case Comment:
		return "comment"
	case Genre:
		return "genre"
	default:
		return "unknown"
	}
}

// NumberField selects one of the unsigned fields of a TagLib_Tag. The native
// library reports 0 when the field is unset.
type NumberField int

const (
	Year NumberField = iota
	Track
)

func (f NumberField) String() string {
	switch f {
	case Year:
		return "year"
	case Track:
		return "track"
	default:
		return "unknown"
	}
}

// Property selects one of the TagLib_AudioProperties accessors.
type Property int

const (
	Length Property = iota
	Bitrate
	SampleRate
	Channels
)

// ID3v2Encoding mirrors TagLib_ID3v2_Encoding.
type ID3v2Encoding int

const (
	ID3v2Latin1 ID3v2Encoding = iota
	ID3v2UTF16
	ID3v2UTF16BE
	ID3v2UTF8
)
