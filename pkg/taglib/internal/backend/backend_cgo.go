//go:build cgo && !notaglib

package backend

/*
#cgo pkg-config: taglib_c
#include <stdlib.h>
#include <tag_c.h>
*/
import "C"

import (
	"sync"
	"unsafe"
)

var mu sync.Mutex

func init() {
	mu.Lock()
	defer mu.Unlock()

	// Strings are copied and freed one by one instead of being swept by
	// taglib_tag_free_strings.
	C.taglib_set_string_management_enabled(0)
}

// Available reports whether the native library is linked in.
func Available() bool { return true }

// File wraps a TagLib_File. The pointer is never nil for a value returned by
// FileNew or FileNewType.
type File struct {
	ptr *C.TagLib_File
}

// Tag wraps a TagLib_Tag owned by its File.
type Tag struct {
	ptr *C.TagLib_Tag
}

// Properties wraps a TagLib_AudioProperties owned by its File.
type Properties struct {
	ptr *C.TagLib_AudioProperties
}

// FileNew calls taglib_file_new. It returns nil when the library cannot open
// or recognize path. path must not contain a NUL byte.
func FileNew(path string) *File {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))

	mu.Lock()
	defer mu.Unlock()

	fp := C.taglib_file_new(cs)
	if fp == nil {
		return nil
	}
	return &File{ptr: fp}
}

// FileNewType calls taglib_file_new_type.
func FileNewType(path string, ft FileType) *File {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))

	mu.Lock()
	defer mu.Unlock()

	fp := C.taglib_file_new_type(cs, C.TagLib_File_Type(ft))
	if fp == nil {
		return nil
	}
	return &File{ptr: fp}
}

// IsValid calls taglib_file_is_valid.
func (f *File) IsValid() bool {
	mu.Lock()
	defer mu.Unlock()

	return C.taglib_file_is_valid(f.ptr) != 0
}

// Free releases the native file. Tags and properties obtained from f are
// invalid afterwards.
func (f *File) Free() {
	mu.Lock()
	defer mu.Unlock()

	C.taglib_file_free(f.ptr)
	f.ptr = nil
}

// Save calls taglib_file_save.
func (f *File) Save() bool {
	mu.Lock()
	defer mu.Unlock()

	return C.taglib_file_save(f.ptr) != 0
}

// Tag returns nil when the file has no tag container.
func (f *File) Tag() *Tag {
	mu.Lock()
	defer mu.Unlock()

	t := C.taglib_file_tag(f.ptr)
	if t == nil {
		return nil
	}
	return &Tag{ptr: t}
}

// AudioProperties returns nil when the stream properties could not be read.
func (f *File) AudioProperties() *Properties {
	mu.Lock()
	defer mu.Unlock()

	p := C.taglib_file_audioproperties(f.ptr)
	if p == nil {
		return nil
	}
	return &Properties{ptr: p}
}

func convertAndFree(cs *C.char) string {
	if cs == nil {
		return ""
	}

	defer C.free(unsafe.Pointer(cs))
	return C.GoString(cs)
}

// Text returns the field value copied into Go memory, or "" when unset.
func (t *Tag) Text(field TagField) string {
	mu.Lock()
	defer mu.Unlock()

	switch field {
	case Title:
		return convertAndFree(C.taglib_tag_title(t.ptr))
	case Artist:
		return convertAndFree(C.taglib_tag_artist(t.ptr))
	case Album:
		return convertAndFree(C.taglib_tag_album(t.ptr))
	case Comment:
		return convertAndFree(C.taglib_tag_comment(t.ptr))
	case Genre:
		return convertAndFree(C.taglib_tag_genre(t.ptr))
	}
	return ""
}

// SetText stages value in the in-memory tag. value must not contain a NUL
// byte.
func (t *Tag) SetText(field TagField, value string) {
	cs := C.CString(value)
	defer C.free(unsafe.Pointer(cs))

	mu.Lock()
	defer mu.Unlock()

	switch field {
	case Title:
		C.taglib_tag_set_title(t.ptr, cs)
	case Artist:
		C.taglib_tag_set_artist(t.ptr, cs)
	case Album:
		C.taglib_tag_set_album(t.ptr, cs)
	case Comment:
		C.taglib_tag_set_comment(t.ptr, cs)
	case Genre:
		C.taglib_tag_set_genre(t.ptr, cs)
	}
}

// Number returns the field value, 0 when unset.
func (t *Tag) Number(field NumberField) uint {
	mu.Lock()
	defer mu.Unlock()

	switch field {
	case Year:
		return uint(C.taglib_tag_year(t.ptr))
	case Track:
		return uint(C.taglib_tag_track(t.ptr))
	}
	return 0
}

// SetNumber stages value in the in-memory tag. 0 clears the field.
func (t *Tag) SetNumber(field NumberField, value uint) {
	mu.Lock()
	defer mu.Unlock()

	switch field {
	case Year:
		C.taglib_tag_set_year(t.ptr, C.uint(value))
	case Track:
		C.taglib_tag_set_track(t.ptr, C.uint(value))
	}
}

// Int returns the requested audio property.
func (p *Properties) Int(prop Property) int {
	mu.Lock()
	defer mu.Unlock()

	switch prop {
	case Length:
		return int(C.taglib_audioproperties_length(p.ptr))
	case Bitrate:
		return int(C.taglib_audioproperties_bitrate(p.ptr))
	case SampleRate:
		return int(C.taglib_audioproperties_samplerate(p.ptr))
	case Channels:
		return int(C.taglib_audioproperties_channels(p.ptr))
	}
	return 0
}

// SetStringsUnicode calls taglib_set_strings_unicode. The setting is global
// to the process.
func SetStringsUnicode(enabled bool) {
	mu.Lock()
	defer mu.Unlock()

	C.taglib_set_strings_unicode(cbool(enabled))
}

// SetID3v2DefaultTextEncoding calls taglib_id3v2_set_default_text_encoding.
func SetID3v2DefaultTextEncoding(enc ID3v2Encoding) {
	mu.Lock()
	defer mu.Unlock()

	C.taglib_id3v2_set_default_text_encoding(C.TagLib_ID3v2_Encoding(enc))
}

// tag_c.h defines BOOL as a macro for int.
func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
