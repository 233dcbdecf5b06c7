//go:build !cgo || notaglib

package backend

// Stub implementations for builds without cgo or with -tags notaglib.
// FileNew and FileNewType always return nil; callers check Available first.

// Available reports whether the native library is linked in.
func Available() bool { return false }

type File struct{}

type Tag struct{}

type Properties struct{}

func FileNew(string) *File { return nil }

func FileNewType(string, FileType) *File { return nil }

func (*File) IsValid() bool { return false }

func (*File) Free() {}

func (*File) Save() bool { return false }

func (*File) Tag() *Tag { return nil }

func (*File) AudioProperties() *Properties { return nil }

func (*Tag) Text(TagField) string { return "" }

func (*Tag) SetText(TagField, string) {}

func (*Tag) Number(NumberField) uint { return 0 }

func (*Tag) SetNumber(NumberField, uint) {}

func (*Properties) Int(Property) int { return 0 }

func SetStringsUnicode(bool) {}

func SetID3v2DefaultTextEncoding(ID3v2Encoding) {}
