package taglib

import "github.com/ebassi/taglib-go/pkg/taglib/internal/backend"

// driver is the seam between the public API and the native backend. Every
// sentinel (null handle, empty string, zero) crosses it unconverted; the
// public types convert them once.
type driver interface {
	available() bool
	open(path string) nativeFile
	openType(path string, ft FileType) nativeFile
	setStringsUnicode(enabled bool)
	setID3v2DefaultTextEncoding(enc ID3v2Encoding)
}

type nativeFile interface {
	IsValid() bool
	Free()
	Save() bool
	tag() nativeTag
	audioProperties() nativeProperties
}

type nativeTag interface {
	Text(field backend.TagField) string
	SetText(field backend.TagField, value string)
	Number(field backend.NumberField) uint
	SetNumber(field backend.NumberField, value uint)
}

type nativeProperties interface {
	Int(prop backend.Property) int
}

var native driver = cgoDriver{}

type cgoDriver struct{}

func (cgoDriver) available() bool { return backend.Available() }

func (cgoDriver) open(path string) nativeFile {
	return wrapFile(backend.FileNew(path))
}

func (cgoDriver) openType(path string, ft FileType) nativeFile {
	return wrapFile(backend.FileNewType(path, backend.FileType(ft)))
}

func (cgoDriver) setStringsUnicode(enabled bool) {
	backend.SetStringsUnicode(enabled)
}

func (cgoDriver) setID3v2DefaultTextEncoding(enc ID3v2Encoding) {
	backend.SetID3v2DefaultTextEncoding(backend.ID3v2Encoding(enc))
}

// cgoFile adapts *backend.File so that tag and audioProperties return
// interfaces. A nil backend pointer must become a nil interface, never a
// typed nil.
type cgoFile struct {
	*backend.File
}

func wrapFile(f *backend.File) nativeFile {
	if f == nil {
		return nil
	}
	return cgoFile{f}
}

func (f cgoFile) tag() nativeTag {
	t := f.File.Tag()
	if t == nil {
		return nil
	}
	return t
}

func (f cgoFile) audioProperties() nativeProperties {
	p := f.File.AudioProperties()
	if p == nil {
		return nil
	}
	return p
}
