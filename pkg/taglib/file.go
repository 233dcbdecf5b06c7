package taglib

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/ebassi/taglib-go/pkg/taglib/logging"
)

// File is an open audio file. It owns one native handle, which is released
// by Close. A File is safe for use by multiple goroutines; native calls are
// serialized.
//
// Close must be called exactly once. A finalizer releases handles leaked by
// callers, but the release time is then up to the garbage collector.
type File struct {
	path string
	log  logging.Logger

	mu     sync.Mutex
	raw    nativeFile
	closed bool
}

// Open opens path, letting TagLib pick the file type from its extension
// unless WithFileType or WithFileTypeResolver says otherwise.
//
// Open fails with ErrInvalidFileName when path contains a NUL byte, and with
// ErrInvalidFile when TagLib cannot open, recognize or parse the file. A
// returned File is always valid at the time of the call.
func Open(path string, opts ...Option) (*File, error) {
	return openFile(path, buildOptions(opts))
}

// OpenAs opens path as the given file type. It fails like Open, and with
// ErrInvalidFileType when ft is not a known type.
func OpenAs(path string, ft FileType, opts ...Option) (*File, error) {
	return Open(path, append(opts[:len(opts):len(opts)], WithFileType(ft))...)
}

func openFile(path string, o options) (*File, error) {
	if strings.IndexByte(path, 0) >= 0 {
		return nil, fmt.Errorf("open %q: %w", path, ErrInvalidFileName)
	}
	if !native.available() {
		return nil, fmt.Errorf("open %q: %w", path, ErrNotBuilt)
	}

	var raw nativeFile
	if ft, ok := o.typeFor(path); ok {
		if !ft.Valid() {
			return nil, fmt.Errorf("open %q: %w: %d", path, ErrInvalidFileType, int(ft))
		}
		raw = native.openType(path, ft)
	} else {
		raw = native.open(path)
	}

	log := o.logger.With(logging.Path(path))
	if raw == nil {
		log.Debug(context.Background(), "native open failed")
		return nil, fmt.Errorf("open %q: %w", path, ErrInvalidFile)
	}
	// Depending on the TagLib version a file that exists but cannot be
	// parsed comes back as a non-null handle flagged invalid.
	if !raw.IsValid() {
		raw.Free()
		log.Debug(context.Background(), "native handle invalid")
		return nil, fmt.Errorf("open %q: %w", path, ErrInvalidFile)
	}

	f := &File{path: path, log: log, raw: raw}
	runtime.SetFinalizer(f, (*File).finalize)
	return f, nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// with runs fn while holding f's lock, unless f is closed. It reports
// whether fn ran.
func (f *File) with(fn func(raw nativeFile)) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return false
	}
	fn(f.raw)
	return true
}

// IsValid reports TagLib's validity flag for the file. It is false after
// Close.
func (f *File) IsValid() bool {
	var valid bool
	f.with(func(raw nativeFile) { valid = raw.IsValid() })
	return valid
}

// Tag returns a view of the file's tag. It fails with ErrNoTag when TagLib
// reports no tag container.
func (f *File) Tag() (*Tag, error) {
	var t nativeTag
	if !f.with(func(raw nativeFile) { t = raw.tag() }) {
		return nil, ErrClosed
	}
	if t == nil {
		return nil, ErrNoTag
	}
	return &Tag{file: f, raw: t}, nil
}

// AudioProperties returns a view of the stream's audio properties. It fails
// with ErrNoAudioProperties when TagLib could not read them.
func (f *File) AudioProperties() (*AudioProperties, error) {
	var p nativeProperties
	if !f.with(func(raw nativeFile) { p = raw.audioProperties() }) {
		return nil, ErrClosed
	}
	if p == nil {
		return nil, ErrNoAudioProperties
	}
	return &AudioProperties{file: f, raw: p}, nil
}

// Save writes the staged tag changes to disk.
//
// TagLib only reports whether the write succeeded, so every failure is
// ErrSaveFailed. The write is not atomic: after a failure the file may be
// left partially rewritten, in whatever state TagLib leaves it.
func (f *File) Save() error {
	var ok bool
	if !f.with(func(raw nativeFile) { ok = raw.Save() }) {
		return ErrClosed
	}
	if !ok {
		f.log.Debug(context.Background(), "native save failed")
		return fmt.Errorf("save %q: %w", f.path, ErrSaveFailed)
	}
	return nil
}

// Close releases the native handle. Views derived from f stop working. A
// second Close returns ErrClosed and does nothing.
func (f *File) Close() error {
	if f == nil {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}
	f.raw.Free()
	f.raw = nil
	f.closed = true
	runtime.SetFinalizer(f, nil)
	return nil
}

func (f *File) finalize() {
	if f.Close() == nil {
		f.log.Warn(context.Background(), "file garbage collected without Close")
	}
}
