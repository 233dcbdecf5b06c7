package taglib

import (
	"runtime"

	"github.com/ebassi/taglib-go/pkg/taglib/logging"
)

// Option configures Open, ReadFile and ReadAll.
type Option func(*options)

type options struct {
	fileType    FileType
	hasType     bool
	resolve     func(path string) (FileType, bool)
	logger      logging.Logger
	concurrency int
}

func buildOptions(opts []Option) options {
	o := options{concurrency: runtime.NumCPU()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = logging.New(nil)
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}
	return o
}

// WithFileType opens the file as ft instead of detecting the type from the
// file extension. It takes precedence over WithFileTypeResolver.
func WithFileType(ft FileType) Option {
	return func(o *options) {
		o.fileType = ft
		o.hasType = true
	}
}

// WithFileTypeResolver consults fn for every path. When fn reports false
// the type is detected by TagLib.
func WithFileTypeResolver(fn func(path string) (FileType, bool)) Option {
	return func(o *options) {
		o.resolve = fn
	}
}

// WithLogger sets the logger for native failures. The default binds to
// slog.Default().
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithConcurrency bounds the number of files ReadAll works on at once. The
// default is runtime.NumCPU(). Native calls are serialized regardless.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// typeFor returns the explicit type for path, if any.
func (o options) typeFor(path string) (FileType, bool) {
	if o.hasType {
		return o.fileType, true
	}
	if o.resolve != nil {
		return o.resolve(path)
	}
	return 0, false
}
