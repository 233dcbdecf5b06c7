package taglib

import "errors"

var (
	// ErrInvalidFileName reports a path that cannot be passed to the native
	// library (it contains a NUL byte). No native call is made.
	ErrInvalidFileName = errors.New("taglib: invalid file name")

	// ErrInvalidFile reports that the native library could not open the file
	// or did not recognize its container.
	ErrInvalidFile = errors.New("taglib: invalid or unrecognized file")

	// ErrNoTag reports an opened file without an available tag container.
	ErrNoTag = errors.New("taglib: no available tag")

	// ErrNoAudioProperties reports an opened file whose audio properties
	// could not be read.
	ErrNoAudioProperties = errors.New("taglib: no available audio properties")

	// ErrClosed is returned by operations on a closed File or on views
	// derived from it.
	ErrClosed = errors.New("taglib: file already closed")

	// ErrInvalidString reports a tag value containing a NUL byte.
	ErrInvalidString = errors.New("taglib: string contains NUL byte")

	// ErrInvalidFileType reports a FileType outside the known set.
	ErrInvalidFileType = errors.New("taglib: invalid file type")

	// ErrSaveFailed reports that the native save returned false. TagLib
	// gives no further detail.
	ErrSaveFailed = errors.New("taglib: save failed")

	// ErrNotBuilt reports a binary built without the native backend.
	ErrNotBuilt = errors.New("taglib: native bindings not built")
)
