package taglib

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ebassi/taglib-go/pkg/taglib/internal/backend"
	"github.com/ebassi/taglib-go/pkg/taglib/logging"
)

// fakeDriver stands in for TagLib. Paths not registered in files fail to
// open, like unreadable or unrecognized files do.
type fakeDriver struct {
	unavailable bool
	files       map[string]*fakeFile

	mu        sync.Mutex
	opens     int
	types     []FileType
	unicode   []bool
	encodings []ID3v2Encoding
}

func (d *fakeDriver) available() bool { return !d.unavailable }

func (d *fakeDriver) open(path string) nativeFile {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.opens++
	if f, ok := d.files[path]; ok {
		return f
	}
	return nil
}

func (d *fakeDriver) openType(path string, ft FileType) nativeFile {
	d.mu.Lock()
	d.types = append(d.types, ft)
	d.mu.Unlock()

	return d.open(path)
}

func (d *fakeDriver) setStringsUnicode(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.unicode = append(d.unicode, enabled)
}

func (d *fakeDriver) setID3v2DefaultTextEncoding(enc ID3v2Encoding) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.encodings = append(d.encodings, enc)
}

func (d *fakeDriver) openCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opens
}

type fakeFile struct {
	invalid bool
	saveErr bool
	tagv    *fakeTag
	props   *fakeProps

	frees atomic.Int32
	saves atomic.Int32
}

func (f *fakeFile) IsValid() bool { return !f.invalid }

func (f *fakeFile) Free() { f.frees.Add(1) }

func (f *fakeFile) Save() bool {
	f.saves.Add(1)
	return !f.saveErr
}

func (f *fakeFile) tag() nativeTag {
	if f.tagv == nil {
		return nil
	}
	return f.tagv
}

func (f *fakeFile) audioProperties() nativeProperties {
	if f.props == nil {
		return nil
	}
	return f.props
}

type fakeTag struct {
	text   map[backend.TagField]string
	number map[backend.NumberField]uint
}

func newFakeTag() *fakeTag {
	return &fakeTag{
		text:   map[backend.TagField]string{},
		number: map[backend.NumberField]uint{},
	}
}

func (t *fakeTag) Text(field backend.TagField) string { return t.text[field] }

func (t *fakeTag) SetText(field backend.TagField, value string) { t.text[field] = value }

func (t *fakeTag) Number(field backend.NumberField) uint { return t.number[field] }

func (t *fakeTag) SetNumber(field backend.NumberField, value uint) { t.number[field] = value }

type fakeProps map[backend.Property]int

func (p *fakeProps) Int(prop backend.Property) int { return (*p)[prop] }

func withDriver(t *testing.T, d *fakeDriver) {
	t.Helper()
	old := native
	native = d
	t.Cleanup(func() { native = old })
}

// quiet keeps debug records about expected failures out of test output.
var quiet = WithLogger(logging.Discard())
