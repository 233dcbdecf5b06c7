//go:build !cgo || notaglib

package taglib

import (
	"errors"
	"testing"
)

func TestOpenReturnsStubError(t *testing.T) {
	if NativeAvailable() {
		t.Fatal("stub build reports native backend available")
	}

	f, err := Open("song.mp3", quiet)
	if !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("unexpected error from Open: %v", err)
	}
	if f != nil {
		t.Fatalf("expected nil file, got %+v", f)
	}
}
