// Package taglib exposes TagLib's C interface as a safe Go API.
//
// A File owns one native handle and must be closed exactly once. Tag and
// AudioProperties are views borrowed from their File: they hold no native
// resource of their own and stop working once the File is closed.
//
//	f, err := taglib.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	tag, err := f.Tag()
//	if err != nil {
//		return err
//	}
//	if artist, ok := tag.Artist(); ok {
//		fmt.Println(artist)
//	}
//
// Absent values are reported explicitly. TagLib signals "unset" with an
// empty string for text fields and 0 for year and track; the accessors turn
// both into ok == false.
//
// Every native call is serialized behind one process-wide lock, because
// TagLib is not re-entrant and its string settings (SetStringsUnicode,
// SetID3v2DefaultTextEncoding) are global.
//
// Binaries built without cgo, or with -tags notaglib, link a stub backend;
// Open then fails with ErrNotBuilt.
package taglib
