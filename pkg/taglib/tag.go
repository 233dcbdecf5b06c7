package taglib

import (
	"fmt"
	"strings"

	"github.com/ebassi/taglib-go/pkg/taglib/internal/backend"
)

// Tag is a view of a file's basic tag fields, borrowed from its File. It is
// only usable while the File is open: after Close the getters report absent
// values and the setters return ErrClosed.
//
// Setters stage changes in memory. Nothing is written until File.Save.
// Values returned by the getters are copies and stay valid after Save or
// Close.
type Tag struct {
	file *File
	raw  nativeTag
}

// Title returns the track title. ok is false when the title is unset.
func (t *Tag) Title() (string, bool) { return t.text(backend.Title) }

// Artist returns the artist name. ok is false when the artist is unset.
func (t *Tag) Artist() (string, bool) { return t.text(backend.Artist) }

// Album returns the album name. ok is false when the album is unset.
func (t *Tag) Album() (string, bool) { return t.text(backend.Album) }

// Comment returns the track comment. ok is false when the comment is unset.
func (t *Tag) Comment() (string, bool) { return t.text(backend.Comment) }

// Genre returns the genre name. ok is false when the genre is unset.
func (t *Tag) Genre() (string, bool) { return t.text(backend.Genre) }

// Year returns the release year. ok is false when the year is unset (0).
func (t *Tag) Year() (uint, bool) { return t.number(backend.Year) }

// Track returns the track number. ok is false when the track is unset (0).
func (t *Tag) Track() (uint, bool) { return t.number(backend.Track) }

// SetTitle stages a new title. The empty string clears it.
func (t *Tag) SetTitle(s string) error { return t.setText(backend.Title, s) }

// SetArtist stages a new artist. The empty string clears it.
func (t *Tag) SetArtist(s string) error { return t.setText(backend.Artist, s) }

// SetAlbum stages a new album. The empty string clears it.
func (t *Tag) SetAlbum(s string) error { return t.setText(backend.Album, s) }

// SetComment stages a new comment. The empty string clears it.
func (t *Tag) SetComment(s string) error { return t.setText(backend.Comment, s) }

// SetGenre stages a new genre. The empty string clears it.
func (t *Tag) SetGenre(s string) error { return t.setText(backend.Genre, s) }

// SetYear stages a new year. 0 clears it.
func (t *Tag) SetYear(year uint) error { return t.setNumber(backend.Year, year) }

// SetTrack stages a new track number. 0 clears it.
func (t *Tag) SetTrack(track uint) error { return t.setNumber(backend.Track, track) }

func (t *Tag) text(field backend.TagField) (string, bool) {
	var s string
	t.file.with(func(nativeFile) { s = t.raw.Text(field) })
	if s == "" {
		return "", false
	}
	return s, true
}

func (t *Tag) number(field backend.NumberField) (uint, bool) {
	var n uint
	t.file.with(func(nativeFile) { n = t.raw.Number(field) })
	if n == 0 {
		return 0, false
	}
	return n, true
}

func (t *Tag) setText(field backend.TagField, s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("set %s: %w", field, ErrInvalidString)
	}
	if !t.file.with(func(nativeFile) { t.raw.SetText(field, s) }) {
		return ErrClosed
	}
	return nil
}

func (t *Tag) setNumber(field backend.NumberField, n uint) error {
	if !t.file.with(func(nativeFile) { t.raw.SetNumber(field, n) }) {
		return ErrClosed
	}
	return nil
}

// Fields returns a snapshot of every field.
func (t *Tag) Fields() TagFields {
	var out TagFields
	out.Title, _ = t.Title()
	out.Artist, _ = t.Artist()
	out.Album, _ = t.Album()
	out.Comment, _ = t.Comment()
	out.Genre, _ = t.Genre()
	out.Year, _ = t.Year()
	out.Track, _ = t.Track()
	return out
}

// SetFields stages every non-zero field of fields. Zero fields are left
// untouched; use the individual setters to clear a field.
func (t *Tag) SetFields(fields TagFields) error {
	texts := []struct {
		field backend.TagField
		value string
	}{
		{backend.Title, fields.Title},
		{backend.Artist, fields.Artist},
		{backend.Album, fields.Album},
		{backend.Comment, fields.Comment},
		{backend.Genre, fields.Genre},
	}
	for _, f := range texts {
		if f.value == "" {
			continue
		}
		if err := t.setText(f.field, f.value); err != nil {
			return err
		}
	}
	if fields.Year != 0 {
		if err := t.setNumber(backend.Year, fields.Year); err != nil {
			return err
		}
	}
	if fields.Track != 0 {
		if err := t.setNumber(backend.Track, fields.Track); err != nil {
			return err
		}
	}
	return nil
}
