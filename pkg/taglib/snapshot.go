package taglib

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// TagFields is a plain copy of a Tag. Zero values mean absent.
type TagFields struct {
	Title   string `json:"title,omitempty"`
	Artist  string `json:"artist,omitempty"`
	Album   string `json:"album,omitempty"`
	Comment string `json:"comment,omitempty"`
	Genre   string `json:"genre,omitempty"`
	Year    uint   `json:"year,omitempty"`
	Track   uint   `json:"track,omitempty"`
}

// PropertyValues is a plain copy of AudioProperties.
type PropertyValues struct {
	Length     int `json:"length"`
	Bitrate    int `json:"bitrate"`
	SampleRate int `json:"sample_rate"`
	Channels   int `json:"channels"`
}

// Metadata is everything Read can learn about one file. Tag is nil when the
// file has no tag container; Properties is nil when its audio properties
// could not be read.
type Metadata struct {
	Path       string          `json:"path"`
	Tag        *TagFields      `json:"tag,omitempty"`
	Properties *PropertyValues `json:"audio,omitempty"`
}

// Read snapshots both views of f. A missing tag or missing properties is
// recorded as a nil field, not returned as an error.
func (f *File) Read() (Metadata, error) {
	md := Metadata{Path: f.path}

	tag, err := f.Tag()
	switch {
	case err == nil:
		fields := tag.Fields()
		md.Tag = &fields
	case !errors.Is(err, ErrNoTag):
		return md, err
	}

	props, err := f.AudioProperties()
	switch {
	case err == nil:
		values := props.Values()
		md.Properties = &values
	case !errors.Is(err, ErrNoAudioProperties):
		return md, err
	}

	return md, nil
}

// ReadFile opens path, snapshots it and closes it again.
func ReadFile(path string, opts ...Option) (Metadata, error) {
	f, err := Open(path, opts...)
	if err != nil {
		return Metadata{Path: path}, err
	}
	defer f.Close()

	return f.Read()
}

// Result is the outcome of reading one path in ReadAll.
type Result struct {
	Metadata
	Err error `json:"-"`
}

// ReadAll reads every path and returns one Result per path, in input order.
// A failure on one path never stops the others. Once ctx is done, paths not
// yet started are reported with ctx's error.
func ReadAll(ctx context.Context, paths []string, opts ...Option) []Result {
	if len(paths) == 0 {
		return nil
	}

	o := buildOptions(opts)
	results := make([]Result, len(paths))

	var g errgroup.Group
	g.SetLimit(o.concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Metadata: Metadata{Path: path}, Err: err}
				return nil
			}
			md, err := ReadFile(path, opts...)
			results[i] = Result{Metadata: md, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
