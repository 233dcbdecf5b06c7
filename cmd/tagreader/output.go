package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ebassi/taglib-go/pkg/taglib"
)

func writeText(w io.Writer, results []taglib.Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(bw, "Invalid file %s (error: %v)\n", r.Path, r.Err)
			continue
		}

		fmt.Fprintf(bw, "*** \"%s\" ***\n", r.Path)

		if t := r.Tag; t != nil {
			fmt.Fprintln(bw, "-- TAG --")
			fmt.Fprintf(bw, "title   - %s\n", t.Title)
			fmt.Fprintf(bw, "artist  - %s\n", t.Artist)
			fmt.Fprintf(bw, "album   - %s\n", t.Album)
			fmt.Fprintf(bw, "year    - %d\n", t.Year)
			fmt.Fprintf(bw, "comment - %s\n", t.Comment)
			fmt.Fprintf(bw, "track   - %d\n", t.Track)
			fmt.Fprintf(bw, "genre   - %s\n", t.Genre)
		} else {
			fmt.Fprintf(bw, "No available tags for %s (error: %v)\n", r.Path, taglib.ErrNoTag)
		}

		if p := r.Properties; p != nil {
			secs := p.Length % 60
			mins := (p.Length - secs) / 60
			fmt.Fprintln(bw, "-- AUDIO --")
			fmt.Fprintf(bw, "bitrate     - %d\n", p.Bitrate)
			fmt.Fprintf(bw, "sample rate - %d\n", p.SampleRate)
			fmt.Fprintf(bw, "channels    - %d\n", p.Channels)
			fmt.Fprintf(bw, "length      - %dm:%ds\n", mins, secs)
		} else {
			fmt.Fprintf(bw, "No available audio properties for %s (error: %v)\n", r.Path, taglib.ErrNoAudioProperties)
		}
	}
	return bw.Flush()
}

type jsonResult struct {
	taglib.Metadata
	Error string `json:"error,omitempty"`
}

func writeJSON(w io.Writer, results []taglib.Result) error {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{Metadata: r.Metadata}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
