package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebassi/taglib-go/pkg/taglib"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunUsage(t *testing.T) {
	code, _, stderr := runArgs(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage: tagreader")

	code, _, _ = runArgs(t, "-nope")
	assert.Equal(t, 2, code)
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runArgs(t, "-version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, taglib.WrapperVersion())
}

func TestRunBadType(t *testing.T) {
	code, _, stderr := runArgs(t, "-type", "cassette", "a.mp3")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "-type")
}

func TestRunBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output":"yaml"}`), 0o600))

	code, _, stderr := runArgs(t, "-config", path, "a.mp3")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "output")
}

func TestRunContinuesAfterFailures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(bad, []byte("not audio"), 0o600))
	missing := filepath.Join(dir, "missing.mp3")

	code, stdout, _ := runArgs(t, "-j", "1", bad, missing)
	assert.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Invalid file "+bad))
	assert.True(t, strings.HasPrefix(lines[1], "Invalid file "+missing))
}

func TestRunJSONFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "tagreader.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"output":"json","log_level":"error"}`), 0o600))
	missing := filepath.Join(dir, "missing.mp3")

	code, stdout, _ := runArgs(t, "-config", cfg, missing)
	assert.Equal(t, 0, code)

	var out []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out, 1)
	assert.Equal(t, missing, out[0]["path"])
	assert.NotEmpty(t, out[0]["error"])
}

func TestWriteText(t *testing.T) {
	results := []taglib.Result{
		{Metadata: taglib.Metadata{
			Path: "a.mp3",
			Tag:  &taglib.TagFields{Title: "Title", Artist: "Artist", Year: 2015, Track: 3},
			Properties: &taglib.PropertyValues{
				Length:     185,
				Bitrate:    320,
				SampleRate: 44100,
				Channels:   2,
			},
		}},
		{Metadata: taglib.Metadata{Path: "b.ogg"}},
		{Metadata: taglib.Metadata{Path: "c.txt"}, Err: errors.New("boom")},
	}

	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, results))

	want := `*** "a.mp3" ***
-- TAG --
title   - Title
artist  - Artist
album   - 
year    - 2015
comment - 
track   - 3
genre   - 
-- AUDIO --
bitrate     - 320
sample rate - 44100
channels    - 2
length      - 3m:5s
*** "b.ogg" ***
No available tags for b.ogg (error: taglib: no available tag)
No available audio properties for b.ogg (error: taglib: no available audio properties)
Invalid file c.txt (error: boom)
`
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	results := []taglib.Result{
		{Metadata: taglib.Metadata{Path: "a.mp3", Tag: &taglib.TagFields{Artist: "Artist"}}},
		{Metadata: taglib.Metadata{Path: "c.txt"}, Err: errors.New("boom")},
	}

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, results))
	assert.JSONEq(t, `[
		{"path": "a.mp3", "tag": {"artist": "Artist"}},
		{"path": "c.txt", "error": "boom"}
	]`, buf.String())
}
