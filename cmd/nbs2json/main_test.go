package main

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/nbs-json/errors"
)

// minimalSong is a version 5 file named "Hi" with one note and no layers.
var minimalSong = []byte{
	0, 0, 5, // marker, version
	16, 4, 0, 0, 0, // instruments, length 4, layer count 0
	2, 0, 0, 0, 'H', 'i', // name
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // author, original author, description
	0xe8, 0x03, // tempo 1000
	0, 0, 4,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, // schematic
	0, 0, 0, 0, // loop
	1, 0, 1, 0, 0, 45, 100, 100, 0, 0, 0, 0, // tick 0, layer 0, one note
	0, 0, // end of table
	0, // no custom instruments
}

func writeSong(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunWritesOutputBesideInput(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "songs")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeSong(t, sub, "hi.nbs", minimalSong)
	chdir(t, dir)

	if err := run([]string{filepath.Join("songs", "hi.nbs")}); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(sub, "output.json"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	var doc struct {
		Version  int    `json:"version"`
		SongName string `json:"song_name"`
		Notes    []struct {
			Key int `json:"note_block_key"`
		} `json:"notes"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.Version != 5 || doc.SongName != "Hi" {
		t.Errorf("doc = %+v", doc)
	}
	if len(doc.Notes) != 1 || doc.Notes[0].Key != 45 {
		t.Errorf("notes = %+v", doc.Notes)
	}
}

func TestRunAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	writeSong(t, dir, "hi.nbs", minimalSong)

	if err := run([]string{filepath.Join(dir, "hi.nbs")}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "output.json")); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeSong(t, dir, "hi.nbs", minimalSong)
	path := filepath.Join(dir, "hi.nbs")

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		if err := run([]string{path}); err != nil {
			t.Fatalf("run: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "output.json"))
		if err != nil {
			t.Fatal(err)
		}
		outputs = append(outputs, data)
	}
	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Error("output differs between runs")
	}
}

func TestRunArgumentErrors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{"a.nbs", "b.nbs"}},
		{"missing file", []string{"missing.nbs"}},
		{"directory", []string{"."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args)
			if !stderrors.Is(err, errors.ErrArgument) {
				t.Errorf("expected argument error, got %v", err)
			}
		})
	}
}

func TestRunDecodeErrorWritesNothing(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		target error
	}{
		{"truncated", minimalSong[:20], errors.ErrUnexpectedEnd},
		{"legacy format", []byte{7, 0, 5}, errors.ErrUnsupportedFormat},
		{"version 4", []byte{0, 0, 4}, errors.ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeSong(t, dir, "bad.nbs", tt.data)

			err := run([]string{filepath.Join(dir, "bad.nbs")})
			if !stderrors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
			if _, err := os.Stat(filepath.Join(dir, "output.json")); !os.IsNotExist(err) {
				t.Errorf("output.json should not exist: %v", err)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
