// Package songjson writes decoded songs as JSON.
//
// The output is compact, field order follows the nbs types, and identical
// songs always produce identical bytes.
package songjson

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/wippyai/nbs-json/errors"
	"github.com/wippyai/nbs-json/nbs"
)

// OutputName is the file written next to the input song.
const OutputName = "output.json"

// OutputPath returns the output file path for an input song path.
func OutputPath(input string) string {
	return filepath.Join(filepath.Dir(input), OutputName)
}

// Marshal encodes the song as JSON.
func Marshal(song *nbs.Song) ([]byte, error) {
	if song == nil {
		return nil, errors.Output("encode song: nil song", nil)
	}
	data, err := json.Marshal(song)
	if err != nil {
		return nil, errors.Output("encode song", err)
	}
	return data, nil
}

// Write encodes the song to w.
func Write(w io.Writer, song *nbs.Song) error {
	data, err := Marshal(song)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Output("write JSON", err)
	}
	return nil
}

// WriteFile encodes the song and writes it to path. Nothing is created when
// encoding fails.
func WriteFile(path string, song *nbs.Song) error {
	data, err := Marshal(song)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Output("create "+path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Output("write "+path, err)
	}
	if err := f.Close(); err != nil {
		return errors.Output("close "+path, err)
	}
	return nil
}
