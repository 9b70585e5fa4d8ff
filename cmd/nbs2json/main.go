// Command nbs2json converts a Note Block Studio song to JSON.
//
// Usage:
//
//	nbs2json <song.nbs>
//
// The path is resolved against the working directory and the result is
// written to output.json in the same directory as the song.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wippyai/nbs-json/errors"
	"github.com/wippyai/nbs-json/nbs"
	"github.com/wippyai/nbs-json/songjson"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	input, err := resolveInput(args)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return errors.Argument("read "+input, err)
	}

	song, err := nbs.Parse(data)
	if err != nil {
		return err
	}

	return songjson.WriteFile(songjson.OutputPath(input), song)
}

// resolveInput checks the argument count and returns the absolute path of
// an existing input file.
func resolveInput(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.Argument(fmt.Sprintf("expected exactly one argument <song.nbs>, got %d", len(args)), nil)
	}

	path := args[0]
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Argument("resolve working directory", err)
		}
		path = filepath.Join(cwd, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Argument(fmt.Sprintf("nonexistent file %q", args[0]), nil)
		}
		return "", errors.Argument("stat "+args[0], err)
	}
	if info.IsDir() {
		return "", errors.Argument(fmt.Sprintf("%q is a directory", args[0]), nil)
	}
	return path, nil
}
