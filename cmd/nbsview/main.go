// Command nbsview browses a Note Block Studio song in the terminal.
//
// Usage:
//
//	nbsview <song.nbs>
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wippyai/nbs-json/errors"
	"github.com/wippyai/nbs-json/nbs"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: nbsview <song.nbs>")
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.Argument("stdout is not a terminal; use nbs2json for non-interactive output", nil)
	}

	m, err := load(path)
	if err != nil {
		return err
	}
	if w, h, err := term.GetSize(fd); err == nil {
		m.resize(w, h)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func load(path string) (*viewModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Argument("read "+path, err)
	}
	song, err := nbs.Parse(data)
	if err != nil {
		return nil, err
	}
	return newViewModel(song, path), nil
}
