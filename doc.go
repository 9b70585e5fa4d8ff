// Package nbsjson converts Note Block Studio songs to JSON.
//
// The module decodes version 5 .nbs files into a structured song and writes
// it as a JSON document.
//
// # Architecture Overview
//
//	nbsjson/
//	├── nbs/             Song types and the version 5 decoder
//	│   └── internal/
//	│       └── binary/  Forward-only little-endian byte cursor
//	├── songjson/        JSON encoding and output.json writing
//	├── errors/          Structured error types for debugging
//	└── cmd/
//	    ├── nbs2json/    One-shot converter
//	    └── nbsview/     Terminal song browser
//
// # Quick Start
//
// Convert a song from the command line:
//
//	nbs2json songs/megalovania.nbs   # writes songs/output.json
//
// Or from Go:
//
//	data, err := os.ReadFile("song.nbs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	song, err := nbs.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := songjson.WriteFile("output.json", song); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Every failure is an *errors.Error with a phase (args, decode, output) and a
// kind. Use the sentinels in the errors package with errors.Is:
//
//	if errors.Is(err, nbserrors.ErrUnsupportedVersion) {
//	    // not a version 5 file
//	}
//
// # Thread Safety
//
// Decoding holds no shared state; separate goroutines may decode separate
// songs. The package logger in nbs must be set before decoding starts.
package nbsjson
