// Package nbs decodes Note Block Studio song files.
//
// Only format version 5 is supported. Files with a non-zero protocol marker
// (the legacy format) or any other version are rejected before any further
// bytes are read.
//
// # Decoding
//
//	data, _ := os.ReadFile("song.nbs")
//	song, err := nbs.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decode accepts any io.Reader; the whole song is materialized in memory.
//
// # Layout
//
// All integers are little-endian. Strings are a u32 byte length followed by
// UTF-8 bytes. After the header comes the note table:
//
//	repeat {
//	    u16 tick jump          // 0 ends the table
//	    repeat {
//	        u16 layer jump     // 0 ends this tick
//	        u8 instrument, u8 key, u8 velocity, u8 panning, i16 pitch
//	    }
//	}
//
// Jumps are added with 16-bit wraparound to accumulators that start at
// 65535, so the first jump of 1 lands on tick 0 and layer 0. The layer
// accumulator restarts for every tick. The table is followed by
// layer_count layer records and a u8-counted list of custom instruments.
//
// # Delays
//
// Each note carries DelayTicks, the gap since the previous tick that had
// notes, rescaled from the song tempo to a fixed 20 ticks per second (see
// Normalize). Only the first note of a tick has a non-zero delay, so a
// player can walk Notes in order and wait DelayTicks before each one.
//
// # Errors
//
// Failures are *errors.Error values from github.com/wippyai/nbs-json/errors,
// with a path naming the field being read and the byte offset:
//
//	[decode] unexpected_end at header.song_name (offset 12): need 10 bytes, only 3 available
//
// # Logging
//
// The package logs each decode stage at debug level through a zap logger,
// which is a no-op until SetLogger is called.
package nbs
