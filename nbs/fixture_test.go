package nbs_test

import (
	"bytes"
	"encoding/binary"

	"github.com/wippyai/nbs-json/nbs"
)

// fixture assembles NBS bytes for tests.
type fixture struct {
	buf bytes.Buffer
}

func (f *fixture) u8(v uint8) *fixture {
	f.buf.WriteByte(v)
	return f
}

func (f *fixture) u16(vs ...uint16) *fixture {
	for _, v := range vs {
		f.buf.Write(binary.LittleEndian.AppendUint16(nil, v))
	}
	return f
}

func (f *fixture) i16(v int16) *fixture {
	return f.u16(uint16(v))
}

func (f *fixture) u32(v uint32) *fixture {
	f.buf.Write(binary.LittleEndian.AppendUint32(nil, v))
	return f
}

func (f *fixture) str(s string) *fixture {
	f.u32(uint32(len(s)))
	f.buf.WriteString(s)
	return f
}

func (f *fixture) raw(b ...byte) *fixture {
	f.buf.Write(b)
	return f
}

func (f *fixture) bytes() []byte {
	return bytes.Clone(f.buf.Bytes())
}

// note writes the 7-byte note record that follows a layer jump.
func (f *fixture) note(instrument, key, velocity, panning uint8, pitch int16) *fixture {
	return f.u8(instrument).u8(key).u8(velocity).u8(panning).i16(pitch)
}

// header starts a version 5 file with the given header fields.
func header(h nbs.Header) *fixture {
	f := &fixture{}
	f.u16(0).u8(5)
	f.u8(h.VanillaInstrumentCount).u16(h.SongLength).u16(h.LayerCount)
	f.str(h.SongName).str(h.SongAuthor).str(h.SongOriginalAuthor).str(h.SongDescription)
	f.u16(h.SongTempo)
	f.u8(h.AutoSaving).u8(h.AutoSavingDuration).u8(h.TimeSignature)
	f.u32(h.MinutesSpent).u32(h.LeftClicks).u32(h.RightClicks).u32(h.NoteBlocksAdded).u32(h.NoteBlocksRemoved)
	f.str(h.SchematicFileName)
	f.u8(h.LoopOn).u8(h.MaxLoopCount).u16(h.LoopStartTick)
	return f
}

// layers writes the layer records and the custom instrument list.
func (f *fixture) layers(ls []nbs.Layer, cis []nbs.CustomInstrument) *fixture {
	for _, l := range ls {
		f.str(l.Name).u8(l.Lock).u8(l.Volume).u8(l.Stereo)
	}
	f.u8(uint8(len(cis)))
	for _, ci := range cis {
		f.str(ci.Name).str(ci.SoundFile).u8(ci.Pitch).u8(ci.PressKey)
	}
	return f
}

func sampleHeader() nbs.Header {
	return nbs.Header{
		VanillaInstrumentCount: 16,
		SongLength:             40,
		LayerCount:             2,
		SongName:               "Sweden",
		SongAuthor:             "tester",
		SongOriginalAuthor:     "C418",
		SongDescription:        "calm",
		SongTempo:              1000,
		AutoSaving:             1,
		AutoSavingDuration:     10,
		TimeSignature:          4,
		MinutesSpent:           90,
		LeftClicks:             1234,
		RightClicks:            56,
		NoteBlocksAdded:        700,
		NoteBlocksRemoved:      12,
		SchematicFileName:      "",
		LoopOn:                 1,
		MaxLoopCount:           0,
		LoopStartTick:          8,
	}
}

var sampleLayers = []nbs.Layer{
	{Name: "Melody", Lock: 0, Volume: 100, Stereo: 100},
	{Name: "", Lock: 1, Volume: 50, Stereo: 0},
}

var sampleInstruments = []nbs.CustomInstrument{
	{Name: "Flute", SoundFile: "flute.ogg", Pitch: 45, PressKey: 0},
}

// sampleSong is a complete file: two ticks, three notes, two layers and one
// custom instrument.
func sampleSong() []byte {
	f := header(sampleHeader())
	// tick 0: layers 0 and 1
	f.u16(1)
	f.u16(1).note(0, 45, 100, 100, 0)
	f.u16(1).note(1, 47, 80, 120, -50)
	f.u16(0)
	// tick 10: layer 0
	f.u16(10)
	f.u16(1).note(16, 33, 100, 100, 25)
	f.u16(0)
	f.u16(0)
	return f.layers(sampleLayers, sampleInstruments).bytes()
}
