package nbs

import (
	"bytes"
	"io"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/nbs-json/errors"
	"github.com/wippyai/nbs-json/nbs/internal/binary"
)

// Parse decodes an NBS file held in memory.
func Parse(data []byte) (*Song, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads an NBS file from r. Only version 5 files are accepted; any
// other protocol marker or version is rejected without reading further.
func Decode(r io.Reader) (*Song, error) {
	br := binary.NewReader(r)

	marker, err := br.ReadU16()
	if err != nil {
		return nil, errors.WithPath(err, "protocol_marker")
	}
	if marker != ProtocolMarker {
		return nil, errors.UnsupportedFormat(marker)
	}

	version, err := br.ReadU8()
	if err != nil {
		return nil, errors.WithPath(err, "version")
	}
	switch version {
	case Version5:
		return decodeV5(br)
	default:
		return nil, errors.UnsupportedVersion(version)
	}
}

func decodeV5(r *binary.Reader) (*Song, error) {
	log := Logger()

	var h Header
	if err := readHeader(r, &h); err != nil {
		return nil, err
	}
	log.Debug("header decoded",
		zap.String("name", h.SongName),
		zap.Uint16("tempo", h.SongTempo),
		zap.Uint16("layer_count", h.LayerCount),
		zap.Int("offset", r.Position()))

	notes, ticks, err := readNotes(r, h.SongTempo)
	if err != nil {
		return nil, err
	}
	log.Debug("note table decoded",
		zap.Int("notes", len(notes)),
		zap.Int("ticks", ticks),
		zap.Int("offset", r.Position()))

	layers, err := readLayers(r, h.LayerCount)
	if err != nil {
		return nil, err
	}

	instruments, err := readCustomInstruments(r)
	if err != nil {
		return nil, err
	}
	log.Debug("layers decoded",
		zap.Int("layers", len(layers)),
		zap.Int("custom_instruments", len(instruments)),
		zap.Int("offset", r.Position()))

	return assemble(h, notes, layers, instruments), nil
}

// assemble builds the song. Slices are never nil so they encode as [].
func assemble(h Header, notes []Note, layers []Layer, instruments []CustomInstrument) *Song {
	if notes == nil {
		notes = []Note{}
	}
	if layers == nil {
		layers = []Layer{}
	}
	if instruments == nil {
		instruments = []CustomInstrument{}
	}
	return &Song{
		Version:           Version5,
		Header:            h,
		Notes:             notes,
		Layers:            layers,
		CustomInstruments: instruments,
	}
}

func readHeader(r *binary.Reader, h *Header) error {
	var err error
	fail := func(field string) error {
		return errors.WithPath(err, "header", field)
	}

	if h.VanillaInstrumentCount, err = r.ReadU8(); err != nil {
		return fail("vanilla_instrument_count")
	}
	if h.SongLength, err = r.ReadU16(); err != nil {
		return fail("song_length")
	}
	if h.LayerCount, err = r.ReadU16(); err != nil {
		return fail("layer_count")
	}

	if h.SongName, err = r.ReadString(); err != nil {
		return fail("song_name")
	}
	if h.SongAuthor, err = r.ReadString(); err != nil {
		return fail("song_author")
	}
	if h.SongOriginalAuthor, err = r.ReadString(); err != nil {
		return fail("song_original_author")
	}
	if h.SongDescription, err = r.ReadString(); err != nil {
		return fail("song_description")
	}
	if h.SongTempo, err = r.ReadU16(); err != nil {
		return fail("song_tempo")
	}

	if h.AutoSaving, err = r.ReadU8(); err != nil {
		return fail("auto_saving")
	}
	if h.AutoSavingDuration, err = r.ReadU8(); err != nil {
		return fail("auto_saving_duration")
	}
	if h.TimeSignature, err = r.ReadU8(); err != nil {
		return fail("time_signature")
	}

	if h.MinutesSpent, err = r.ReadU32(); err != nil {
		return fail("minutes_spent")
	}
	if h.LeftClicks, err = r.ReadU32(); err != nil {
		return fail("left_clicks")
	}
	if h.RightClicks, err = r.ReadU32(); err != nil {
		return fail("right_clicks")
	}
	if h.NoteBlocksAdded, err = r.ReadU32(); err != nil {
		return fail("note_blocks_added")
	}
	if h.NoteBlocksRemoved, err = r.ReadU32(); err != nil {
		return fail("note_blocks_removed")
	}

	if h.SchematicFileName, err = r.ReadString(); err != nil {
		return fail("schematic_file_name")
	}

	if h.LoopOn, err = r.ReadU8(); err != nil {
		return fail("loop_on")
	}
	if h.MaxLoopCount, err = r.ReadU8(); err != nil {
		return fail("max_loop_count")
	}
	if h.LoopStartTick, err = r.ReadU16(); err != nil {
		return fail("loop_start_tick")
	}
	return nil
}

// readNotes decodes the tick/layer jump table. Both levels end on a zero
// jump; the declared counts in the header are never consulted. The tick and
// layer accumulators start at MaxUint16 so that a first jump of 1 wraps to 0.
// It also returns the number of ticks visited.
func readNotes(r *binary.Reader, tempo uint16) ([]Note, int, error) {
	var notes []Note
	tick := uint16(math.MaxUint16)
	var lastTick uint16
	ticks := 0

	for {
		tickJump, err := r.ReadU16()
		if err != nil {
			return nil, ticks, errors.WithPath(err, "notes", "tick_jump")
		}
		if tickJump == 0 {
			break
		}
		tick += tickJump
		ticks++

		layer := uint16(math.MaxUint16)
		first := true
		for {
			layerJump, err := r.ReadU16()
			if err != nil {
				return nil, ticks, errors.WithPath(err, "notes", "layer_jump")
			}
			if layerJump == 0 {
				break
			}
			layer += layerJump

			n, err := readNote(r, len(notes))
			if err != nil {
				return nil, ticks, err
			}
			n.Layer = layer
			if first {
				n.DelayTicks = Normalize(tempo, tick-lastTick)
				first = false
			}
			notes = append(notes, n)
		}

		lastTick = tick
	}
	return notes, ticks, nil
}

func readNote(r *binary.Reader, index int) (Note, error) {
	var n Note
	var err error
	fail := func(field string) error {
		return errors.WithPath(err, "notes", strconv.Itoa(index), field)
	}

	if n.Instrument, err = r.ReadU8(); err != nil {
		return n, fail("note_block_instrument")
	}
	if n.Key, err = r.ReadU8(); err != nil {
		return n, fail("note_block_key")
	}
	if n.Velocity, err = r.ReadU8(); err != nil {
		return n, fail("note_block_velocity")
	}
	if n.Panning, err = r.ReadU8(); err != nil {
		return n, fail("note_block_panning")
	}
	if n.Pitch, err = r.ReadI16(); err != nil {
		return n, fail("note_block_pitch")
	}
	return n, nil
}

// readLayers reads exactly count layer records, regardless of which layers
// the notes used.
func readLayers(r *binary.Reader, count uint16) ([]Layer, error) {
	layers := make([]Layer, 0, count)
	for i := 0; i < int(count); i++ {
		var l Layer
		var err error
		fail := func(field string) error {
			return errors.WithPath(err, "layers", strconv.Itoa(i), field)
		}

		if l.Name, err = r.ReadString(); err != nil {
			return nil, fail("layer_name")
		}
		if l.Lock, err = r.ReadU8(); err != nil {
			return nil, fail("layer_lock")
		}
		if l.Volume, err = r.ReadU8(); err != nil {
			return nil, fail("layer_volume")
		}
		if l.Stereo, err = r.ReadU8(); err != nil {
			return nil, fail("layer_stereo")
		}
		layers = append(layers, l)
	}
	return layers, nil
}

func readCustomInstruments(r *binary.Reader) ([]CustomInstrument, error) {
	count, err := r.ReadU8()
	if err != nil {
		return nil, errors.WithPath(err, "custom_instrument_count")
	}

	instruments := make([]CustomInstrument, 0, count)
	for i := 0; i < int(count); i++ {
		var ci CustomInstrument
		fail := func(field string) error {
			return errors.WithPath(err, "custom_instruments", strconv.Itoa(i), field)
		}

		if ci.Name, err = r.ReadString(); err != nil {
			return nil, fail("instrument_name")
		}
		if ci.SoundFile, err = r.ReadString(); err != nil {
			return nil, fail("sound_file")
		}
		if ci.Pitch, err = r.ReadU8(); err != nil {
			return nil, fail("sound_pitch")
		}
		if ci.PressKey, err = r.ReadU8(); err != nil {
			return nil, fail("press_key")
		}
		instruments = append(instruments, ci)
	}
	return instruments, nil
}
