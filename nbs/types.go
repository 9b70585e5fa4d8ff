package nbs

// Format constants.
const (
	// ProtocolMarker is the leading u16 of every file newer than the legacy format.
	ProtocolMarker uint16 = 0

	// Version5 is the only supported NBS version.
	Version5 uint8 = 5

	// TargetTicksPerSecond is the fixed rate that note delays are expressed in.
	TargetTicksPerSecond = 20.0
)

// Song is a decoded NBS file. It is built once by Decode and not modified after.
type Song struct {
	Version uint8 `json:"version"`
	Header
	Notes             []Note             `json:"notes"`
	Layers            []Layer            `json:"layers"`
	CustomInstruments []CustomInstrument `json:"custom_instruments"`
}

// Header holds the fixed fields that precede the note table.
type Header struct {
	VanillaInstrumentCount uint8  `json:"vanilla_instrument_count"`
	SongLength             uint16 `json:"song_length"`
	LayerCount             uint16 `json:"layer_count"`

	SongName           string `json:"song_name"`
	SongAuthor         string `json:"song_author"`
	SongOriginalAuthor string `json:"song_original_author"`
	SongDescription    string `json:"song_description"`
	// SongTempo is in hundredths of ticks per second.
	SongTempo uint16 `json:"song_tempo"`

	AutoSaving         uint8 `json:"auto_saving"`
	AutoSavingDuration uint8 `json:"auto_saving_duration"`
	TimeSignature      uint8 `json:"time_signature"`

	MinutesSpent      uint32 `json:"minutes_spent"`
	LeftClicks        uint32 `json:"left_clicks"`
	RightClicks       uint32 `json:"right_clicks"`
	NoteBlocksAdded   uint32 `json:"note_blocks_added"`
	NoteBlocksRemoved uint32 `json:"note_blocks_removed"`

	SchematicFileName string `json:"schematic_file_name"`

	LoopOn        uint8  `json:"loop_on"`
	MaxLoopCount  uint8  `json:"max_loop_count"`
	LoopStartTick uint16 `json:"loop_start_tick"`
}

// Note is one note block. DelayTicks is the gap since the previous tick that
// had notes, in TargetTicksPerSecond units; it is zero for all but the first
// note of a tick.
type Note struct {
	DelayTicks uint16 `json:"delay_ticks"`
	Layer      uint16 `json:"layer"`
	Instrument uint8  `json:"note_block_instrument"`
	Key        uint8  `json:"note_block_key"`
	Velocity   uint8  `json:"note_block_velocity"`
	Panning    uint8  `json:"note_block_panning"`
	Pitch      int16  `json:"note_block_pitch"`
}

// Layer is a track. Its index in Song.Layers is the value notes refer to.
type Layer struct {
	Name   string `json:"layer_name"`
	Lock   uint8  `json:"layer_lock"`
	Volume uint8  `json:"layer_volume"`
	Stereo uint8  `json:"layer_stereo"`
}

// CustomInstrument is a user supplied sound.
type CustomInstrument struct {
	Name      string `json:"instrument_name"`
	SoundFile string `json:"sound_file"`
	Pitch     uint8  `json:"sound_pitch"`
	PressKey  uint8  `json:"press_key"`
}
