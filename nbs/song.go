package nbs

import (
	"strconv"
	"time"
)

// TicksPerSecond returns the authored tempo.
func (s *Song) TicksPerSecond() float64 {
	return float64(s.SongTempo) / 100.0
}

// Duration returns the declared song length at the authored tempo.
// It is zero when the tempo is zero.
func (s *Song) Duration() time.Duration {
	tps := s.TicksPerSecond()
	if tps == 0 {
		return 0
	}
	return time.Duration(float64(s.SongLength) / tps * float64(time.Second))
}

// NotesOnLayer counts the notes placed on the given absolute layer.
func (s *Song) NotesOnLayer(layer uint16) int {
	n := 0
	for _, note := range s.Notes {
		if note.Layer == layer {
			n++
		}
	}
	return n
}

// LayerName returns the declared name of a layer, falling back to the
// editor's "Layer N" label for unnamed or undeclared layers.
func (s *Song) LayerName(layer uint16) string {
	if int(layer) < len(s.Layers) && s.Layers[layer].Name != "" {
		return s.Layers[layer].Name
	}
	return "Layer " + strconv.Itoa(int(layer)+1)
}

// VanillaInstruments are the built-in instrument names in id order.
var VanillaInstruments = []string{
	"Harp", "Double Bass", "Bass Drum", "Snare Drum", "Click", "Guitar",
	"Flute", "Bell", "Chime", "Xylophone", "Iron Xylophone", "Cow Bell",
	"Didgeridoo", "Bit", "Banjo", "Pling",
}

// InstrumentName resolves a note's instrument id. Ids below
// VanillaInstrumentCount are built-in; the rest index CustomInstruments
// offset by that count. Unknown ids render as "#<id>".
func (s *Song) InstrumentName(id uint8) string {
	vanilla := int(s.VanillaInstrumentCount)
	if int(id) < vanilla {
		if int(id) < len(VanillaInstruments) {
			return VanillaInstruments[id]
		}
		return "#" + strconv.Itoa(int(id))
	}
	if i := int(id) - vanilla; i < len(s.CustomInstruments) {
		return s.CustomInstruments[i].Name
	}
	return "#" + strconv.Itoa(int(id))
}
