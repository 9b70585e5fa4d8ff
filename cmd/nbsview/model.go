package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/nbs-json/nbs"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("#666666"))
)

type tab int

const (
	tabNotes tab = iota
	tabLayers
	tabInstruments
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabNotes:
		return "Notes"
	case tabLayers:
		return "Layers"
	case tabInstruments:
		return "Instruments"
	default:
		return "?"
	}
}

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Up, k.Down, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Up, k.Down}, {k.Quit}}
}

var keys = keyMap{
	Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// chromeLines is the number of lines around the table: title, metadata,
// blank, tabs, table border (2) and help.
const chromeLines = 8

type viewModel struct {
	song     *nbs.Song
	filename string
	tables   [tabCount]table.Model
	help     help.Model
	active   tab
}

func newViewModel(song *nbs.Song, filename string) *viewModel {
	m := &viewModel{
		song:     song,
		filename: filename,
		help:     help.New(),
	}
	m.tables[tabNotes] = newTable(noteColumns, noteRows(song))
	m.tables[tabLayers] = newTable(layerColumns, layerRows(song))
	m.tables[tabInstruments] = newTable(instrumentColumns, instrumentRows(song))
	m.tables[tabNotes].Focus()
	return m
}

func newTable(cols []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(20),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#666666")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *viewModel) resize(width, height int) {
	m.help.Width = width
	h := height - chromeLines
	if h < 3 {
		h = 3
	}
	for i := range m.tables {
		m.tables[i].SetHeight(h)
	}
}

func (m *viewModel) switchTab(to tab) {
	m.tables[m.active].Blur()
	m.active = (to + tabCount) % tabCount
	m.tables[m.active].Focus()
}

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.switchTab(m.active + 1)
			return m, nil
		case key.Matches(msg, keys.Prev):
			m.switchTab(m.active - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.tables[m.active], cmd = m.tables[m.active].Update(msg)
	return m, cmd
}

func (m *viewModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(songTitle(m.song)))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(songMeta(m.song)))
	b.WriteString("\n\n")

	var tabs []string
	for t := tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%s (%d)", t, len(m.tables[t].Rows()))
		if t == m.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	b.WriteString(tableBorderStyle.Render(m.tables[m.active].View()))
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return b.String()
}

func songTitle(s *nbs.Song) string {
	name := s.SongName
	if name == "" {
		name = "Untitled"
	}
	if s.SongAuthor != "" {
		name += " by " + s.SongAuthor
	}
	return name
}

func songMeta(s *nbs.Song) string {
	parts := []string{
		fmt.Sprintf("%.2f t/s", s.TicksPerSecond()),
		fmt.Sprintf("%d ticks", s.SongLength),
		s.Duration().Round(100 * time.Millisecond).String(),
		fmt.Sprintf("%d/4", s.TimeSignature),
	}
	if s.SongOriginalAuthor != "" {
		parts = append(parts, "original by "+s.SongOriginalAuthor)
	}
	if s.LoopOn != 0 {
		loop := "loop from tick " + strconv.Itoa(int(s.LoopStartTick))
		if s.MaxLoopCount != 0 {
			loop += fmt.Sprintf(" x%d", s.MaxLoopCount)
		}
		parts = append(parts, loop)
	}
	return strings.Join(parts, " • ")
}

var noteColumns = []table.Column{
	{Title: "#", Width: 6},
	{Title: "Time", Width: 8},
	{Title: "Delay", Width: 6},
	{Title: "Layer", Width: 16},
	{Title: "Instrument", Width: 14},
	{Title: "Key", Width: 5},
	{Title: "Vel", Width: 4},
	{Title: "Pan", Width: 4},
	{Title: "Pitch", Width: 6},
}

// noteRows lists notes in playback order. Time accumulates the normalized
// delays, which are in 1/20 s units.
func noteRows(s *nbs.Song) []table.Row {
	rows := make([]table.Row, 0, len(s.Notes))
	elapsed := 0
	for i, n := range s.Notes {
		elapsed += int(n.DelayTicks)
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			fmt.Sprintf("%.2fs", float64(elapsed)/nbs.TargetTicksPerSecond),
			strconv.Itoa(int(n.DelayTicks)),
			s.LayerName(n.Layer),
			s.InstrumentName(n.Instrument),
			keyName(n.Key),
			strconv.Itoa(int(n.Velocity)),
			strconv.Itoa(int(n.Panning) - 100),
			strconv.Itoa(int(n.Pitch)),
		})
	}
	return rows
}

var layerColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Name", Width: 24},
	{Title: "Notes", Width: 6},
	{Title: "Lock", Width: 5},
	{Title: "Volume", Width: 7},
	{Title: "Stereo", Width: 7},
}

func layerRows(s *nbs.Song) []table.Row {
	rows := make([]table.Row, 0, len(s.Layers))
	for i, l := range s.Layers {
		lock := ""
		if l.Lock != 0 {
			lock = "yes"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			s.LayerName(uint16(i)),
			strconv.Itoa(s.NotesOnLayer(uint16(i))),
			lock,
			strconv.Itoa(int(l.Volume)),
			strconv.Itoa(int(l.Stereo) - 100),
		})
	}
	return rows
}

var instrumentColumns = []table.Column{
	{Title: "ID", Width: 4},
	{Title: "Name", Width: 20},
	{Title: "Sound file", Width: 28},
	{Title: "Pitch", Width: 6},
	{Title: "Press", Width: 6},
}

func instrumentRows(s *nbs.Song) []table.Row {
	rows := make([]table.Row, 0, len(s.CustomInstruments))
	for i, ci := range s.CustomInstruments {
		press := ""
		if ci.PressKey != 0 {
			press = "yes"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(int(s.VanillaInstrumentCount) + i),
			ci.Name,
			ci.SoundFile,
			keyName(ci.Pitch),
			press,
		})
	}
	return rows
}

var pitchClasses = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// keyName renders an 88-key piano index, where 0 is A0 and 39 is C4.
func keyName(k uint8) string {
	n := int(k) + 9
	return pitchClasses[n%12] + strconv.Itoa(n/12)
}
