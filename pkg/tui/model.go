// Package tui implements the terminal soundboard: trigger presets and
// tweak their parameters while the engine plays.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anthropics/gosfx/pkg/audio"
	"github.com/anthropics/gosfx/pkg/preset"
)

// Parameter rows of the editor panel, in display order.
const (
	paramOscillator = iota
	paramFrequency
	paramVolume
	paramDuty
	paramAttack
	paramDecay
	paramSustain
	paramRelease
	paramCrunch
	paramDrive
	paramCount
)

var paramNames = [paramCount]string{
	"oscillator", "frequency", "volume", "duty",
	"attack", "decay", "sustain", "release",
	"crunch", "drive",
}

var oscillatorNames = []string{"sine", "square", "saw", "triangle", "noise"}

// Model is the soundboard TUI model.
type Model struct {
	Engine *audio.Engine
	Bank   *preset.Bank

	names    []string
	savePath string

	cursor int // selected preset
	param  int // selected parameter row
	active int // voice count shown in the header

	Width  int
	Height int

	statusMsg string
}

// NewModel creates a soundboard over the given engine and bank. The
// save path may be empty, in which case saving is disabled.
func NewModel(engine *audio.Engine, bank *preset.Bank, savePath string) Model {
	return Model{
		Engine:   engine,
		Bank:     bank,
		names:    bank.Names(),
		savePath: savePath,
		Width:    80,
		Height:   24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
	)
}

// tickMsg refreshes the active voice display.
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tickMsg:
		m.active = m.Engine.Active()
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}

	case "left", "h":
		if m.param > 0 {
			m.param--
		}

	case "right", "l":
		if m.param < paramCount-1 {
			m.param++
		}

	case "+", "=":
		m.adjust(1)

	case "-", "_":
		m.adjust(-1)

	case "enter", " ":
		m.play(m.cursor)

	case "s":
		m.save()

	default:
		// Number keys fire presets directly.
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.play(int(key[0] - '1'))
		}
	}

	return m, nil
}

func (m *Model) currentName() string {
	if m.cursor < len(m.names) {
		return m.names[m.cursor]
	}
	return ""
}

func (m *Model) play(index int) {
	if index < 0 || index >= len(m.names) {
		return
	}
	name := m.names[index]
	sound := m.Bank.Sounds[name]
	s, err := sound.Sample()
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.Engine.Play(*s)
	m.statusMsg = "played " + name
}

// adjust nudges the selected parameter of the selected preset, keeping
// it inside the range the preset validator accepts.
func (m *Model) adjust(dir int) {
	name := m.currentName()
	if name == "" {
		return
	}
	sound := m.Bank.Sounds[name]
	d := float64(dir)

	switch m.param {
	case paramOscillator:
		idx := 0
		for i, n := range oscillatorNames {
			if n == sound.Oscillator {
				idx = i
			}
		}
		idx = (idx + dir + len(oscillatorNames)) % len(oscillatorNames)
		sound.Oscillator = oscillatorNames[idx]
	case paramFrequency:
		sound.Frequency = clampRange(sound.Frequency+d*10, 0, 20000)
	case paramVolume:
		sound.Volume = clampRange(sound.Volume+d*0.05, 0, 1)
	case paramDuty:
		sound.Duty = clampRange(sound.Duty+d*0.05, 0, 1)
	case paramAttack:
		sound.Attack = clampRange(sound.Attack+d*0.01, 0, 10)
	case paramDecay:
		sound.Decay = clampRange(sound.Decay+d*0.01, 0, 10)
	case paramSustain:
		sound.Sustain = clampRange(sound.Sustain+d*0.05, 0, 1)
	case paramRelease:
		sound.Release = clampRange(sound.Release+d*0.01, 0, 10)
	case paramCrunch:
		sound.Crunch = clampRange(sound.Crunch+d*0.1, 0, 100)
	case paramDrive:
		sound.Drive = clampRange(sound.Drive+d*0.1, 0, 100)
	}

	m.Bank.Sounds[name] = sound
	m.statusMsg = ""
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m *Model) save() {
	if m.savePath == "" {
		m.statusMsg = "no preset file to save to"
		return
	}
	if err := m.Bank.SaveFile(m.savePath); err != nil {
		m.statusMsg = "save failed: " + err.Error()
		return
	}
	m.statusMsg = "saved " + m.savePath
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), "   ", m.paramView()))
	b.WriteString("\n")
	b.WriteString(m.footerView())

	return b.String()
}

func (m Model) headerView() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("14")).
		Render("GOSFX SOUNDBOARD")

	voices := fmt.Sprintf(" │ voices: %d", m.active)
	status := ""
	if m.statusMsg != "" {
		status = " │ " + lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Render(m.statusMsg)
	}

	return title + voices + status
}

func (m Model) listView() string {
	var lines []string
	for i, name := range m.names {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Foreground(lipgloss.Color("11")).Bold(true)
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%d %s", cursor, i+1, name)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) paramView() string {
	name := m.currentName()
	if name == "" {
		return "no presets"
	}
	sound := m.Bank.Sounds[name]

	values := [paramCount]string{
		sound.Oscillator,
		fmt.Sprintf("%.0f Hz", sound.Frequency),
		fmt.Sprintf("%.2f", sound.Volume),
		fmt.Sprintf("%.2f", sound.Duty),
		fmt.Sprintf("%.2f s", sound.Attack),
		fmt.Sprintf("%.2f s", sound.Decay),
		fmt.Sprintf("%.2f", sound.Sustain),
		fmt.Sprintf("%.2f s", sound.Release),
		fmt.Sprintf("%.1f", sound.Crunch),
		fmt.Sprintf("%.1f", sound.Drive),
	}

	var lines []string
	for i := 0; i < paramCount; i++ {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		marker := " "
		if i == m.param {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
			marker = "*"
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s %-10s %s", marker, paramNames[i], values[i])))
	}
	return strings.Join(lines, "\n")
}

func (m Model) footerView() string {
	keys := " [1-9/Enter]Play [↑↓]Preset [←→]Param [+/-]Adjust [S]Save [Q]Quit"
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(keys)
}
