package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/engine"
	"github.com/san-kum/algoviz/internal/frame"
	"github.com/san-kum/algoviz/internal/produce"
	"github.com/san-kum/algoviz/internal/render"
	"github.com/san-kum/algoviz/internal/stats"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var algorithmInfo = map[string]string{
	"bubble_sort":    "adjacent swaps",
	"selection_sort": "running minimum",
	"insertion_sort": "sorted prefix",
	"merge_sort":     "divide and merge",
	"quick_sort":     "lomuto partition",
	"linear_search":  "left to right scan",
	"binary_search":  "halve the window",
	"bfs":            "queue traversal",
	"dfs":            "recursive traversal",
}

type appState int

const (
	stateMenu appState = iota
	stateInput
	statePlayer
)

type frameMsg struct {
	pos int
	f   frame.Frame
}

type model struct {
	state    appState
	cursor   int
	names    []string
	selected string

	registry *produce.Registry
	cfg      *config.Config
	producer produce.Producer

	fields      []string
	fieldCursor int
	editing     bool
	editBuf     string
	valuesText  string
	targetText  string
	startText   string

	eng *engine.Engine

	seq     frame.Sequence
	cur     frame.Frame
	pos     int
	summary stats.Summary
	status  string

	width  int
	height int
}

func newModel(cfg *config.Config) *model {
	registry := produce.NewRegistry()
	names := registry.List()
	// the fallback producer is not something to pick from a menu
	names = names[:len(names)-1]

	return &model{
		state:    stateMenu,
		names:    names,
		registry: registry,
		cfg:      cfg,
		eng:      engine.New(nil),
		width:    80,
		height:   24,
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case frameMsg:
		m.pos = msg.pos
		m.cur = msg.f
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateInput:
		return m.inputKey(msg)
	case statePlayer:
		return m.playerKey(msg)
	}
	return m, nil
}

func (m *model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.names[m.cursor]
		m.state = stateInput
		m.prepareInput()
	}
	return m, nil
}

func (m *model) prepareInput() {
	m.status = ""
	m.fieldCursor = 0
	m.editing = false

	cfg := m.cfg
	if p := config.GetPreset(m.selected, "classic"); p != nil {
		cfg = p
	}

	p, err := m.registry.Get(m.selected)
	if err != nil {
		m.status = err.Error()
		m.state = stateMenu
		return
	}
	m.producer = p

	switch p.Family() {
	case produce.FamilySearch:
		m.fields = []string{"values", "target"}
		m.valuesText = joinInts(cfg.Input.Values)
		m.targetText = strconv.Itoa(cfg.Input.Target)
	case produce.FamilyGraph:
		m.fields = []string{"start"}
		m.startText = strconv.Itoa(cfg.Input.Start)
	default:
		m.fields = []string{"values"}
		m.valuesText = joinInts(cfg.Input.Values)
	}
}

func (m *model) inputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			m.setField(m.fields[m.fieldCursor], m.editBuf)
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == ',' || c == '-' || c == ' ' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "j":
		if m.fieldCursor < len(m.fields)-1 {
			m.fieldCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = m.getField(m.fields[m.fieldCursor])
	case "s":
		if m.start() {
			m.state = statePlayer
			return m, tea.ClearScreen
		}
	}
	return m, nil
}

func (m *model) getField(name string) string {
	switch name {
	case "values":
		return m.valuesText
	case "target":
		return m.targetText
	case "start":
		return m.startText
	}
	return ""
}

func (m *model) setField(name, value string) {
	switch name {
	case "values":
		m.valuesText = value
	case "target":
		m.targetText = value
	case "start":
		m.startText = value
	}
}

func (m *model) buildInput() (produce.Input, error) {
	in := produce.Input{}
	switch m.producer.Family() {
	case produce.FamilyGraph:
		cfg := m.cfg
		if p := config.GetPreset(m.selected, "classic"); p != nil {
			cfg = p
		}
		in.Graph = cfg.Input.Graph
		start, err := strconv.Atoi(strings.TrimSpace(m.startText))
		if err != nil {
			return in, fmt.Errorf("bad start vertex: %q", m.startText)
		}
		in.Start = start
	case produce.FamilySearch:
		values, err := parseInts(m.valuesText)
		if err != nil {
			return in, err
		}
		target, err := strconv.Atoi(strings.TrimSpace(m.targetText))
		if err != nil {
			return in, fmt.Errorf("bad target: %q", m.targetText)
		}
		in.Values = values
		in.Target = target
	default:
		values, err := parseInts(m.valuesText)
		if err != nil {
			return in, err
		}
		in.Values = values
	}
	return in, nil
}

func (m *model) start() bool {
	in, err := m.buildInput()
	if err != nil {
		m.status = err.Error()
		return false
	}
	if err := produce.ValidateInput(m.producer, in); err != nil {
		m.status = err.Error()
		return false
	}

	m.seq = m.producer.Produce(in, nil)
	m.summary = stats.Collect(m.seq)
	if err := m.eng.Load(m.seq); err != nil {
		m.status = err.Error()
		return false
	}

	m.pos = 0
	m.cur = m.seq[0]
	m.status = ""
	m.eng.SetSpeed(m.cfg.Speed)
	m.eng.Play()
	return true
}

func (m *model) playerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.eng.Stop()
		m.state = stateMenu
		return m, tea.ClearScreen
	case " ", "p":
		if m.eng.Status() == engine.StatusPlaying {
			m.eng.Pause()
		} else {
			m.eng.Play()
		}
	case "left", "h":
		m.eng.StepBackward()
	case "right", "l":
		m.eng.StepForward()
	case "g", "home":
		m.eng.Seek(0)
	case "G", "end":
		m.eng.Seek(m.eng.Len() - 1)
	case "r":
		m.eng.Stop()
		m.eng.Play()
	case "s":
		m.eng.Stop()
		m.pos = 0
		m.cur = m.seq[0]
	case "+", "=":
		m.eng.SetSpeed(math.Min(m.eng.Speed()*2, 16))
	case "-", "_":
		m.eng.SetSpeed(math.Max(m.eng.Speed()/2, 0.25))
	case "0":
		m.eng.SetSpeed(1.0)
	}
	return m, nil
}

func (m *model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateInput:
		return m.viewInput()
	case statePlayer:
		return m.viewPlayer()
	}
	return ""
}

func (m *model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("a l g o v i z") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.names {
		desc := algorithmInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-16s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-16s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   q quit") + "\n")
	if m.status != "" {
		b.WriteString("      " + yellow.Render(m.status) + "\n")
	}

	return b.String()
}

func (m *model) viewInput() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.selected) + "  " + dim.Render(algorithmInfo[m.selected]) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	for i, name := range m.fields {
		val := m.getField(name)
		if m.editing && i == m.fieldCursor {
			val = m.editBuf + "▋"
		}
		if i == m.fieldCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-8s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-8s", name)) + dim.Render(val) + "\n")
		}
	}
	if m.producer != nil && m.producer.Family() == produce.FamilyGraph {
		cfg := m.cfg
		if p := config.GetPreset(m.selected, "classic"); p != nil {
			cfg = p
		}
		b.WriteString("\n")
		for v, ns := range cfg.Input.Graph {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%d: %v", v, ns)) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  enter edit  s start  esc back") + "\n")
	if m.status != "" {
		b.WriteString("      " + yellow.Render(m.status) + "\n")
	}

	return b.String()
}

func (m *model) viewPlayer() string {
	var b strings.Builder

	status := m.eng.Status()
	statusIcon := green.Render("●")
	statusText := green.Render(status.String())
	switch status {
	case engine.StatusPaused:
		statusIcon = yellow.Render("○")
		statusText = yellow.Render(status.String())
	case engine.StatusIdle:
		statusIcon = dim.Render("○")
		statusText = dim.Render(status.String())
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s\n", statusIcon, cyan.Render(m.selected), statusText))

	total := m.seq.Len()
	progress := 0.0
	if total > 1 {
		progress = float64(m.pos) / float64(total-1)
	}
	barWidth := 36
	filled := int(progress * float64(barWidth))
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	b.WriteString(fmt.Sprintf("   %s %s  %s\n\n",
		bar,
		dim.Render(fmt.Sprintf("%d/%d", m.pos+1, total)),
		dim.Render(fmt.Sprintf("%.2gx", m.eng.Speed()))))

	width := m.width - 16
	if width < 20 {
		width = 20
	}
	b.WriteString(render.Frame(m.cur, width))

	b.WriteString("\n")
	b.WriteString("   " + dim.Render(fmt.Sprintf("%d comparisons  %d mutations  %d frames",
		m.summary.Comparisons, m.summary.Mutations, m.summary.Frames)) + "\n")
	b.WriteString("\n" + dim.Render("   space pause  ←→ step  ±speed  r replay  s stop  q back") + "\n")

	return b.String()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}

func parseInts(text string) ([]int, error) {
	var values []int
	for _, p := range strings.Split(text, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad number: %q", p)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no numbers in %q", text)
	}
	return values, nil
}

// RunInteractive starts the full-screen player. The engine posts every
// position change back into the program loop as a message.
func RunInteractive(cfg *config.Config) error {
	m := newModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.eng.AddListener(func(pos int, f frame.Frame) {
		p.Send(frameMsg{pos: pos, f: f})
	})
	_, err := p.Run()
	m.eng.Stop()
	return err
}
