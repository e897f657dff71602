package hal

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"particlehero/internal/buildinfo"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

// TerminalConfig controls the terminal host.
type TerminalConfig struct {
	FPS   int
	Title string
	// WheelStep is the scroll distance of one wheel notch, in dots.
	WheelStep float64
}

var (
	termStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	termTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB300"))
	termErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
)

// RunTerminal renders the surface as braille in the terminal and forwards
// mouse motion, buttons and wheel. Each cell is 2x4 surface pixels. It blocks
// until the user quits.
func RunTerminal(newApp func(HAL) (func() error, error), cfg TerminalConfig) error {
	tail := &lastLine{}
	h := newHostHAL(160, 96, 1, tail)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	m := newTermModel(h, step, tail, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if fm, ok := final.(*termModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

type termTickMsg time.Time

type termModel struct {
	h    *hostHAL
	step func() error
	tail *lastLine
	cfg  TerminalConfig

	cols, rows int
	braille    *brailleRenderer
	frame      []byte

	// Wheel notches are eased into a stream of small deltas.
	spring      harmonica.Spring
	wheelPos    float64
	wheelVel    float64
	wheelTarget float64

	err error
}

func newTermModel(h *hostHAL, step func() error, tail *lastLine, cfg TerminalConfig) *termModel {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	if cfg.WheelStep <= 0 {
		cfg.WheelStep = 100
	}
	if cfg.Title == "" {
		cfg.Title = "Particle Hero"
	}
	return &termModel{
		h:       h,
		step:    step,
		tail:    tail,
		cfg:     cfg,
		braille: newBrailleRenderer(),
		spring:  harmonica.NewSpring(harmonica.FPS(cfg.FPS), 8.0, 1.0),
	}
}

func (m *termModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return termTickMsg(t)
	})
}

func (m *termModel) Init() tea.Cmd { return m.tick() }

func (m *termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height - 1
		if m.rows < 1 {
			m.rows = 1
		}
		m.h.resize(m.cols*2, m.rows*4, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.h.input.push(Event{Kind: EventReset})
		}
		return m, nil

	case tea.MouseMsg:
		m.mouse(msg)
		return m, nil

	case termTickMsg:
		m.easeWheel()
		if m.step != nil {
			if err := m.step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		m.frame = m.h.fb.snapshot(m.frame)
		return m, m.tick()
	}
	return m, nil
}

func (m *termModel) mouse(msg tea.MouseMsg) {
	// Center of the cell in surface pixels.
	x := float64(msg.X*2 + 1)
	y := float64(msg.Y*4 + 2)
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.wheelTarget -= m.cfg.WheelStep
		case tea.MouseButtonWheelDown:
			m.wheelTarget += m.cfg.WheelStep
		case tea.MouseButtonLeft:
			m.h.input.push(Event{Kind: EventPointerDown, X: x, Y: y})
		}
	case tea.MouseActionRelease:
		m.h.input.push(Event{Kind: EventPointerUp, X: x, Y: y})
	case tea.MouseActionMotion:
		m.h.input.push(Event{Kind: EventPointerMove, X: x, Y: y})
	}
}

// easeWheel advances the wheel spring one frame and queues the distance
// travelled as a wheel event.
func (m *termModel) easeWheel() {
	if m.wheelPos == m.wheelTarget && m.wheelVel == 0 {
		return
	}
	prev := m.wheelPos
	m.wheelPos, m.wheelVel = m.spring.Update(m.wheelPos, m.wheelVel, m.wheelTarget)
	if math.Abs(m.wheelTarget-m.wheelPos) < 0.5 && math.Abs(m.wheelVel) < 0.5 {
		m.wheelPos, m.wheelVel = m.wheelTarget, 0
	}
	if d := m.wheelPos - prev; d != 0 {
		m.h.input.push(Event{Kind: EventWheel, DeltaY: d})
	}
}

func (m *termModel) View() string {
	if m.cols == 0 || m.rows == 0 {
		return "starting..."
	}
	w, h := m.h.fb.Width(), m.h.fb.Height()
	offset := int(math.Round(m.h.page.ScrollY()))
	var b strings.Builder
	b.WriteString(m.braille.render(m.frame, w, h, m.cols, m.rows, offset))
	b.WriteByte('\n')
	b.WriteString(m.status())
	return b.String()
}

func (m *termModel) status() string {
	if m.err != nil {
		return termErrorStyle.Render("error: " + m.err.Error())
	}
	s := termTitleStyle.Render(m.cfg.Title) + " " +
		termStatusStyle.Render(buildinfo.Short()+"  drag rotate  wheel zoom  r reset  q quit")
	if line := m.tail.String(); line != "" {
		s += termStatusStyle.Render("  " + line)
	}
	return lipgloss.NewStyle().MaxWidth(m.cols).Render(s)
}

// lastLine keeps the most recent complete log line so logging does not tear
// the terminal view.
type lastLine struct {
	mu   sync.Mutex
	line string
}

func (l *lastLine) Write(p []byte) (int, error) {
	s := string(bytes.TrimRight(p, "\n"))
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	if s == "" {
		return len(p), nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.line = s
	return len(p), nil
}

func (l *lastLine) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.line
}
