// Package presenter is the interactive slide host: it loads a document,
// owns the current-slide index, and repaints the slide on every move.
package presenter

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"slidedeck/internal/paint"
	"slidedeck/pkg/deck"
	"slidedeck/pkg/render"
)

// Model is the bubbletea model of the presenter.
type Model struct {
	path     string
	parser   *deck.Parser
	deck     deck.Deck
	nav      Navigator
	painter  *paint.Painter
	renderer *glamour.TermRenderer
	progress progress.Model
	help     help.Model
	keys     keyMap
	logger   zerolog.Logger

	width    int
	height   int
	wordWrap int
	offset   int
	title    string
	status   string

	watch      bool
	watcher    *fsnotify.Watcher
	copy       func(string) error
	loaded     bool
	showSource bool
	showThumbs bool
	err        error
}

// Option configures a Model.
type Option func(*Model)

// WithParser sets the deck parser.
func WithParser(p *deck.Parser) Option {
	return func(m *Model) {
		m.parser = p
	}
}

// WithLogger sets the presenter's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithWatch reloads the deck whenever the document changes on disk.
func WithWatch(watch bool) Option {
	return func(m *Model) {
		m.watch = watch
	}
}

// WithWordWrap caps the source view width. Zero follows the terminal.
func WithWordWrap(n int) Option {
	return func(m *Model) {
		m.wordWrap = n
	}
}

// WithTitle overrides the status bar title.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// WithClipboard replaces the clipboard writer used by the copy key.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		m.copy = fn
	}
}

// New returns a presenter for the document at path.
func New(path string, opts ...Option) Model {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	m := Model{
		path:     path,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		keys:     defaultKeyMap(),
		logger:   zerolog.Nop(),
		copy:     clipboard.WriteAll,
		painter:  paint.New(80, 22),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.parser == nil {
		m.parser = deck.NewParser(deck.WithLogger(m.logger))
	}
	return m
}

// Run starts the presenter on the alternate screen and blocks until quit.
func Run(path string, opts ...Option) error {
	p := tea.NewProgram(New(path, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Index returns the current slide index.
func (m Model) Index() int { return m.nav.Index() }

// Deck returns the loaded deck.
func (m Model) Deck() deck.Deck { return m.deck }

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadDeck(m.path, m.parser)}
	if m.watch {
		cmds = append(cmds, startWatch(m.path))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case deckLoadedMsg:
		m.deck = msg.deck
		m.nav = m.nav.Resize(msg.deck.Len())
		m.loaded = true
		m.err = nil
		m.logger.Info().
			Str("path", m.path).
			Int("slides", m.deck.Len()).
			Str("theme", m.deck.Theme.ID).
			Msg("deck loaded")
		return m, m.progress.SetPercent(m.nav.Percent())

	case errMsg:
		m.logger.Error().Err(msg.err).Str("path", m.path).Msg("load failed")
		if m.loaded {
			m.status = "reload failed: " + msg.err.Error()
			return m, nil
		}
		m.err = msg.err
		return m, nil

	case watchStartedMsg:
		m.watcher = msg.watcher
		return m, waitForChange(m.watcher, m.path)

	case fileChangedMsg:
		m.logger.Debug().Str("path", m.path).Msg("document changed")
		return m, tea.Batch(loadDeck(m.path, m.parser), waitForChange(m.watcher, m.path))

	case watchErrMsg:
		m.logger.Warn().Err(msg.err).Msg("watch error")
		m.status = "watch: " + msg.err.Error()
		if m.watcher != nil {
			return m, waitForChange(m.watcher, m.path)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	before := m.nav.Index()

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.nav = m.nav.Next()
	case key.Matches(msg, m.keys.Prev):
		m.nav = m.nav.Prev()
	case key.Matches(msg, m.keys.First):
		m.nav = m.nav.Start()
	case key.Matches(msg, m.keys.Last):
		m.nav = m.nav.End()
	case key.Matches(msg, m.keys.Jump):
		n, _ := strconv.Atoi(msg.String())
		m.nav = m.nav.Jump(n - 1)
	case key.Matches(msg, m.keys.Down):
		if s, ok := m.current(); ok && m.offset < m.painter.MaxOffset(render.Render(s, m.deck.Theme)) {
			m.offset++
		}
	case key.Matches(msg, m.keys.Up):
		m.offset = max(m.offset-1, 0)
	case key.Matches(msg, m.keys.Source):
		m.showSource = !m.showSource
	case key.Matches(msg, m.keys.Thumbs):
		m.showThumbs = !m.showThumbs
		m.resize()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, m.keys.Copy):
		m.copySource()
	}

	if m.nav.Index() != before {
		m.offset = 0
		return m, m.progress.SetPercent(m.nav.Percent())
	}
	return m, nil
}

func (m *Model) copySource() {
	s, ok := m.current()
	if !ok {
		return
	}
	if err := m.copy(s.Content); err != nil {
		m.logger.Warn().Err(err).Msg("clipboard write failed")
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("copied slide %d", m.nav.Index()+1)
}

// resize recomputes everything that depends on the window size.
func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.painter = paint.New(m.width, max(m.contentHeight(), 1))

	wrap := m.width - 4 // Leave some margin
	if m.wordWrap > 0 && m.wordWrap < wrap {
		wrap = m.wordWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(wrap, 10)),
	)
	if err != nil {
		m.logger.Warn().Err(err).Msg("markdown renderer unavailable")
	}
	m.renderer = r

	m.progress.Width = m.width - 4 // Leave some margin
	m.help.Width = m.width
}

// contentHeight is the window height left after the bottom bars.
func (m Model) contentHeight() int {
	h := m.height - 2
	if m.showThumbs {
		h--
	}
	return h - lipgloss.Height(m.help.View(m.keys))
}

func (m Model) current() (deck.Slide, bool) {
	if m.deck.Len() == 0 {
		return deck.Slide{}, false
	}
	return m.deck.Slides[m.nav.Index()], true
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress 'q' to quit.", m.err)
	}

	if !m.loaded {
		return "Loading slides...\n\nPress 'q' to quit."
	}

	s, ok := m.current()
	if !ok {
		return fmt.Sprintf("No slides in %s\n\nPress 'q' to quit.", m.path)
	}

	var content string
	if m.showSource {
		content = m.sourceView(s)
	} else {
		p := *m.painter
		p.Offset = m.offset
		content = p.Paint(render.Render(s, m.deck.Theme))
	}

	contentHeight := m.contentHeight()
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if contentHeight > 0 && len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}
	content = strings.Join(lines, "\n")
	if contentHeight > len(lines) {
		content += strings.Repeat("\n", contentHeight-len(lines))
	}

	parts := []string{content}
	if m.showThumbs {
		parts = append(parts, m.thumbnails())
	}
	parts = append(parts, m.statusLine(), m.progress.View(), m.help.View(m.keys))
	return strings.Join(parts, "\n")
}

func (m Model) sourceView(s deck.Slide) string {
	src := strings.ReplaceAll(s.Content, deck.SplitMarker, "::right::")
	if m.renderer == nil {
		return src
	}
	out, err := m.renderer.Render(src)
	if err != nil {
		return "Error rendering markdown: " + err.Error()
	}
	return out
}

var (
	thumbStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	currentThumb = lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230"))
)

// thumbnails draws the numbered slide strip, windowed around the current
// slide when it does not fit.
func (m Model) thumbnails() string {
	cur := m.nav.Index()
	cell := len(strconv.Itoa(m.deck.Len())) + 2
	fit := m.deck.Len()
	if m.width > 0 {
		fit = max(m.width/cell, 1)
	}
	start := min(max(cur-fit/2, 0), max(m.deck.Len()-fit, 0))
	end := min(start+fit, m.deck.Len())

	cells := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		label := fmt.Sprintf("%*d", cell-2, i+1)
		if i == cur {
			cells = append(cells, currentThumb.Render(label))
		} else {
			cells = append(cells, thumbStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) statusLine() string {
	slideInfo := fmt.Sprintf("Slide %d/%d", m.nav.Index()+1, m.deck.Len())
	if m.status != "" {
		slideInfo += "  " + m.status
	}

	titleText := m.title
	if titleText == "" {
		titleText = m.deck.Title()
	}
	if titleText == "" {
		titleText = filepath.Base(m.path)
	}

	statusStyle := lipgloss.NewStyle().
		Width(m.width).
		Background(lipgloss.Color("240")).
		Foreground(lipgloss.Color("15")).
		Padding(0, 1)

	// Calculate available width (account for padding)
	availableWidth := m.width - 4
	leftWidth := runewidth.StringWidth(slideInfo)

	// If text is too long, truncate the title
	if leftWidth+runewidth.StringWidth(titleText) > availableWidth {
		maxTitleWidth := availableWidth - leftWidth - 4
		if maxTitleWidth < 10 {
			titleText = ""
		} else {
			titleText = runewidth.Truncate(titleText, maxTitleWidth, "...")
		}
	}

	remainingSpace := availableWidth - leftWidth - runewidth.StringWidth(titleText)
	if remainingSpace > 0 {
		return statusStyle.Render(slideInfo + strings.Repeat(" ", remainingSpace+2) + titleText)
	}
	return statusStyle.Render(slideInfo + " " + titleText)
}
