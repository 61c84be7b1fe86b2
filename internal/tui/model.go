// Package tui provides the Bubble Tea quiz interface.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/dogruyaz/internal/bank"
	"github.com/verte-zerg/dogruyaz/internal/game"
	"github.com/verte-zerg/dogruyaz/internal/model"
	"github.com/verte-zerg/dogruyaz/internal/stats"
)

type screen int

const (
	screenHome screen = iota
	screenCategories
	screenGame
	screenScores
)

const (
	homePlay = iota
	homeScores
	homeQuit
)

var homeItems = []string{"Oyna", "Skorlar", "Çıkış"}

// ScoreStore is what the UI needs from the score history.
type ScoreStore interface {
	game.Recorder
	stats.Loader
	Reset(ctx context.Context)
}

// Options configures a Model.
type Options struct {
	Bank      bank.Bank
	Picker    game.Picker
	Scores    ScoreStore
	Questions int
	// StartCategory opens a game immediately when set.
	StartCategory model.Category
	Log           logrus.FieldLogger
}

// Model implements the Bubble Tea quiz UI.
type Model struct {
	bank      bank.Bank
	picker    game.Picker
	scores    ScoreStore
	questions int
	log       logrus.FieldLogger

	keys keyMap
	help help.Model

	stack  []screen
	width  int
	height int

	homeCursor int
	catCursor  int
	categories []model.Category

	session     *game.Session
	choice      int
	showResults bool
	errMsg      string

	report       stats.Report
	confirmReset bool
	viewport     viewport.Model
}

// NewModel constructs the quiz UI model.
func NewModel(opts Options) *Model {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	questions := opts.Questions
	if questions <= 0 {
		questions = game.DefaultQuestions
	}
	m := &Model{
		bank:       opts.Bank,
		picker:     opts.Picker,
		scores:     opts.Scores,
		questions:  questions,
		log:        log,
		keys:       defaultKeyMap(),
		help:       help.New(),
		stack:      []screen{screenHome},
		categories: opts.Bank.Categories(),
		viewport:   viewport.New(0, 0),
	}
	if opts.StartCategory != "" {
		m.startGame(opts.StartCategory)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeViewport()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.current() {
		case screenHome:
			return m.updateHome(msg)
		case screenCategories:
			return m.updateCategories(msg)
		case screenGame:
			return m.updateGame(msg)
		case screenScores:
			return m.updateScores(msg)
		}
	}
	return m, nil
}

func (m *Model) current() screen {
	return m.stack[len(m.stack)-1]
}

// navigate pops back to s when it is already on the stack, otherwise pushes it.
func (m *Model) navigate(s screen) {
	for i, existing := range m.stack {
		if existing == s {
			m.stack = m.stack[:i+1]
			return
		}
	}
	m.stack = append(m.stack, s)
}

func (m *Model) back() {
	if len(m.stack) > 1 {
		m.stack = m.stack[:len(m.stack)-1]
	}
}

func (m *Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.homeCursor = clamp(m.homeCursor-1, len(homeItems))
	case key.Matches(msg, m.keys.Down):
		m.homeCursor = clamp(m.homeCursor+1, len(homeItems))
	case key.Matches(msg, m.keys.Scores):
		m.openScores()
	case key.Matches(msg, m.keys.Select):
		switch m.homeCursor {
		case homePlay:
			m.errMsg = ""
			m.navigate(screenCategories)
		case homeScores:
			m.openScores()
		case homeQuit:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) updateCategories(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.catCursor = clamp(m.catCursor-1, len(m.categories))
	case key.Matches(msg, m.keys.Down):
		m.catCursor = clamp(m.catCursor+1, len(m.categories))
	case key.Matches(msg, m.keys.Select):
		if len(m.categories) > 0 {
			m.startGame(m.categories[m.catCursor])
		}
	case key.Matches(msg, m.keys.Back):
		m.back()
	}
	return m, nil
}

func (m *Model) startGame(cat model.Category) {
	session, err := game.Start(m.bank, m.picker, cat, m.questions)
	if err != nil {
		m.log.WithError(err).WithField("category", cat).Warn("failed to start game")
		m.errMsg = "Bu kategoride soru bulunamadı: " + cat.Name()
		return
	}
	m.errMsg = ""
	m.session = session
	m.choice = 0
	m.showResults = false
	m.navigate(screenGame)
}

func (m *Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showResults {
		switch {
		case key.Matches(msg, m.keys.Scores):
			m.openScores()
		case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Back):
			m.navigate(screenHome)
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Back) {
		m.back()
		return m, nil
	}

	switch m.session.Phase() {
	case game.Asking:
		switch {
		case key.Matches(msg, m.keys.First):
			m.answer(1)
		case key.Matches(msg, m.keys.Second):
			m.answer(2)
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.choice = 1 - m.choice
		case key.Matches(msg, m.keys.Select):
			m.answer(m.choice + 1)
		}
	case game.Feedback:
		if key.Matches(msg, m.keys.Select) {
			m.next()
		}
	}
	return m, nil
}

func (m *Model) answer(choice int) {
	if _, err := m.session.Answer(choice); err != nil {
		m.log.WithError(err).Debug("answer ignored")
	}
}

func (m *Model) next() {
	done, err := m.session.Next()
	if err != nil {
		m.log.WithError(err).Debug("next ignored")
		return
	}
	m.choice = 0
	if !done {
		return
	}
	if _, err := m.session.Save(context.Background(), m.scores); err != nil {
		m.log.WithError(err).Warn("failed to record session")
	}
	m.showResults = true
}

func (m *Model) openScores() {
	m.report = stats.BuildReport(context.Background(), m.scores, "")
	m.confirmReset = false
	m.navigate(screenScores)
	m.refreshViewport()
}

func (m *Model) updateScores(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmReset {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.scores.Reset(context.Background())
			// The view is cleared even if the delete failed.
			m.report = stats.Report{}
			m.confirmReset = false
			m.refreshViewport()
		case key.Matches(msg, m.keys.Cancel):
			m.confirmReset = false
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Reset):
		m.confirmReset = true
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.back()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) resizeViewport() {
	m.viewport.Width = m.width
	height := m.height - 4
	if height < 1 {
		height = 1
	}
	m.viewport.Height = height
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(renderScores(m.report, m.width))
	m.viewport.GotoTop()
}

func clamp(v, n int) int {
	if n <= 0 || v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
