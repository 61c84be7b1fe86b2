package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/dogruyaz/internal/bank"
	"github.com/verte-zerg/dogruyaz/internal/game"
	"github.com/verte-zerg/dogruyaz/internal/scores"
	"github.com/verte-zerg/dogruyaz/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4CAF50")).
			Bold(true).
			Padding(0, 2)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4CAF50"))
	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B0B0B0")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	goodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	mediumStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA000")).Bold(true)
	badStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#007AFF")).Bold(true)
	modalStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#FF3B30")).
			Padding(1, 2)
)

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.current() {
	case screenHome:
		body = m.homeView()
	case screenCategories:
		body = m.categoriesView()
	case screenGame:
		if m.showResults {
			body = m.resultsView()
		} else {
			body = m.gameView()
		}
	case screenScores:
		body = m.scoresView()
	}
	footer := m.help.ShortHelpView(m.helpBindings())
	if m.width == 0 || m.height == 0 {
		return body + "\n\n" + footer
	}
	if m.current() == screenScores && !m.confirmReset {
		return body + "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
	}
	bodyHeight := m.height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	return placed + "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
}

func (m *Model) helpBindings() []key.Binding {
	switch m.current() {
	case screenHome:
		return []key.Binding{m.keys.Up, m.keys.Select, m.keys.Scores, m.keys.Quit}
	case screenCategories:
		return []key.Binding{m.keys.Up, m.keys.Select, m.keys.Back, m.keys.Quit}
	case screenGame:
		if m.showResults {
			return []key.Binding{m.keys.Scores, m.keys.Select, m.keys.Quit}
		}
		if m.session != nil && m.session.Phase() == game.Feedback {
			return []key.Binding{m.keys.Select, m.keys.Back, m.keys.Quit}
		}
		return []key.Binding{m.keys.First, m.keys.Second, m.keys.Select, m.keys.Back}
	case screenScores:
		if m.confirmReset {
			return []key.Binding{m.keys.Confirm, m.keys.Cancel}
		}
		return []key.Binding{m.keys.Reset, m.keys.Back, m.keys.Quit}
	}
	return nil
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	w := int(float64(m.width) * 0.70)
	if w > 72 {
		w = 72
	}
	if w < 10 {
		w = 10
	}
	return w
}

func (m *Model) homeView() string {
	lines := []string{
		titleStyle.Render("Doğru Yaz"),
		subtitleStyle.Render("Doğru bilinen yanlışları keşfet"),
		"",
	}
	for i, item := range homeItems {
		lines = append(lines, menuItem(item, i == m.homeCursor))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) categoriesView() string {
	lines := []string{titleStyle.Render("Kategoriler"), ""}
	width := m.contentWidth()
	for i, cat := range m.categories {
		text := cat.Title() + "\n" + subtitleStyle.Render(wrapText(cat.Description(), width-4))
		style := itemStyle
		if i == m.catCursor {
			style = selectedStyle
		}
		lines = append(lines, style.Width(width).Render(text))
	}
	if m.errMsg != "" {
		lines = append(lines, "", badStyle.Render(m.errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) gameView() string {
	s := m.session
	width := m.contentWidth()
	header := fmt.Sprintf("Soru: %d/%d    Skor: %d", s.Index()+1, s.Total(), s.Score())
	q := s.Current()
	lines := []string{
		mutedStyle.Render(header),
		"",
		questionStyle.Render(wrapText(q.Text, width)),
		"",
	}
	if s.Phase() == game.Feedback {
		if s.LastCorrect() {
			lines = append(lines, goodStyle.Render("✓ Doğru Cevap!"))
		} else {
			lines = append(lines, badStyle.Render("✗ Yanlış Cevap!"))
		}
		if q.Explanation != "" {
			lines = append(lines, "", wrapText(q.Explanation, width))
		}
		lines = append(lines, "", mutedStyle.Render("Devam etmek için enter"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	opts := s.Options()
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		menuItem("1  "+opts[0], m.choice == 0),
		"  ",
		menuItem("2  "+opts[1], m.choice == 1),
	)
	lines = append(lines, buttons)
	if bank.IsTwoOption(s.Category()) {
		lines = append(lines, mutedStyle.Render("Doğru yazılışı seç"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) resultsView() string {
	s := m.session
	pct := s.Percentage()
	lines := []string{
		goodStyle.Render("Tebrikler!"),
		subtitleStyle.Render(s.Category().Name()),
		"",
		bandStyle(pct).Render(fmt.Sprintf("%d%%", pct)),
		scoreStyle.Render(fmt.Sprintf("%d/%d", s.Score(), s.Total())),
		"",
		game.ResultMessage(pct),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) scoresView() string {
	header := titleStyle.Render("Skorlar")
	if m.confirmReset {
		modal := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			questionStyle.Render("Skorları Sıfırla"),
			"",
			"Tüm skorlar silinecek. Emin misiniz?",
		))
		return lipgloss.JoinVertical(lipgloss.Center, header, "", modal)
	}
	if m.height == 0 {
		return header + "\n\n" + renderScores(m.report, m.width)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header) + "\n\n" + m.viewport.View()
}

// renderScores lists each category with its average and records.
func renderScores(report stats.Report, width int) string {
	if report.Empty() {
		return center(subtitleStyle.Render(stats.EmptyMessage), width)
	}
	var b strings.Builder
	for i, cat := range report.Categories {
		if i > 0 {
			b.WriteString("\n")
		}
		title := questionStyle.Render(cat.Category.Name())
		avg := bandStyle(cat.Average).Render(fmt.Sprintf("Ortalama: %%%d", cat.Average))
		b.WriteString(center(title+"   "+avg, width))
		b.WriteString("\n")
		for _, rec := range cat.Records {
			pct := scores.Percentage(rec)
			row := fmt.Sprintf("%s   %s   %s",
				mutedStyle.Render(rec.Date),
				scoreStyle.Render(fmt.Sprintf("%5s", fmt.Sprintf("%d/%d", rec.Score, rec.Total))),
				bandStyle(pct).Render(fmt.Sprintf("%%%d", pct)),
			)
			b.WriteString(center(row, width))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func center(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func bandStyle(pct int) lipgloss.Style {
	switch scores.BandFor(pct) {
	case scores.BandGood:
		return goodStyle
	case scores.BandMedium:
		return mediumStyle
	default:
		return badStyle
	}
}

func menuItem(label string, selected bool) string {
	if selected {
		return selectedStyle.Render(label)
	}
	return itemStyle.Render(label)
}
