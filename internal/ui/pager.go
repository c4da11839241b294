// Package ui provides the interactive pager behind `recentlog view`.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PagerConfig configures the pager.
type PagerConfig struct {
	Path    string
	ModTime time.Time
	Content string
	NoColor bool
	Input   io.Reader
	Output  io.Writer
}

// pagerModel is the bubbletea model for a single scrollable document.
type pagerModel struct {
	path     string
	modTime  time.Time
	content  string
	styles   Styles
	viewport viewport.Model
	ready    bool
}

func newPagerModel(cfg PagerConfig) *pagerModel {
	styles := GetStyles(cfg.NoColor)
	return &pagerModel{
		path:    cfg.Path,
		modTime: cfg.ModTime,
		content: strings.TrimSuffix(cfg.Content, "\n"),
		styles:  styles,
	}
}

// Init implements tea.Model.
func (m *pagerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		bodyHeight := msg.Height - lipgloss.Height(m.headerView(msg.Width)) - lipgloss.Height(m.footerView(msg.Width))
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.viewport.SetContent(m.content)
			// Newest entries are at the end of a log.
			m.viewport.GotoBottom()
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *pagerModel) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	return fmt.Sprintf("%s\n%s\n%s",
		m.headerView(m.viewport.Width),
		m.viewport.View(),
		m.footerView(m.viewport.Width))
}

func (m *pagerModel) headerView(width int) string {
	title := m.styles.Title.Render(filepath.Base(m.path))
	modified := m.styles.Label.Render("modified " + m.modTime.Format("2006-01-02 15:04:05"))
	line := title + "  " + modified
	return line + "\n" + m.rule(width)
}

func (m *pagerModel) footerView(width int) string {
	percent := 100.0
	if m.ready {
		percent = m.viewport.ScrollPercent() * 100
	}
	info := m.styles.Footer.Render(fmt.Sprintf("%3.0f%%", percent))
	keys := m.styles.Dim.Render("q quit • g/G top/bottom • ↑/↓ scroll")
	return m.rule(width) + "\n" + keys + "  " + info
}

func (m *pagerModel) rule(width int) string {
	if width < 1 {
		width = 1
	}
	return m.styles.Border.Render(strings.Repeat("─", width))
}

// RunPager shows cfg.Content in a full-screen pager until the user quits
// or ctx is cancelled.
func RunPager(ctx context.Context, cfg PagerConfig) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Input != nil {
		opts = append(opts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		opts = append(opts, tea.WithOutput(cfg.Output))
	} else {
		opts = append(opts, tea.WithOutput(os.Stdout))
	}

	_, err := tea.NewProgram(newPagerModel(cfg), opts...).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
