package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letter-workshop/internal/core"
	"github.com/vovakirdan/letter-workshop/internal/registry"
	"github.com/vovakirdan/letter-workshop/internal/storage"
)

// MenuItem is one game in the picker.
type MenuItem struct {
	GameID string
	Title  string
	Scored bool
	Best   int // Best saved score, 0 when none or unscored
}

// badge is the short note shown to the right of the title.
func (it MenuItem) badge() string {
	switch {
	case !it.Scored:
		return "free roam"
	case it.Best > 0:
		return fmt.Sprintf("best %d", it.Best)
	default:
		return "no scores yet"
	}
}

// MenuModel is the game picker. Enter or a digit starts a game, Tab opens
// the scoreboard.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	theme     Theme

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered games with their best scores.
// store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	infos := registry.List()
	items := make([]MenuItem, len(infos))
	for i, info := range infos {
		items[i] = MenuItem{GameID: info.ID, Title: info.Title, Scored: info.Scored}
		if store == nil || !info.Scored {
			continue
		}
		best, err := store.HighScore(info.ID)
		if err != nil {
			log.Warn("cannot load best score", "game", info.ID, "error", err)
			continue
		}
		items[i].Best = best
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		theme:     GetTheme(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if n, ok := digitKey(msg); ok && n <= len(m.items) {
		m.cursor = n - 1
		return m.choose()
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.move(-1)
	case MenuActionDown:
		m.move(1)
	case MenuActionSelect:
		return m.choose()
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// move steps the cursor, wrapping at both ends.
func (m *MenuModel) move(delta int) {
	if n := len(m.items); n > 0 {
		m.cursor = (m.cursor + delta + n) % n
	}
}

func (m MenuModel) choose() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	item := m.items[m.cursor]
	m.selected = &item
	return m, tea.Quit
}

// digitKey returns n for the keys 1 through 9.
func digitKey(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := make([]string, 0, len(m.items))
	titleW := 0
	for _, it := range m.items {
		titleW = max(titleW, lipgloss.Width(it.Title))
	}
	for i, it := range m.items {
		style, marker := m.theme.MenuItemNormal, "  "
		if i == m.cursor {
			style, marker = m.theme.MenuItemActive, "> "
		}
		title := fmt.Sprintf("%s%d  %-*s", marker, i+1, titleW, it.Title)
		lines = append(lines, style.Render(title)+"   "+m.theme.MenuTarget.Render(it.badge()))
	}
	if len(lines) == 0 {
		lines = append(lines, m.theme.MenuDescription.Render("No games installed."))
	}

	list := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.TableBorder).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("W O R K S H O P"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("spell a name, or walk around the letters"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(list, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.HUDControls.Render("↑/↓ move  •  enter or 1-9 play  •  tab scores  •  q quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen game, or nil.
func (m MenuModel) Selected() *MenuItem { return m.selected }

// IsQuitting reports whether the user asked to quit.
func (m MenuModel) IsQuitting() bool { return m.quitting }

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool { return m.openScoreboard }

// Config returns the runtime config, updated by window resizes.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText pads a single line so it sits in the middle of width cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the standalone menu program decided.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the game picker in its own program.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.Selected() != nil:
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
