package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letter-workshop/internal/core"
	"github.com/vovakirdan/letter-workshop/internal/games/letters"
	"github.com/vovakirdan/letter-workshop/internal/games/letters/levels"
)

// LevelItem is one entry of the level picker.
type LevelItem struct {
	ID       string
	Name     string
	Target   string
	Pickups  int
	Conveyor bool
}

// Title implements list.DefaultItem.
func (it LevelItem) Title() string { return it.Name }

// Description implements list.DefaultItem.
func (it LevelItem) Description() string {
	d := fmt.Sprintf("spell %s  ·  %d letters", it.Target, it.Pickups)
	if it.Conveyor {
		d += "  ·  conveyor"
	}
	return d
}

// FilterValue implements list.Item; filtering matches name and target.
func (it LevelItem) FilterValue() string { return it.Name + " " + it.Target }

func levelItem(l levels.Level) LevelItem {
	return LevelItem{
		ID:       l.ID,
		Name:     l.Name,
		Target:   l.Target,
		Pickups:  len(l.Pickups),
		Conveyor: l.Moving != nil,
	}
}

// LetterLevelItems lists the letter collector levels from the active loader.
func LetterLevelItems() []LevelItem {
	lvls, err := letters.Levels()
	if err != nil {
		log.Warn("cannot list levels", "error", err)
		return nil
	}
	items := make([]LevelItem, len(lvls))
	for i, l := range lvls {
		items[i] = levelItem(l)
	}
	return items
}

// LevelMenuModel is the level picker for the letter collector. Typing /
// filters levels by name or target word.
type LevelMenuModel struct {
	list      list.Model
	keyMapper *KeyMapper
	selected  *LevelItem
	quitting  bool
	back      bool
}

// NewLevelMenuModel creates a level picker over the given items.
func NewLevelMenuModel(items []LevelItem, width, height int) LevelMenuModel {
	theme := GetTheme()

	entries := make([]list.Item, len(items))
	for i, it := range items {
		entries[i] = it
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.MenuItemActive.GetForeground()).
		BorderForeground(theme.MenuItemActive.GetForeground())
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(theme.MenuTarget.GetForeground()).
		BorderForeground(theme.MenuItemActive.GetForeground())

	l := list.New(entries, delegate, width, height)
	l.Title = "L E V E L S"
	l.Styles.Title = theme.MenuTitle.Padding(0, 1)
	l.SetShowStatusBar(len(items) > 1)
	l.SetStatusBarItemName("level", "levels")
	l.DisableQuitKeybindings()

	return LevelMenuModel{list: l, keyMapper: NewKeyMapper()}
}

// Init implements tea.Model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// While the filter prompt is open every key belongs to it
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			if m.list.FilterState() == list.FilterApplied {
				m.list.ResetFilter()
				return m, nil
			}
			m.back = true
			return m, tea.Quit
		case MenuActionSelect:
			if it, ok := m.list.SelectedItem().(LevelItem); ok {
				m.selected = &it
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m LevelMenuModel) View() string {
	if m.quitting || m.back || m.selected != nil {
		return ""
	}
	return "\n" + m.list.View()
}

// Selected returns the chosen level, or nil if none was chosen.
func (m LevelMenuModel) Selected() *LevelItem { return m.selected }

// IsQuitting reports whether the user asked to quit.
func (m LevelMenuModel) IsQuitting() bool { return m.quitting }

// WantsBack reports whether the user backed out to the game menu.
func (m LevelMenuModel) WantsBack() bool { return m.back }

// RunLevelSelector runs the level picker and returns the chosen level ID.
// An empty ID means the player backed out; quit is set when they asked to exit.
func RunLevelSelector(cfg core.RuntimeConfig) (id string, quit bool, err error) {
	final, err := tea.NewProgram(
		NewLevelMenuModel(LetterLevelItems(), cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return "", false, err
	}

	m, ok := final.(LevelMenuModel)
	if !ok || m.IsQuitting() {
		return "", true, nil
	}
	if m.Selected() == nil {
		return "", false, nil
	}
	return m.Selected().ID, false, nil
}
