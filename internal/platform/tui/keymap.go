package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/letter-workshop/internal/core"
)

// defaultGameKeys maps key names, as reported by tea.KeyMsg.String, to
// game actions.
var defaultGameKeys = map[string]core.Action{
	"w": core.ActionUp, "up": core.ActionUp,
	"s": core.ActionDown, "down": core.ActionDown,
	"a": core.ActionLeft, "left": core.ActionLeft,
	"d": core.ActionRight, "right": core.ActionRight,
	" ":     core.ActionJump,
	"enter": core.ActionConfirm,
	"b":     core.ActionBack, "esc": core.ActionBack,
	"p": core.ActionPause,
	"r": core.ActionRestart,
	"q": core.ActionQuit, "ctrl+c": core.ActionQuit,
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	game := make(map[string]core.Action, len(defaultGameKeys))
	for k, a := range defaultGameKeys {
		game[k] = a
	}
	return &KeyMapper{game: game}
}

// Bind maps an extra key to a game action, replacing any previous binding
// of that key. ctrl+c always quits.
func (km *KeyMapper) Bind(key string, a core.Action) {
	if key == "ctrl+c" {
		return
	}
	if a == core.ActionNone {
		delete(km.game, key)
		return
	}
	km.game[key] = a
}

// MapKey returns the game action for a key and whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	a, ok := km.game[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return a, a == core.ActionQuit
}

// MapKeyToFrame records the key's action on frame. Returns true for quit keys.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MenuAction is a navigation action in the menus.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"w": MenuActionUp, "up": MenuActionUp, "k": MenuActionUp,
	"s": MenuActionDown, "down": MenuActionDown, "j": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"b": MenuActionBack, "esc": MenuActionBack,
	"tab": MenuActionScoreboard,
	"q":   MenuActionQuit, "ctrl+c": MenuActionQuit,
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return menuKeys[msg.String()]
}
