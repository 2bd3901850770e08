package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// PlayAction is an in-run action derived from input.
type PlayAction int

const (
	PlayActionNone PlayAction = iota
	PlayActionJump
	PlayActionRestart
	PlayActionPause
	PlayActionBack
	PlayActionQuit
	PlayActionHitboxes
)

// MenuAction is a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// EditAction is an editor-specific action derived from input.
type EditAction int

const (
	EditActionNone EditAction = iota
	EditActionUp
	EditActionDown
	EditActionLeft
	EditActionRight
	EditActionPlace
	EditActionRemove
	EditActionRotate
	EditActionNextKind
	EditActionPrevKind
	EditActionTest
	EditActionSave
	EditActionLonger
	EditActionShorter
	EditActionToggleMode
	EditActionHitboxes
	EditActionQuit
)

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToPlayAction translates a key to an in-run action.
func (km *KeyMapper) MapKeyToPlayAction(msg tea.KeyMsg) PlayAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return PlayActionQuit
	case " ", "w", "up", "k":
		return PlayActionJump
	case "r":
		return PlayActionRestart
	case "p":
		return PlayActionPause
	case "b", "esc":
		return PlayActionBack
	case "x":
		return PlayActionHitboxes
	}
	return PlayActionNone
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// MapKeyToEditAction translates a key to an editor action.
func (km *KeyMapper) MapKeyToEditAction(msg tea.KeyMsg) EditAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return EditActionQuit
	case "w", "up", "k":
		return EditActionUp
	case "s", "down", "j":
		return EditActionDown
	case "a", "left", "h":
		return EditActionLeft
	case "d", "right", "l":
		return EditActionRight
	case "enter", " ":
		return EditActionPlace
	case "backspace", "delete", "e":
		return EditActionRemove
	case "r":
		return EditActionRotate
	case "tab", "]":
		return EditActionNextKind
	case "shift+tab", "[":
		return EditActionPrevKind
	case "t":
		return EditActionTest
	case "ctrl+s", "o":
		return EditActionSave
	case "+", "=":
		return EditActionLonger
	case "-":
		return EditActionShorter
	case "g":
		return EditActionToggleMode
	case "x":
		return EditActionHitboxes
	}
	return EditActionNone
}
