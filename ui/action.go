package ui

import "github.com/garaekz/tuigfx/xy"

// ActionKind is the tag of the Action sum type: exactly one of these
// describes what happened.
type ActionKind int

const (
	ActionKeyPress ActionKind = iota
	ActionKeyRelease
	ActionMousePress
	ActionMouseRelease
	ActionMouseMove
	ActionRedraw
	ActionClosed
	ActionPaused
	ActionUnpaused
	ActionUnknown
	ActionError
)

// Action is the single event type IO backends produce and attachments
// consume. Only one of its fields is meaningful at a time, selected by Kind.
type Action struct {
	Kind   ActionKind
	Key    Key
	Button MouseButton
	Pos    xy.XY
	Text   string // payload for ActionUnknown / ActionError
}

func KeyPress(k Key) Action   { return Action{Kind: ActionKeyPress, Key: k} }
func KeyRelease(k Key) Action { return Action{Kind: ActionKeyRelease, Key: k} }

func MousePress(b MouseButton, pos xy.XY) Action {
	return Action{Kind: ActionMousePress, Button: b, Pos: pos}
}

func MouseRelease(b MouseButton, pos xy.XY) Action {
	return Action{Kind: ActionMouseRelease, Button: b, Pos: pos}
}

func MouseMove(pos xy.XY) Action { return Action{Kind: ActionMouseMove, Pos: pos} }

func Redraw() Action   { return Action{Kind: ActionRedraw} }
func Closed() Action   { return Action{Kind: ActionClosed} }
func Paused() Action   { return Action{Kind: ActionPaused} }
func Unpaused() Action { return Action{Kind: ActionUnpaused} }
func Unknown(s string) Action { return Action{Kind: ActionUnknown, Text: s} }
func Err(s string) Action     { return Action{Kind: ActionError, Text: s} }

// IsMouse reports whether this action carries a screen position.
func (a Action) IsMouse() bool {
	switch a.Kind {
	case ActionMousePress, ActionMouseRelease, ActionMouseMove:
		return true
	default:
		return false
	}
}

// Position returns the action's screen coordinate, if it has one.
func (a Action) Position() (xy.XY, bool) {
	if !a.IsMouse() {
		return xy.XY{}, false
	}
	return a.Pos, true
}

// WithPosition returns a copy of a mouse action translated to a new
// position. Non-mouse actions are returned unchanged.
func (a Action) WithPosition(pos xy.XY) Action {
	if !a.IsMouse() {
		return a
	}
	a.Pos = pos
	return a
}
