package ui

// KeyCode names a key that isn't just a printable character.
type KeyCode int

const (
	KeyChar KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyTab
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEsc
)

// Key is either a printable character (KeyChar, with Ch set) or one of the
// named control keys.
type Key struct {
	Code KeyCode
	Ch   rune
}

func Char(r rune) Key { return Key{Code: KeyChar, Ch: r} }

var (
	Left      = Key{Code: KeyLeft}
	Right     = Key{Code: KeyRight}
	Up        = Key{Code: KeyUp}
	Down      = Key{Code: KeyDown}
	Home      = Key{Code: KeyHome}
	End       = Key{Code: KeyEnd}
	Tab       = Key{Code: KeyTab}
	Delete    = Key{Code: KeyDelete}
	Backspace = Key{Code: KeyBackspace}
	Enter     = Key{Code: KeyEnter}
	Esc       = Key{Code: KeyEsc}
)

// MouseButton identifies which mouse button (or wheel direction) an event
// belongs to.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseWheelUp
	MouseWheelDown
)
