package ui

import "fmt"

// Screen identifies one of the navigable screens.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenCategories
	ScreenWords
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenCategories:
		return "categories"
	case ScreenWords:
		return "words"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Navigator is the explicit screen state machine. A transition runs the
// destination's on-enter hook and then shows the screen, so entry side
// effects (reloading the board document, rebuilding lists) are traceable
// here instead of hiding behind event broadcasts.
type Navigator struct {
	current Screen
	onEnter map[Screen]func() error
	show    func(Screen)
}

// NewNavigator creates a navigator starting on ScreenHome. show is called
// after every transition with the new current screen; it may be nil.
func NewNavigator(show func(Screen)) *Navigator {
	return &Navigator{
		current: ScreenHome,
		onEnter: make(map[Screen]func() error),
		show:    show,
	}
}

// OnEnter registers the hook run when s becomes current.
func (n *Navigator) OnEnter(s Screen, hook func() error) {
	n.onEnter[s] = hook
}

// Go transitions to s. The screen becomes current even when its hook fails;
// the error is returned for the caller to surface, and the screen shows
// whatever state the hook managed to build. Nothing is ever fatal here.
func (n *Navigator) Go(s Screen) error {
	var err error
	if hook := n.onEnter[s]; hook != nil {
		err = hook()
	}
	n.current = s
	if n.show != nil {
		n.show(s)
	}
	return err
}

// Current returns the screen on display.
func (n *Navigator) Current() Screen {
	return n.current
}
