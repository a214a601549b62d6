package editor

import (
	"fmt"
	"strings"
)

// Key is a host-independent keyboard key.
type Key int

const (
	KeyUnknown Key = iota
	KeyShift
	KeyControl
	KeySpace
	KeyZ
	KeyY
	KeyC
	Key1
	Key2
	Key3
	KeyBracketLeft
	KeyBracketRight
	KeyF5
)

var keyNames = map[Key]string{
	KeyShift:        "shift",
	KeyControl:      "control",
	KeySpace:        "space",
	KeyZ:            "z",
	KeyY:            "y",
	KeyC:            "c",
	Key1:            "1",
	Key2:            "2",
	Key3:            "3",
	KeyBracketLeft:  "[",
	KeyBracketRight: "]",
	KeyF5:           "f5",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey maps a config key name to a Key.
func ParseKey(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "ctrl":
		return KeyControl, nil
	case "bracketleft":
		return KeyBracketLeft, nil
	case "bracketright":
		return KeyBracketRight, nil
	}
	for k, name := range keyNames {
		if name == s {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// MouseButton is a host-independent mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// Input is the host's view of the keyboard, mouse and cursor for the
// current frame.
type Input interface {
	KeyPressed(k Key) bool
	KeyJustPressed(k Key) bool
	MousePressed(b MouseButton) bool
	MouseJustPressed(b MouseButton) bool
	MouseJustReleased(b MouseButton) bool
	// CursorTile maps the cursor to a grid position. ok is false when the
	// cursor is outside the board or over UI.
	CursorTile() (TilePos, bool)
}

// Keymap binds editor commands to keys. Undo and Redo require Modifier.
type Keymap struct {
	Modifier   Key
	Range      Key
	Undo       Key
	Redo       Key
	Wall       Key
	Floor      Key
	Spawn      Key
	SizeDown   Key
	SizeUp     Key
	ToggleMode Key
	Stamp      Key
}

func DefaultKeymap() Keymap {
	return Keymap{
		Modifier:   KeyControl,
		Range:      KeyShift,
		Undo:       KeyZ,
		Redo:       KeyY,
		Wall:       Key1,
		Floor:      Key2,
		Spawn:      Key3,
		SizeDown:   KeyBracketLeft,
		SizeUp:     KeyBracketRight,
		ToggleMode: KeySpace,
		Stamp:      KeyF5,
	}
}
