package input

import "gridsnake/game/types"

// Key is a logical key identifier, independent of the frontend
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

var keyNames = map[string]Key{
	"Space":      KeySpace,
	"ArrowUp":    KeyArrowUp,
	"ArrowDown":  KeyArrowDown,
	"ArrowLeft":  KeyArrowLeft,
	"ArrowRight": KeyArrowRight,
}

// ParseKey maps a logical key name to a Key; unknown names yield KeyNone
func ParseKey(name string) Key {
	return keyNames[name]
}

func (k Key) String() string {
	for name, key := range keyNames {
		if key == k {
			return name
		}
	}
	return "None"
}

// Direction returns the heading an arrow key asks for
func (k Key) Direction() (types.Direction, bool) {
	switch k {
	case KeyArrowUp:
		return types.Up, true
	case KeyArrowDown:
		return types.Down, true
	case KeyArrowLeft:
		return types.Left, true
	case KeyArrowRight:
		return types.Right, true
	}
	return 0, false
}
