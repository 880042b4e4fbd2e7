package menu

type Action int

const (
	ActionNone Action = iota
	ActionAddCube
	ActionAddPlane
	ActionAddFloor
	ActionDeleteSelected
	ActionSelectNext
	ActionSelect
)

func (a Action) String() string {
	switch a {
	case ActionAddCube:
		return "add-cube"
	case ActionAddPlane:
		return "add-plane"
	case ActionAddFloor:
		return "add-floor"
	case ActionDeleteSelected:
		return "delete-selected"
	case ActionSelectNext:
		return "select-next"
	case ActionSelect:
		return "select"
	default:
		return "none"
	}
}

// Item is one row of the sidebar's entity list.
type Item struct {
	ID       int
	Label    string
	Selected bool
}
