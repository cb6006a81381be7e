package form

// Mode selects which fields and buttons the form presents.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

func (m Mode) String() string {
	switch m {
	case ModeRegister:
		return "register"
	default:
		return "login"
	}
}

// ParseMode maps a route segment to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "login":
		return ModeLogin, true
	case "register":
		return ModeRegister, true
	}
	return ModeLogin, false
}

// State is everything a mounted form knows. The zero value is a freshly mounted form in
// login mode.
type State struct {
	Email           string
	Password        string
	ConfirmPassword string // only rendered in register mode, never compared to Password
	Mode            Mode
	SubmitEnabled   bool
	LastResult      Result
	InFlight        bool
}
