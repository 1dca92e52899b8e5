package session

// State is a lifecycle phase of a Manager
type State uint8

const (
	StateUnopened State = iota
	StateOpening
	StateOpened
	StateSubscribed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpening:
		return "opening"
	case StateOpened:
		return "opened"
	case StateSubscribed:
		return "subscribed"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// hasDevice reports whether a context and device handle are held in this state
func (s State) hasDevice() bool {
	return s == StateOpened || s == StateSubscribed
}
