// internal/pad/state.go
package pad

// State is the bus-side state of the emulated controller.
type State uint8

const (
	Listening State = iota
	RespondingProbe
	RespondingOrigin
	RespondingPoll
	Recovering
)

func (s State) String() string {
	switch s {
	case Listening:
		return "listening"
	case RespondingProbe:
		return "responding-probe"
	case RespondingOrigin:
		return "responding-origin"
	case RespondingPoll:
		return "responding-poll"
	case Recovering:
		return "recovering"
	default:
		return "unknown"
	}
}
