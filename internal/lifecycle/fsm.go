package lifecycle

import "fmt"

type State string

type Event string

const (
	StateCreated State = "created"
	StateStarted State = "started"
	StateStopped State = "stopped"
)

const (
	EventStart Event = "start"
	EventStop  Event = "stop"
)

// Transition returns the state following current on event. A controller
// that is torn down without having been started goes straight to stopped.
func Transition(current State, event Event) (State, error) {
	switch current {
	case StateCreated:
		switch event {
		case EventStart:
			return StateStarted, nil
		case EventStop:
			return StateStopped, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateStarted:
		switch event {
		case EventStop:
			return StateStopped, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateStopped:
		return current, invalidTransition(current, event)
	default:
		return current, fmt.Errorf("unknown state %q", current)
	}
}

func invalidTransition(state State, event Event) error {
	return fmt.Errorf("invalid transition: %s --(%s)--> ?", state, event)
}
