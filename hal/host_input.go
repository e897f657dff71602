package hal

const inputQueueSize = 256

type hostInput struct {
	ch chan Event
}

func newHostInput() *hostInput {
	return &hostInput{ch: make(chan Event, inputQueueSize)}
}

func (in *hostInput) Events() <-chan Event { return in.ch }

func (in *hostInput) push(ev Event) bool {
	select {
	case in.ch <- ev:
		return true
	default:
		return false
	}
}
