package client

// State is the lifecycle of a cached collection:
// Empty → Loading → Populated, or Empty → Loading → Errored.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StatePopulated
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}
