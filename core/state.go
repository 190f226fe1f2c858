package core

// ConnectErrorText is the only failure text a view ever shows.
const ConnectErrorText = "Error connecting to API"

type Phase string

const (
	PhasePending Phase = "pending"
	PhaseSuccess Phase = "success"
	PhaseFailure Phase = "failure"
)

// State is what a view displays. It is one of Pending, Success or Failure.
type State interface {
	phase() Phase
}

type Pending struct{}

type Success struct {
	Message string
}

type Failure struct {
	Text string
}

func (Pending) phase() Phase { return PhasePending }
func (Success) phase() Phase { return PhaseSuccess }
func (Failure) phase() Phase { return PhaseFailure }

// PhaseOf returns the phase of s. A nil state is pending.
func PhaseOf(s State) Phase {
	if s == nil {
		return PhasePending
	}
	return s.phase()
}

func failed() State {
	return Failure{Text: ConnectErrorText}
}
