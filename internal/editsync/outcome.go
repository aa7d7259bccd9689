package editsync

import "tro/internal/domain"

type outcomeState int

const (
	notAttempted outcomeState = iota
	succeeded
	failed
)

// Outcome records the result of the most recent remote update in a session
type Outcome struct {
	state outcomeState
	Card  *domain.Card
	Err   error
}

func success(card *domain.Card) Outcome {
	return Outcome{state: succeeded, Card: card}
}

func failure(err error) Outcome {
	return Outcome{state: failed, Err: err}
}

// Attempted reports whether any update was sent
func (o Outcome) Attempted() bool { return o.state != notAttempted }

// Failed reports whether the last update was rejected
func (o Outcome) Failed() bool { return o.state == failed }

func (o Outcome) String() string {
	switch o.state {
	case succeeded:
		return "success"
	case failed:
		return "failure"
	default:
		return "not attempted"
	}
}
