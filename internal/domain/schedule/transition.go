package schedule

import (
	"fmt"
	"strings"
)

// DaySel selects which day an externally supplied action request targets.
type DaySel string

const (
	DayToday    DaySel = "Today"
	DayTomorrow DaySel = "Tomorrow"
)

// Action is the desired enrollment transition.
type Action string

const (
	ActionEnroll   Action = "enroll"
	ActionWithdraw Action = "withdraw"
)

// TransitionRequest is an externally supplied enrollment command.
// Constructed once from caller input, validated before any side effect,
// never mutated.
type TransitionRequest struct {
	Day    DaySel
	Time   string
	Venue  *Venue // nil means probe all venues in order
	Action Action
}

// Validate rejects malformed or incomplete requests.
func (r TransitionRequest) Validate() error {
	switch r.Day {
	case DayToday, DayTomorrow:
	default:
		return fmt.Errorf("invalid day %q (want Today or Tomorrow)", r.Day)
	}
	if strings.TrimSpace(r.Time) == "" {
		return fmt.Errorf("time is required")
	}
	switch r.Action {
	case ActionEnroll, ActionWithdraw:
	default:
		return fmt.Errorf("invalid action %q (want enroll or withdraw)", r.Action)
	}
	return nil
}

// Offset returns the day offset relative to now.
func (r TransitionRequest) Offset() int {
	if r.Day == DayTomorrow {
		return 1
	}
	return 0
}

// Outcome is the closed set of enrollment transition results.
type Outcome string

const (
	OutcomeEnrolled          Outcome = "Enrolled"
	OutcomeWaitlisted        Outcome = "Waitlisted"
	OutcomeAlreadyInState    Outcome = "AlreadyInState"
	OutcomeNotFound          Outcome = "NotFound"
	OutcomeActionUnavailable Outcome = "ActionUnavailable"
	OutcomeFailed            Outcome = "Failed"
)

// TransitionResult is what an enrollment transition ends in. Never a bare
// boolean: the caller decides notification text and exit code per outcome.
type TransitionResult struct {
	Outcome Outcome
	Reason  string
}

func Enrolled() TransitionResult          { return TransitionResult{Outcome: OutcomeEnrolled} }
func Waitlisted() TransitionResult        { return TransitionResult{Outcome: OutcomeWaitlisted} }
func AlreadyInState() TransitionResult    { return TransitionResult{Outcome: OutcomeAlreadyInState} }
func NotFound() TransitionResult          { return TransitionResult{Outcome: OutcomeNotFound} }
func ActionUnavailable() TransitionResult { return TransitionResult{Outcome: OutcomeActionUnavailable} }

func Failed(format string, args ...any) TransitionResult {
	return TransitionResult{Outcome: OutcomeFailed, Reason: fmt.Sprintf(format, args...)}
}

// Success reports whether the run that produced this result should exit
// zero. NotFound and Failed signal the invoking scheduler to alert;
// everything else is a legitimate terminal state.
func (r TransitionResult) Success() bool {
	return r.Outcome != OutcomeNotFound && r.Outcome != OutcomeFailed
}
