package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionRequest_Validate(t *testing.T) {
	venue := VenueZaal2
	valid := TransitionRequest{Day: DayTomorrow, Time: "18:30", Venue: &venue, Action: ActionEnroll}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  TransitionRequest
	}{
		{"missing day", TransitionRequest{Time: "18:30", Action: ActionEnroll}},
		{"bogus day", TransitionRequest{Day: "Yesterday", Time: "18:30", Action: ActionEnroll}},
		{"missing time", TransitionRequest{Day: DayToday, Action: ActionEnroll}},
		{"blank time", TransitionRequest{Day: DayToday, Time: "   ", Action: ActionEnroll}},
		{"missing action", TransitionRequest{Day: DayToday, Time: "18:30"}},
		{"bogus action", TransitionRequest{Day: DayToday, Time: "18:30", Action: "signup"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.req.Validate())
		})
	}
}

func TestTransitionRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, TransitionRequest{Day: DayToday}.Offset())
	assert.Equal(t, 1, TransitionRequest{Day: DayTomorrow}.Offset())
}

func TestTransitionResult_Success(t *testing.T) {
	assert.True(t, Enrolled().Success())
	assert.True(t, Waitlisted().Success())
	assert.True(t, AlreadyInState().Success())
	assert.True(t, ActionUnavailable().Success())
	assert.False(t, NotFound().Success())
	assert.False(t, Failed("popup never opened").Success())
}

func TestFailed_FormatsReason(t *testing.T) {
	res := Failed("click %s: %v", "[data-x]", assert.AnError)
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Contains(t, res.Reason, "[data-x]")
}
