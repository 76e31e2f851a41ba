package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrolledStatus(t *testing.T) {
	st := EnrolledStatus("18:30", "6/14")
	assert.True(t, st.Enrolled)
	assert.False(t, st.Waitlisted)
	assert.Equal(t, "18:30", st.Time)
	assert.Equal(t, "6/14", st.Participants)
	assert.False(t, st.IsZero())
}

func TestWaitlistedStatus_ImpliesEnrolled(t *testing.T) {
	st := WaitlistedStatus("19:30", "14/14", "2", "3")
	assert.True(t, st.Enrolled, "a waitlist spot is a form of enrollment")
	assert.True(t, st.Waitlisted)
	assert.Equal(t, "2", st.WaitlistPosition)
	assert.Equal(t, "3", st.WaitlistTotal)
}

func TestEnrollmentStatus_IsZero(t *testing.T) {
	assert.True(t, EnrollmentStatus{}.IsZero())
	assert.False(t, EnrolledStatus("18:30", "").IsZero())
}
