package schedule

// EnrollmentStatus is the structured result of reading a day's roster
// column for the account's own enrollment. The zero value means "not
// enrolled, nothing known". All count-like fields are opaque strings;
// the site does not guarantee a parseable format.
//
// Invariant: Waitlisted implies Enrolled. A waitlist spot is a form of
// enrollment, not an alternative to it. Use the constructors to keep the
// invariant; don't assemble the struct by hand outside tests.
type EnrollmentStatus struct {
	Enrolled         bool   `json:"enrolled"`
	Waitlisted       bool   `json:"waitlisted"`
	Time             string `json:"time,omitempty"`
	Participants     string `json:"participants,omitempty"`
	WaitlistPosition string `json:"waitlist_position,omitempty"`
	WaitlistTotal    string `json:"waitlist_total,omitempty"`
}

// EnrolledStatus reports a confirmed spot in the session at the given time.
func EnrolledStatus(timeText, participants string) EnrollmentStatus {
	return EnrollmentStatus{
		Enrolled:     true,
		Time:         timeText,
		Participants: participants,
	}
}

// WaitlistedStatus reports a waitlist spot. Enrolled is set as well.
func WaitlistedStatus(timeText, participants, position, total string) EnrollmentStatus {
	return EnrollmentStatus{
		Enrolled:         true,
		Waitlisted:       true,
		Time:             timeText,
		Participants:     participants,
		WaitlistPosition: position,
		WaitlistTotal:    total,
	}
}

// IsZero reports whether the status carries no enrollment at all.
func (s EnrollmentStatus) IsZero() bool {
	return s == EnrollmentStatus{}
}
