package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEntryState(t *testing.T) {
	tests := []struct {
		class string
		want  EntryState
	}{
		{"event-item open", EntryStateOpen},
		{"event-item volgeboekt", EntryStateFull},
		{"event-item FULL", EntryStateFull},
		{"event-item ingeschreven", EntryStateSignedUp},
		{"event-item booked", EntryStateSignedUp},
		{"event-item wachtlijst", EntryStateWaitlisted},
		// A waitlisted entry also carries the booked marker; the waitlist
		// marker must win regardless of class order.
		{"event-item ingeschreven wachtlijst", EntryStateWaitlisted},
		{"event-item wachtlijst ingeschreven", EntryStateWaitlisted},
		{"event-item", EntryStateUnknown},
		{"", EntryStateUnknown},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseEntryState(tc.class), "class %q", tc.class)
	}
}
