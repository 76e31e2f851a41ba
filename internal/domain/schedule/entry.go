package schedule

import "strings"

// EntryState is the raw enrollment marker derived from an entry's visual
// class on the roster. Derived once while scraping, never round-tripped.
type EntryState string

const (
	EntryStateOpen       EntryState = "open"
	EntryStateFull       EntryState = "full"
	EntryStateSignedUp   EntryState = "signed-up"
	EntryStateWaitlisted EntryState = "waitlisted"
	EntryStateUnknown    EntryState = "unknown"
)

// stateMarkers maps roster class fragments to entry states. Waitlist
// markers are checked before signed-up ones: an entry on the waitlist also
// carries the generic booked marker and must not be masked by it.
var stateMarkers = []struct {
	fragment string
	state    EntryState
}{
	{"wachtlijst", EntryStateWaitlisted},
	{"waitlist", EntryStateWaitlisted},
	{"ingeschreven", EntryStateSignedUp},
	{"signed-up", EntryStateSignedUp},
	{"booked", EntryStateSignedUp},
	{"volgeboekt", EntryStateFull},
	{"vol", EntryStateFull},
	{"full", EntryStateFull},
	{"open", EntryStateOpen},
}

// ParseEntryState inspects a class attribute and returns the state of the
// most specific marker present.
func ParseEntryState(classAttr string) EntryState {
	classes := strings.Fields(strings.ToLower(classAttr))
	for _, m := range stateMarkers {
		for _, c := range classes {
			if strings.Contains(c, m.fragment) {
				return m.state
			}
		}
	}
	return EntryStateUnknown
}

// CalendarEntry is a single bookable session instance on the roster.
// Time and Participants stay strings: the site emits locale-formatted
// times and count text ("6/14" one week, prose the next) with no stable
// format to parse against.
type CalendarEntry struct {
	Time         string     `json:"time"`
	Name         string     `json:"name"`
	Venue        Venue      `json:"venue"`
	Participants string     `json:"participants,omitempty"`
	State        EntryState `json:"state"`
}
