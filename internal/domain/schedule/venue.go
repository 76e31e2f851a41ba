package schedule

import (
	"fmt"
	"strings"
)

// Venue is one of the fixed set of rooms with their own roster view.
type Venue string

const (
	VenueZaal1  Venue = "Zaal 1"
	VenueZaal2  Venue = "Zaal 2"
	VenueBuiten Venue = "Buiten"
)

// ProbeOrder returns the venues in probing order. Probing stops at the
// first venue containing a matching entry, so the main hall goes first.
func ProbeOrder() []Venue {
	return []Venue{VenueZaal1, VenueZaal2, VenueBuiten}
}

// ParseVenue accepts the user-facing spellings ("Zaal 2", "zaal2", "buiten").
func ParseVenue(s string) (Venue, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	switch key {
	case "zaal1", "hal1", "1":
		return VenueZaal1, nil
	case "zaal2", "hal2", "2":
		return VenueZaal2, nil
	case "buiten", "outside":
		return VenueBuiten, nil
	}
	return "", fmt.Errorf("unknown venue %q", s)
}

// RosterURL builds the venue-specific roster URL. The site keys venue and
// week selection off query parameters on a single roster page.
func (v Venue) RosterURL(baseURL string, nextWeek bool) string {
	u := strings.TrimRight(baseURL, "/") + "/rooster"
	switch v {
	case VenueZaal2:
		u += "?hall=Zaal%202"
	case VenueBuiten:
		u += "?hall=Buiten"
	}
	if nextWeek {
		if strings.Contains(u, "?") {
			u += "&week=next"
		} else {
			u += "?week=next"
		}
	}
	return u
}
