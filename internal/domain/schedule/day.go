package schedule

import "time"

// dayTokens are the lowercase English day identifiers the roster embeds in
// its modal ids (e.g. "modal-tuesday-Oly Lifting-18:30"). Monday-based, the
// same week layout the site renders.
var dayTokens = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// displayNames maps a day token to the label the site shows in its roster
// headers. The site is Dutch.
var displayNames = map[string]string{
	"monday":    "Maandag",
	"tuesday":   "Dinsdag",
	"wednesday": "Woensdag",
	"thursday":  "Donderdag",
	"friday":    "Vrijdag",
	"saturday":  "Zaterdag",
	"sunday":    "Zondag",
}

// DayTarget identifies which column of which week to inspect. Immutable
// after construction via ResolveDay.
type DayTarget struct {
	Day      string
	NextWeek bool
}

// ResolveDay computes the day target for now plus offsetDays. The roster
// week runs Monday through Sunday; an offset that crosses the Sunday
// boundary lands in next week's view and must carry the NextWeek flag,
// otherwise the wrong week's column gets read.
func ResolveDay(now time.Time, offsetDays int) DayTarget {
	idx := (int(now.Weekday()) + 6) % 7 // Monday = 0
	total := idx + offsetDays
	return DayTarget{
		Day:      dayTokens[((total%7)+7)%7],
		NextWeek: total >= 7,
	}
}

// DisplayName returns the Dutch roster label for the day.
func (d DayTarget) DisplayName() string {
	if n, ok := displayNames[d.Day]; ok {
		return n
	}
	return d.Day
}
