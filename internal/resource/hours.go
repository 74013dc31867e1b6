package resource

import (
	"strings"
	"time"
)

// AlwaysOpen is the Open value for resources that never close.
const AlwaysOpen = "24 hours"

// Closed reports whether the entry describes a closed day.
func (h Hours) Closed() bool { return strings.TrimSpace(h.Open) == "" }

// AllDay reports whether the entry describes a day open around the clock.
func (h Hours) AllDay() bool { return strings.EqualFold(strings.TrimSpace(h.Open), AlwaysOpen) }

func (h Hours) String() string {
	switch {
	case h.Closed():
		return "Closed"
	case h.AllDay():
		return AlwaysOpen
	case h.Close == "":
		return h.Open
	default:
		return h.Open + " - " + h.Close
	}
}

// HoursOn returns the entry for the given weekday, if the resource lists one.
func (r *Resource) HoursOn(day time.Weekday) (Hours, bool) {
	for _, h := range r.Hours {
		if h.Day == int(day) {
			return h, true
		}
	}
	return Hours{}, false
}

// TodayText renders the "today" line shown on result cards.
func (r *Resource) TodayText(now time.Time) string {
	h, ok := r.HoursOn(now.Weekday())
	if !ok || h.Closed() {
		return "Closed today"
	}
	return "Today: " + h.String()
}

var weekdayNames = map[string]int{
	"sunday": 0, "sun": 0,
	"monday": 1, "mon": 1,
	"tuesday": 2, "tue": 2, "tues": 2,
	"wednesday": 3, "wed": 3,
	"thursday": 4, "thu": 4, "thurs": 4,
	"friday": 5, "fri": 5,
	"saturday": 6, "sat": 6,
}
