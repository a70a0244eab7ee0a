// Package remind computes when reminders fire.
//
// Reminders are stored as a time of day plus a weekday set (see
// [deck.Reminder]); this package turns them into concrete firing times.
// [NextDue] answers "when does this reminder fire next" and [Due] filters
// a set of reminders down to those that fired inside a window, which is
// how `versedeck remind due` decides what to surface.
package remind

import (
	"sort"
	"time"

	"github.com/versedeck/versedeck/pkg/deck"
)

// NextDue returns the first time r fires strictly after the given time.
// Disabled reminders never fire; the zero time is returned for them.
func NextDue(r deck.Reminder, after time.Time) time.Time {
	if !r.Enabled {
		return time.Time{}
	}
	hour, minute, err := deck.ParseTimeOfDay(r.TimeOfDay)
	if err != nil {
		return time.Time{}
	}

	// A weekday set covers at most a week, so scanning eight days from
	// the reference always finds the next firing.
	day := time.Date(after.Year(), after.Month(), after.Day(), 0, 0, 0, 0, after.Location())
	for i := 0; i < 8; i++ {
		candidate := day.AddDate(0, 0, i)
		at := time.Date(candidate.Year(), candidate.Month(), candidate.Day(), hour, minute, 0, 0, after.Location())
		if r.OnDay(at.Weekday()) && at.After(after) {
			return at
		}
	}
	return time.Time{}
}

// Firing pairs a reminder with a concrete time it fired.
type Firing struct {
	Reminder deck.Reminder
	At       time.Time
}

// Due returns the reminders that fired in the window (since, now], one
// Firing per reminder for its most recent firing, ordered oldest first.
// Reminders whose latest firing falls outside the window are omitted.
func Due(reminders []deck.Reminder, since, now time.Time) []Firing {
	var due []Firing
	for _, r := range reminders {
		at, ok := lastFiring(r, now)
		if !ok || !at.After(since) {
			continue
		}
		due = append(due, Firing{Reminder: r, At: at})
	}
	sort.Slice(due, func(i, j int) bool { return due[i].At.Before(due[j].At) })
	return due
}

// lastFiring returns the most recent time r fired at or before now.
func lastFiring(r deck.Reminder, now time.Time) (time.Time, bool) {
	if !r.Enabled {
		return time.Time{}, false
	}
	hour, minute, err := deck.ParseTimeOfDay(r.TimeOfDay)
	if err != nil {
		return time.Time{}, false
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i := 0; i < 8; i++ {
		candidate := day.AddDate(0, 0, -i)
		at := time.Date(candidate.Year(), candidate.Month(), candidate.Day(), hour, minute, 0, 0, now.Location())
		if r.OnDay(at.Weekday()) && !at.After(now) {
			return at, true
		}
	}
	return time.Time{}, false
}
