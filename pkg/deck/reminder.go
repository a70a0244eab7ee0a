package deck

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/versedeck/versedeck/pkg/errors"
)

// Reminder is a recurring prompt to review a pack at a time of day on a
// set of weekdays.
type Reminder struct {
	ID        string         `json:"id" bson:"id"`
	PackID    string         `json:"pack_id" bson:"pack_id"`
	TimeOfDay string         `json:"time_of_day" bson:"time_of_day"` // "HH:MM", 24-hour
	Weekdays  []time.Weekday `json:"weekdays" bson:"weekdays"`
	Enabled   bool           `json:"enabled" bson:"enabled"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
}

// NewReminder creates a reminder with a fresh ID. An empty weekday list
// means every day.
func NewReminder(packID, timeOfDay string, weekdays []time.Weekday) (Reminder, error) {
	if packID == "" {
		return Reminder{}, errors.New(errors.ErrCodeInvalidReminder, "reminder needs a pack")
	}
	if _, _, err := ParseTimeOfDay(timeOfDay); err != nil {
		return Reminder{}, err
	}
	for _, d := range weekdays {
		if d < time.Sunday || d > time.Saturday {
			return Reminder{}, errors.New(errors.ErrCodeInvalidReminder, "invalid weekday %d", d)
		}
	}
	return Reminder{
		ID:        uuid.NewString(),
		PackID:    packID,
		TimeOfDay: timeOfDay,
		Weekdays:  weekdays,
		Enabled:   true,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// OnDay reports whether the reminder fires on the given weekday.
func (r Reminder) OnDay(d time.Weekday) bool {
	if len(r.Weekdays) == 0 {
		return true
	}
	for _, wd := range r.Weekdays {
		if wd == d {
			return true
		}
	}
	return false
}

// ParseTimeOfDay parses "HH:MM" in 24-hour form into hour and minute.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	if _, perr := fmt.Sscanf(s, "%02d:%02d", &hour, &minute); perr != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidReminder, "invalid time of day %q (expected HH:MM)", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, errors.New(errors.ErrCodeInvalidReminder, "time of day %q out of range", s)
	}
	return hour, minute, nil
}
