package remind

import (
	"testing"
	"time"

	"github.com/versedeck/versedeck/pkg/deck"
)

func mustReminder(t *testing.T, timeOfDay string, weekdays []time.Weekday) deck.Reminder {
	t.Helper()
	r, err := deck.NewReminder("pack-1", timeOfDay, weekdays)
	if err != nil {
		t.Fatalf("NewReminder: %v", err)
	}
	return r
}

// A fixed reference point: Wednesday, 2024-03-13 12:00 UTC.
var wednesdayNoon = time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)

func TestNextDue(t *testing.T) {
	tests := []struct {
		name      string
		timeOfDay string
		weekdays  []time.Weekday
		after     time.Time
		want      time.Time
	}{
		{
			name:      "later today",
			timeOfDay: "18:30",
			after:     wednesdayNoon,
			want:      time.Date(2024, 3, 13, 18, 30, 0, 0, time.UTC),
		},
		{
			name:      "time already passed rolls to tomorrow",
			timeOfDay: "08:00",
			after:     wednesdayNoon,
			want:      time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC),
		},
		{
			name:      "restricted weekday",
			timeOfDay: "08:00",
			weekdays:  []time.Weekday{time.Monday},
			after:     wednesdayNoon,
			want:      time.Date(2024, 3, 18, 8, 0, 0, 0, time.UTC),
		},
		{
			name:      "same weekday later time",
			timeOfDay: "18:30",
			weekdays:  []time.Weekday{time.Wednesday},
			after:     wednesdayNoon,
			want:      time.Date(2024, 3, 13, 18, 30, 0, 0, time.UTC),
		},
		{
			name:      "same weekday earlier time rolls a week",
			timeOfDay: "08:00",
			weekdays:  []time.Weekday{time.Wednesday},
			after:     wednesdayNoon,
			want:      time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustReminder(t, tt.timeOfDay, tt.weekdays)
			got := NextDue(r, tt.after)
			if !got.Equal(tt.want) {
				t.Errorf("NextDue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextDueDisabled(t *testing.T) {
	r := mustReminder(t, "08:00", nil)
	r.Enabled = false
	if got := NextDue(r, wednesdayNoon); !got.IsZero() {
		t.Errorf("disabled reminder should never fire, got %v", got)
	}
}

func TestDue(t *testing.T) {
	morning := mustReminder(t, "08:00", nil)            // fired today 08:00
	evening := mustReminder(t, "20:00", nil)            // fires today 20:00, last fired yesterday
	monday := mustReminder(t, "09:00", []time.Weekday{time.Monday}) // last fired Mon 2024-03-11

	since := wednesdayNoon.Add(-6 * time.Hour) // 06:00 today
	got := Due([]deck.Reminder{evening, morning, monday}, since, wednesdayNoon)

	if len(got) != 1 {
		t.Fatalf("expected 1 due firing, got %d", len(got))
	}
	if got[0].Reminder.ID != morning.ID {
		t.Errorf("due reminder = %s, want morning reminder", got[0].Reminder.ID)
	}
	want := time.Date(2024, 3, 13, 8, 0, 0, 0, time.UTC)
	if !got[0].At.Equal(want) {
		t.Errorf("firing time = %v, want %v", got[0].At, want)
	}
}

func TestDueWideWindowOrdersOldestFirst(t *testing.T) {
	morning := mustReminder(t, "08:00", nil)
	monday := mustReminder(t, "09:00", []time.Weekday{time.Monday})

	since := wednesdayNoon.AddDate(0, 0, -7)
	got := Due([]deck.Reminder{morning, monday}, since, wednesdayNoon)

	if len(got) != 2 {
		t.Fatalf("expected 2 firings, got %d", len(got))
	}
	if got[0].Reminder.ID != monday.ID {
		t.Errorf("oldest firing should be the Monday reminder")
	}
	if !got[0].At.Before(got[1].At) {
		t.Errorf("firings not ordered oldest first: %v, %v", got[0].At, got[1].At)
	}
}

func TestDueSkipsDisabled(t *testing.T) {
	r := mustReminder(t, "08:00", nil)
	r.Enabled = false

	got := Due([]deck.Reminder{r}, wednesdayNoon.Add(-24*time.Hour), wednesdayNoon)
	if len(got) != 0 {
		t.Errorf("disabled reminder should not be due, got %d firings", len(got))
	}
}
