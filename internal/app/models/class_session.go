package models

import "strings"

// Weekdays lists the days a session can be scheduled on, in timetable order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// ClassSession represents one scheduled meeting of a course section.
type ClassSession struct {
	ID        string `json:"id"`
	ClassCode string `json:"classCode"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	Room      string `json:"room"`
	Day       string `json:"day"`
	TimeSlot  string `json:"timeSlot"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SameSection reports whether two sessions match on the composite
// uniqueness tuple (classCode, subject, teacher, room, day, timeSlot).
// The ID and the derived start/end times are not part of the tuple.
func (c ClassSession) SameSection(other ClassSession) bool {
	return c.ClassCode == other.ClassCode &&
		c.Subject == other.Subject &&
		c.Teacher == other.Teacher &&
		c.Room == other.Room &&
		strings.EqualFold(c.Day, other.Day) &&
		c.TimeSlot == other.TimeSlot
}

// CanonicalDay maps a day name to its canonical capitalized form,
// matching case-insensitively. The second return value is false for
// anything that is not a Monday-Friday weekday.
func CanonicalDay(day string) (string, bool) {
	for _, d := range Weekdays {
		if strings.EqualFold(d, day) {
			return d, true
		}
	}
	return "", false
}
