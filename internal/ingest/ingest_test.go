package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFeed = `class_code,subject,teacher,room,day,time_slot
BCS-1K,ICP,Jahan Ara (VF),E-29 Academic Block II (52),monday,4
BCS-3A,TOA,Ubaidullah,C-17 Academic Block II (59),Tuesday,5
`

func TestParseCSV_DerivesSlotTimesAndCanonicalizesDays(t *testing.T) {
	sessions, err := ParseCSV(strings.NewReader(validFeed))
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, "BCS-1K", sessions[0].ClassCode)
	assert.Equal(t, "Monday", sessions[0].Day)
	assert.Equal(t, "10:45", sessions[0].StartTime)
	assert.Equal(t, "11:35", sessions[0].EndTime)
	assert.Empty(t, sessions[0].ID)

	assert.Equal(t, "Tuesday", sessions[1].Day)
	assert.Equal(t, "11:40", sessions[1].StartTime)
	assert.Equal(t, "12:30", sessions[1].EndTime)
}

func TestParseCSV_RejectsUnknownDay(t *testing.T) {
	feed := "class_code,subject,teacher,room,day,time_slot\nBCS-1K,ICP,Jahan Ara,E-29,Sunday,4\n"
	_, err := ParseCSV(strings.NewReader(feed))
	assert.Error(t, err)
}

func TestParseCSV_RejectsUnknownTimeSlot(t *testing.T) {
	feed := "class_code,subject,teacher,room,day,time_slot\nBCS-1K,ICP,Jahan Ara,E-29,Monday,12\n"
	_, err := ParseCSV(strings.NewReader(feed))
	assert.Error(t, err)
}

func TestParseCSV_RejectsUnexpectedHeader(t *testing.T) {
	feed := "code,subject,teacher,room,day,slot\nBCS-1K,ICP,Jahan Ara,E-29,Monday,4\n"
	_, err := ParseCSV(strings.NewReader(feed))
	assert.Error(t, err)
}

func TestFetch_ParsesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(validFeed))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	sessions := client.Fetch(context.Background())

	require.Len(t, sessions, 2)
	assert.Equal(t, "BCS-1K", sessions[0].ClassCode)
}

func TestFetch_FallsBackToSampleOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	sessions := client.Fetch(context.Background())

	assert.Equal(t, SampleTimetable(), sessions)
}

func TestFetch_FallsBackToSampleOnMalformedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not,a,timetable\n1,2,3\n"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	sessions := client.Fetch(context.Background())

	assert.Equal(t, SampleTimetable(), sessions)
}

func TestFetch_UsesSampleWhenNoSourceConfigured(t *testing.T) {
	client := NewClient("", time.Second, zerolog.Nop())
	sessions := client.Fetch(context.Background())

	assert.Equal(t, SampleTimetable(), sessions)
}

func TestSampleTimetable_OnlyContainsValidSlots(t *testing.T) {
	for _, s := range SampleTimetable() {
		times, ok := slotTimes[s.TimeSlot]
		require.True(t, ok, "slot %s", s.TimeSlot)
		assert.Equal(t, times.Start, s.StartTime)
		assert.Equal(t, times.End, s.EndTime)
	}
}
