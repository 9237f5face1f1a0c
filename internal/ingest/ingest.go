// Package ingest fetches and normalizes the external timetable export.
//
// The feed is treated as an already-normalized CSV with the header
// class_code,subject,teacher,room,day,time_slot. Start and end times are
// derived from the fixed nine-slot period table. Any fetch or parse failure
// falls back to the embedded sample timetable so startup never depends on
// the feed being reachable.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mahadqr/timetable-api/internal/app/models"
)

// slotTimes maps each of the nine daily periods to its fixed start and end.
var slotTimes = map[string]struct{ Start, End string }{
	"1": {"08:00", "08:50"},
	"2": {"08:55", "09:45"},
	"3": {"09:50", "10:40"},
	"4": {"10:45", "11:35"},
	"5": {"11:40", "12:30"},
	"6": {"12:35", "13:25"},
	"7": {"13:30", "14:20"},
	"8": {"14:25", "15:15"},
	"9": {"15:20", "16:05"},
}

var csvHeader = []string{"class_code", "subject", "teacher", "room", "day", "time_slot"}

// Client fetches the timetable export.
type Client struct {
	httpClient *http.Client
	sourceURL  string
	logger     zerolog.Logger
}

// NewClient creates an ingest client. An empty sourceURL means the embedded
// sample timetable is used directly.
func NewClient(sourceURL string, timeout time.Duration, lgr zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		sourceURL:  sourceURL,
		logger:     lgr,
	}
}

// Fetch retrieves and parses the timetable feed. It never fails: on any
// error the embedded sample timetable is returned instead.
func (c *Client) Fetch(ctx context.Context) []models.ClassSession {
	if c.sourceURL == "" {
		c.logger.Info().Msg("No timetable source configured, using sample timetable")
		return SampleTimetable()
	}

	sessions, err := c.fetch(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", c.sourceURL).Msg("Timetable fetch failed, falling back to sample timetable")
		return SampleTimetable()
	}

	c.logger.Info().Int("sessions", len(sessions)).Str("url", c.sourceURL).Msg("Timetable feed fetched")
	return sessions
}

func (c *Client) fetch(ctx context.Context) ([]models.ClassSession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	return ParseCSV(resp.Body)
}

// ParseCSV parses a normalized timetable CSV into insertable class sessions.
// The whole feed is rejected on the first malformed record; partial feeds
// are worse than the sample fallback.
func ParseCSV(r io.Reader) ([]models.ClassSession, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read feed header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	sessions := []models.ClassSession{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		session, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func checkHeader(header []string) error {
	if len(header) != len(csvHeader) {
		return fmt.Errorf("expected %d feed columns, got %d", len(csvHeader), len(header))
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return fmt.Errorf("unexpected feed column %q, want %q", header[i], col)
		}
	}
	return nil
}

func parseRecord(record []string) (models.ClassSession, error) {
	day, ok := models.CanonicalDay(record[4])
	if !ok {
		return models.ClassSession{}, fmt.Errorf("unknown day %q", record[4])
	}

	slot := record[5]
	times, ok := slotTimes[slot]
	if !ok {
		return models.ClassSession{}, fmt.Errorf("unknown time slot %q", slot)
	}

	return models.ClassSession{
		ClassCode: record[0],
		Subject:   record[1],
		Teacher:   record[2],
		Room:      record[3],
		Day:       day,
		TimeSlot:  slot,
		StartTime: times.Start,
		EndTime:   times.End,
	}, nil
}
