package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mahadqr/timetable-api/internal/app/services"
	"github.com/mahadqr/timetable-api/internal/ingest"
)

// LoadTimetable bulk-inserts the ingested timetable through the class
// service. Insertion deduplicates against the composite section tuple, so
// running this on every startup (or against an already-seeded store) is
// harmless.
func LoadTimetable(ctx context.Context, client *ingest.Client, classService services.ClassService, lgr zerolog.Logger) error {
	lgr.Info().Msg("Loading timetable data...")

	sessions := client.Fetch(ctx)
	created, err := classService.BulkCreateClasses(sessions)
	if err != nil {
		return fmt.Errorf("failed to ingest timetable: %w", err)
	}

	lgr.Info().Int("sessions", len(created)).Msg("Timetable data loaded")
	return nil
}
