package repository

import (
	"context"

	"github.com/diillson/evcc-charging-report/internal/domain/entity"
)

// SessionRepository defines the interface for fetching charging sessions
// from the home energy manager.
type SessionRepository interface {
	// FetchSessions returns the raw session records for the given period.
	// A period without sessions yields an empty slice and a nil error.
	FetchSessions(ctx context.Context, period entity.Period, lang string) ([]entity.RawSession, error)
}
