package repository

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/locus/internal/models"
)

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	FetchRecordsForNormalization(ctx context.Context, limit int) ([]models.LocationRecord, error)
	UpdateRecordAddress(ctx context.Context, recordID int, address, reference string) error
	MarkRecordMalformed(ctx context.Context, recordID int, errMsg string) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
