package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/locus/internal/models"
)

// MaxNormalizationAttempts bounds how often a malformed record is retried.
const MaxNormalizationAttempts = 5

// FetchRecordsForNormalization retrieves location records whose address has not been normalized yet.
// It returns records with a NULL normalized_at, fewer than MaxNormalizationAttempts attempts
// and both coordinates present. The results are ordered by creation date and limited to the specified count.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of records to retrieve.
//
// Returns:
// - A slice of models.LocationRecord containing the records that match the criteria.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchRecordsForNormalization(ctx context.Context, limit int) ([]models.LocationRecord, error) {
	var records []models.LocationRecord
	query := `
		SELECT record_id, latitude, longitude, COALESCE(address, '')
		FROM public.locations
		WHERE
			normalized_at IS NULL
			AND normalization_attempts < $1
			AND latitude IS NOT NULL
			AND longitude IS NOT NULL
		ORDER BY created_at ASC
		LIMIT $2;
	`

	rows, err := r.db.Query(ctx, query, MaxNormalizationAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query location records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec models.LocationRecord
		if errScan := rows.Scan(&rec.ID, &rec.Latitude, &rec.Longitude, &rec.Address); errScan != nil {
			return nil, fmt.Errorf("failed to scan location record: %w", errScan)
		}
		r.log.DebugContext(ctx, "A new location record to normalize has been received.",
			"ID", rec.ID, "Address", rec.Address)
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return records, nil
}

// UpdateRecordAddress stores the normalized address of a record and marks it as processed.
// reference is the matched reference name, or empty when the address was kept unchanged.
func (r *Repository) UpdateRecordAddress(ctx context.Context, recordID int, address, reference string) error {
	query := `
		UPDATE locations
		SET
			address = $1,
			matched_reference = NULLIF($2, ''),
			normalized_at = now(),
			normalization_error = NULL
		WHERE
			record_id = $3;
	`

	_, err := r.db.Exec(ctx, query, address, reference, recordID)
	if err != nil {
		return fmt.Errorf("failed to update record address: %w", err)
	}

	return nil
}

// MarkRecordMalformed increments the normalization attempt count for a record
// and stores the validation error. The address is not touched.
func (r *Repository) MarkRecordMalformed(ctx context.Context, recordID int, errMsg string) error {
	query := `
		UPDATE locations
		SET
			normalization_attempts = normalization_attempts + 1,
			normalization_error = $1
		WHERE record_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, recordID)
	if err != nil {
		return fmt.Errorf("failed to update normalization error and number of attempts: %w", err)
	}

	return nil
}
