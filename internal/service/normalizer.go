package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/locus/internal/matcher"
	"github.com/UnknownOlympus/locus/internal/metrics"
	"github.com/UnknownOlympus/locus/internal/models"
	"github.com/UnknownOlympus/locus/internal/repository"
)

// batchLimit is the number of records fetched per polling round.
const batchLimit = 100

// NormalizationService periodically fetches location records and rewrites
// their addresses through a matcher.Preprocessor.
type NormalizationService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for data repository access
	preprocessor matcher.Preprocessor // Address rewriting policy
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	numWorkers   int                  // Number of concurrent workers for processing
	pollInterval time.Duration        // Interval for polling new records
}

// NewNormalizationService creates a new instance of NormalizationService.
func NewNormalizationService(
	log *slog.Logger,
	repo repository.Interface,
	preprocessor matcher.Preprocessor,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
) *NormalizationService {
	return &NormalizationService{
		log:          log,
		repo:         repo,
		preprocessor: preprocessor,
		metrics:      metrics,
		numWorkers:   max(1, numWorkers),
		pollInterval: pollInterval,
	}
}

// Run starts the service, which periodically polls for new records to normalize.
// It listens for a cancellation signal from the context to gracefully stop the service.
func (ns *NormalizationService) Run(ctx context.Context) {
	ticker := time.NewTicker(ns.pollInterval)
	defer ticker.Stop()

	ns.log.InfoContext(ctx, "Normalization service started...")

	for {
		select {
		case <-ctx.Done():
			ns.log.InfoContext(ctx, "Normalization service stopped.")
			return
		case <-ticker.C:
			ns.log.InfoContext(ctx, "Polling for new records to normalize...")
			ns.processBatch(ctx)
		}
	}
}

// processBatch fetches records from the repository, starts a worker pool to process them,
// and waits for all workers to finish.
func (ns *NormalizationService) processBatch(ctx context.Context) {
	records, err := ns.repo.FetchRecordsForNormalization(ctx, batchLimit)
	if err != nil {
		ns.log.ErrorContext(ctx, "Failed to fetch records", "error", err)
		return
	}
	if len(records) == 0 {
		ns.log.InfoContext(ctx, "No records to process.")
		return
	}

	ns.log.InfoContext(
		ctx,
		"Found records to process. Starting worker pool.",
		"jobs", len(records),
		"num_workers", ns.numWorkers,
	)

	jobs := make(chan models.LocationRecord, len(records))
	var wgr sync.WaitGroup

	for i := 1; i <= ns.numWorkers; i++ {
		wgr.Add(1)
		go ns.worker(ctx, i, &wgr, jobs)
	}

	for _, rec := range records {
		jobs <- rec
	}
	close(jobs)

	wgr.Wait()
	ns.log.InfoContext(ctx, "Processing batch finished")
}

// worker normalizes records from the jobs channel. Malformed coordinates are
// reported back to the repository; every other record is stored with its
// possibly rewritten address.
func (ns *NormalizationService) worker(
	ctx context.Context,
	idx int,
	wg *sync.WaitGroup,
	jobs <-chan models.LocationRecord,
) {
	defer wg.Done()
	for rec := range jobs {
		ns.metrics.ActiveWorkers.Inc()
		ns.process(ctx, idx, rec)
		ns.metrics.ActiveWorkers.Dec()
	}
}

func (ns *NormalizationService) process(ctx context.Context, idx int, rec models.LocationRecord) {
	ns.log.DebugContext(ctx, "Processing record", "worker", idx, "record", rec.ID)

	startTime := time.Now()
	match, found, err := ns.preprocessor.Preprocess(ctx, &rec)
	ns.metrics.ResolveSeconds.Observe(time.Since(startTime).Seconds())

	if err != nil {
		ns.log.WarnContext(ctx, "Record has malformed coordinates", "worker", idx, "record", rec.ID, "error", err)
		ns.metrics.RecordsProcessed.WithLabelValues(metrics.StatusMalformed).Inc()

		if err = ns.repo.MarkRecordMalformed(ctx, rec.ID, err.Error()); err != nil {
			ns.metrics.StoreErrors.Inc()
			ns.log.ErrorContext(ctx, "Could not mark record as malformed",
				"worker", idx,
				"record", rec.ID,
				"error", err,
			)
		}
		return
	}

	reference := ""
	if found {
		reference = match.Name
		ns.metrics.RecordsProcessed.WithLabelValues(metrics.StatusMatched).Inc()
		ns.metrics.MatchDistance.Observe(match.DistanceMeters)
	} else {
		ns.metrics.RecordsProcessed.WithLabelValues(metrics.StatusUnmatched).Inc()
	}

	if err = ns.repo.UpdateRecordAddress(ctx, rec.ID, rec.Address, reference); err != nil {
		ns.metrics.StoreErrors.Inc()
		ns.log.ErrorContext(ctx, "Failed to update address for record",
			"worker", idx,
			"record", rec.ID,
			"error", err,
		)
		return
	}

	ns.log.DebugContext(ctx, "Worker successfully processed the record",
		"worker", idx, "record", rec.ID, "reference", reference)
}
