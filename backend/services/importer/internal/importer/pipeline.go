package importer

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"traillog/backend/libs/activity"
)

const defaultBatchSize = 500

// ActivityStore upserts canonical activities into the activities table.
type ActivityStore interface {
	UpsertBatch(ctx context.Context, batch []activity.Activity) error
}

// CacheNotifier tells the dashboard API to drop its query cache after a
// successful seed.
type CacheNotifier interface {
	InvalidateActivities(ctx context.Context) error
}

// Options configures one pipeline run.
type Options struct {
	SourceFiles []string
	CachePath   string
	BatchSize   int
}

// Summary reports what one run did at each stage.
type Summary struct {
	FilesRead   int
	RecordsRead int
	Duplicates  int
	Skipped     int
	Normalized  int
	Batches     int
	Upserted    int
	SeedSkipped bool
}

// Pipeline converts vendor export files into canonical activities, writes the
// local cache artifact and optionally bulk-seeds the remote store. Runs are
// idempotent: the cache file is overwritten wholesale and the upsert fully
// replaces any row sharing an id.
type Pipeline struct {
	opts     Options
	store    ActivityStore // nil means local-cache-only mode
	notifier CacheNotifier // nil means no dashboard to notify
	logger   *zap.Logger
}

// New builds a pipeline. Pass a nil store to run in local-cache-only mode.
func New(opts Options, store ActivityStore, notifier CacheNotifier, logger *zap.Logger) *Pipeline {
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	return &Pipeline{opts: opts, store: store, notifier: notifier, logger: logger}
}

// Run executes the full import sequentially: read, merge, dedupe, normalize,
// sort, write cache, seed. Each step depends on the previous succeeding; the
// cache write always happens regardless of whether seeding is configured.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	merged, filesRead, err := readSources(p.opts.SourceFiles, p.logger)
	if err != nil {
		return summary, err
	}
	summary.FilesRead = filesRead
	summary.RecordsRead = len(merged)

	unique := dedupe(merged)
	summary.Duplicates = len(merged) - len(unique)

	activities := make([]activity.Activity, 0, len(unique))
	for _, raw := range unique {
		normalized := normalize(raw)
		if normalized == nil {
			summary.Skipped++
			p.logger.Warn("skipping record without usable begin timestamp",
				zap.Int64("activity_id", raw.ActivityID))
			continue
		}
		activities = append(activities, *normalized)
	}
	summary.Normalized = len(activities)

	// Most recent first; stable so prior order decides same-day ties. The
	// ordering is a convenience for readers of the cache artifact.
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Date > activities[j].Date
	})

	if err := writeCache(p.opts.CachePath, activities); err != nil {
		return summary, err
	}
	p.logger.Info("local cache written",
		zap.String("path", p.opts.CachePath),
		zap.Int("activities", len(activities)))

	if p.store == nil {
		summary.SeedSkipped = true
		p.logger.Info("remote store not configured, seeding skipped")
		p.logSummary(summary)
		return summary, nil
	}

	if err := p.seed(ctx, activities, summary); err != nil {
		return summary, err
	}

	if p.notifier != nil {
		// Best effort: a stale dashboard cache expires on its own.
		if err := p.notifier.InvalidateActivities(ctx); err != nil {
			p.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
		}
	}

	p.logSummary(summary)
	return summary, nil
}

// seed upserts the canonical set in fixed-size batches, sequentially. A failed
// batch aborts the run immediately; batches already committed stay committed.
func (p *Pipeline) seed(ctx context.Context, activities []activity.Activity, summary *Summary) error {
	for start := 0; start < len(activities); start += p.opts.BatchSize {
		end := start + p.opts.BatchSize
		if end > len(activities) {
			end = len(activities)
		}
		batch := activities[start:end]
		summary.Batches++

		if err := p.store.UpsertBatch(ctx, batch); err != nil {
			return fmt.Errorf("upsert batch %d (%d records): %w", summary.Batches, len(batch), err)
		}
		summary.Upserted += len(batch)
		p.logger.Info("batch upserted",
			zap.Int("batch", summary.Batches),
			zap.Int("records", len(batch)))
	}
	return nil
}

func (p *Pipeline) logSummary(s *Summary) {
	p.logger.Info("import finished",
		zap.Int("files_read", s.FilesRead),
		zap.Int("records_read", s.RecordsRead),
		zap.Int("duplicates", s.Duplicates),
		zap.Int("skipped", s.Skipped),
		zap.Int("normalized", s.Normalized),
		zap.Int("batches", s.Batches),
		zap.Int("upserted", s.Upserted),
		zap.Bool("seed_skipped", s.SeedSkipped))
}
