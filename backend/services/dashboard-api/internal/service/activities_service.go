package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"traillog/backend/libs/activity"
	"traillog/backend/services/dashboard-api/internal/repository"
)

const (
	defaultLimit = 200
	maxLimit     = 1000
	dateLayout   = "2006-01-02"
)

// ErrInvalidDate indicates a malformed date-range bound.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// sortableColumns is the allow-list for the sort parameter. Anything else
// silently falls back to date so a stale or hand-edited dashboard URL still
// renders.
var sortableColumns = map[string]string{
	"date":             "date",
	"name":             "name",
	"activity_type":    "activity_type",
	"duration_sec":     "duration_sec",
	"distance_m":       "distance_m",
	"elevation_gain_m": "elevation_gain_m",
	"avg_speed_kmh":    "avg_speed_kmh",
	"avg_hr":           "avg_hr",
	"max_hr":           "max_hr",
	"calories":         "calories",
	"avg_power":        "avg_power",
	"tss":              "tss",
}

// ActivityReader reads the activities table.
type ActivityReader interface {
	List(ctx context.Context, params repository.ActivityListParams) ([]activity.Activity, error)
	GetByID(ctx context.Context, id int64) (*activity.Activity, error)
}

// QueryCache caches list results between importer runs.
type QueryCache interface {
	Get(ctx context.Context, queryKey string) ([]activity.Activity, bool)
	Set(ctx context.Context, queryKey string, activities []activity.Activity) error
	Invalidate(ctx context.Context) error
}

// ListInput carries the raw, unvalidated query parameters from the dashboard.
type ListInput struct {
	Search string
	From   string
	To     string
	Sort   string
	Order  string
	Limit  int
	Offset int
}

// ActivitiesService ties repository and query cache.
type ActivitiesService struct {
	repo   ActivityReader
	cache  QueryCache // nil when redis is not configured
	logger *zap.Logger
}

// NewActivitiesService builds service.
func NewActivitiesService(repo ActivityReader, cache QueryCache, logger *zap.Logger) *ActivitiesService {
	return &ActivitiesService{repo: repo, cache: cache, logger: logger}
}

// List validates the input and returns matching activities, served from the
// query cache when possible.
func (s *ActivitiesService) List(ctx context.Context, input ListInput) ([]activity.Activity, error) {
	params, err := resolveListParams(input)
	if err != nil {
		return nil, err
	}

	key := cacheKey(params)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	activities, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, key, activities); cacheErr != nil {
			s.logger.Warn("failed to cache activity list", zap.Error(cacheErr))
		}
	}
	return activities, nil
}

// Get returns one activity; repository.ErrActivityNotFound when missing.
func (s *ActivitiesService) Get(ctx context.Context, id int64) (*activity.Activity, error) {
	return s.repo.GetByID(ctx, id)
}

// InvalidateCache drops cached list results. Called by the importer after a
// successful seed; a no-op without redis.
func (s *ActivitiesService) InvalidateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx)
}

func resolveListParams(input ListInput) (repository.ActivityListParams, error) {
	params := repository.ActivityListParams{
		Search: input.Search,
		From:   input.From,
		To:     input.To,
	}

	if input.From != "" {
		if _, err := time.Parse(dateLayout, input.From); err != nil {
			return params, fmt.Errorf("%w: %q", ErrInvalidDate, input.From)
		}
	}
	if input.To != "" {
		if _, err := time.Parse(dateLayout, input.To); err != nil {
			return params, fmt.Errorf("%w: %q", ErrInvalidDate, input.To)
		}
	}

	column, ok := sortableColumns[input.Sort]
	if !ok {
		column = "date"
	}
	params.SortColumn = column
	params.Descending = input.Order != "asc"

	params.Limit = input.Limit
	if params.Limit <= 0 {
		params.Limit = defaultLimit
	}
	if params.Limit > maxLimit {
		params.Limit = maxLimit
	}
	params.Offset = input.Offset
	if params.Offset < 0 {
		params.Offset = 0
	}
	return params, nil
}

func cacheKey(p repository.ActivityListParams) string {
	return fmt.Sprintf("%s|%s|%s|%s|%v|%d|%d",
		p.Search, p.From, p.To, p.SortColumn, p.Descending, p.Limit, p.Offset)
}
