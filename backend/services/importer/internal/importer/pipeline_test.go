package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"traillog/backend/libs/activity"
)

type fakeStore struct {
	batches [][]activity.Activity
	failOn  int // 1-based batch index to fail on, 0 = never
}

func (s *fakeStore) UpsertBatch(ctx context.Context, batch []activity.Activity) error {
	call := len(s.batches) + 1
	if s.failOn != 0 && call == s.failOn {
		return errors.New("store unavailable")
	}
	copied := make([]activity.Activity, len(batch))
	copy(copied, batch)
	s.batches = append(s.batches, copied)
	return nil
}

type fakeNotifier struct {
	calls int
	err   error
}

func (n *fakeNotifier) InvalidateActivities(ctx context.Context) error {
	n.calls++
	return n.err
}

func sourceWithActivities(t *testing.T, dir, name string, ids ...int64) string {
	t.Helper()
	records := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		records = append(records, map[string]interface{}{
			"activityId":     id,
			"beginTimestamp": 1336550700000 + float64(id),
		})
	}
	body, err := json.Marshal(map[string]interface{}{"activities": records})
	if err != nil {
		t.Fatalf("marshal source: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestPipelineEndToEnd(t *testing.T) {
	dir := t.TempDir()
	one := writeSource(t, dir, "one.json",
		`{"activities": [{"activityId": 42, "beginTimestamp": 1336550700000, "distance": 834400, "duration": 2945000}]}`)
	two := writeSource(t, dir, "two.json",
		`{"activities": [{"activityId": 7, "beginTimestamp": 1400000000000}, {"activityId": 9}]}`)
	cachePath := filepath.Join(dir, "cache", "activities.json")

	store := &fakeStore{}
	notifier := &fakeNotifier{}
	p := New(Options{SourceFiles: []string{one, two}, CachePath: cachePath}, store, notifier, zap.NewNop())

	summary, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if summary.FilesRead != 2 || summary.RecordsRead != 3 {
		t.Fatalf("unexpected read counts: %+v", summary)
	}
	if summary.Skipped != 1 {
		t.Fatalf("expected 1 skip for missing timestamp, got %d", summary.Skipped)
	}
	if summary.Normalized != 2 || summary.Upserted != 2 || summary.Batches != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected 1 cache invalidation, got %d", notifier.calls)
	}

	data, err := os.ReadFile(cachePath)
	if err != nil {
		t.Fatalf("read cache artifact: %v", err)
	}
	var cached []activity.Activity
	if err := json.Unmarshal(data, &cached); err != nil {
		t.Fatalf("decode cache artifact: %v", err)
	}
	if len(cached) != 2 {
		t.Fatalf("expected 2 cached activities, got %d", len(cached))
	}
	// Most recent first.
	if cached[0].Id != 7 || cached[1].Id != 42 {
		t.Fatalf("expected date-descending order, got ids %d, %d", cached[0].Id, cached[1].Id)
	}
	if cached[1].Date != "2012-05-09" {
		t.Fatalf("expected date 2012-05-09, got %q", cached[1].Date)
	}
	if cached[1].DistanceM == nil || *cached[1].DistanceM != 8344 {
		t.Fatalf("expected distance 8344, got %v", cached[1].DistanceM)
	}
	if cached[1].DurationSec == nil || *cached[1].DurationSec != 2945 {
		t.Fatalf("expected duration 2945, got %v", cached[1].DurationSec)
	}
}

func TestPipelineBatchPartitioning(t *testing.T) {
	dir := t.TempDir()
	ids := make([]int64, 1200)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	path := sourceWithActivities(t, dir, "big.json", ids...)

	store := &fakeStore{}
	p := New(Options{
		SourceFiles: []string{path},
		CachePath:   filepath.Join(dir, "activities.json"),
	}, store, nil, zap.NewNop())

	summary, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Batches != 3 || summary.Upserted != 1200 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	sizes := []int{len(store.batches[0]), len(store.batches[1]), len(store.batches[2])}
	if sizes[0] != 500 || sizes[1] != 500 || sizes[2] != 200 {
		t.Fatalf("expected batch sizes 500/500/200, got %v", sizes)
	}
}

func TestPipelineAbortsOnFailedBatch(t *testing.T) {
	dir := t.TempDir()
	ids := make([]int64, 1200)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	path := sourceWithActivities(t, dir, "big.json", ids...)

	store := &fakeStore{failOn: 2}
	notifier := &fakeNotifier{}
	p := New(Options{
		SourceFiles: []string{path},
		CachePath:   filepath.Join(dir, "activities.json"),
	}, store, notifier, zap.NewNop())

	summary, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected fatal error on failed batch")
	}
	// First batch stays committed, the third is never attempted.
	if len(store.batches) != 1 {
		t.Fatalf("expected exactly 1 committed batch, got %d", len(store.batches))
	}
	if summary.Upserted != 500 {
		t.Fatalf("expected 500 upserted before abort, got %d", summary.Upserted)
	}
	if notifier.calls != 0 {
		t.Fatalf("expected no invalidation after failed seed, got %d", notifier.calls)
	}
}

func TestPipelineLocalCacheOnlyMode(t *testing.T) {
	dir := t.TempDir()
	path := sourceWithActivities(t, dir, "src.json", 1, 2)
	cachePath := filepath.Join(dir, "activities.json")

	p := New(Options{SourceFiles: []string{path}, CachePath: cachePath}, nil, nil, zap.NewNop())

	summary, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !summary.SeedSkipped {
		t.Fatal("expected seed to be reported as skipped")
	}
	if summary.Batches != 0 || summary.Upserted != 0 {
		t.Fatalf("expected no upserts, got %+v", summary)
	}
	if _, err := os.Stat(cachePath); err != nil {
		t.Fatalf("expected cache artifact to be written: %v", err)
	}
}

func TestPipelineRunsAreRepeatable(t *testing.T) {
	dir := t.TempDir()
	path := sourceWithActivities(t, dir, "src.json", 3, 1, 2)
	cachePath := filepath.Join(dir, "activities.json")

	run := func() []activity.Activity {
		store := &fakeStore{}
		p := New(Options{SourceFiles: []string{path}, CachePath: cachePath}, store, nil, zap.NewNop())
		if _, err := p.Run(context.Background()); err != nil {
			t.Fatalf("run: %v", err)
		}
		var all []activity.Activity
		for _, b := range store.batches {
			all = append(all, b...)
		}
		return all
	}

	first := run()
	second := run()
	if fmt.Sprintf("%+v", first) != fmt.Sprintf("%+v", second) {
		t.Fatal("expected identical upsert payloads across runs")
	}
}

func TestPipelineSortsDatesDescending(t *testing.T) {
	dir := t.TempDir()
	// 2020-01-01, 2021-06-15, 2019-12-31 as epoch milliseconds.
	path := writeSource(t, dir, "src.json", `{"activities": [
		{"activityId": 1, "beginTimestamp": 1577836800000},
		{"activityId": 2, "beginTimestamp": 1623715200000},
		{"activityId": 3, "beginTimestamp": 1577750400000}
	]}`)
	cachePath := filepath.Join(dir, "activities.json")

	p := New(Options{SourceFiles: []string{path}, CachePath: cachePath}, nil, nil, zap.NewNop())
	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(cachePath)
	if err != nil {
		t.Fatalf("read cache: %v", err)
	}
	var cached []activity.Activity
	if err := json.Unmarshal(data, &cached); err != nil {
		t.Fatalf("decode cache: %v", err)
	}
	want := []string{"2021-06-15", "2020-01-01", "2019-12-31"}
	for i, w := range want {
		if cached[i].Date != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, cached[i].Date)
		}
	}
}
