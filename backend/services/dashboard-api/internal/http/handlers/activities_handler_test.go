package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"traillog/backend/libs/activity"
	"traillog/backend/services/dashboard-api/internal/repository"
	"traillog/backend/services/dashboard-api/internal/service"
)

type stubActivityRepo struct {
	lastParams repository.ActivityListParams
	result     []activity.Activity
	byID       map[int64]*activity.Activity
}

func (s *stubActivityRepo) List(ctx context.Context, params repository.ActivityListParams) ([]activity.Activity, error) {
	s.lastParams = params
	return s.result, nil
}

func (s *stubActivityRepo) GetByID(ctx context.Context, id int64) (*activity.Activity, error) {
	if a, ok := s.byID[id]; ok {
		return a, nil
	}
	return nil, repository.ErrActivityNotFound
}

func TestActivitiesListHandlerReturnsPayload(t *testing.T) {
	name := "Evening run"
	repo := &stubActivityRepo{result: []activity.Activity{{Id: 42, Date: "2012-05-09", Name: &name}}}
	svc := service.NewActivitiesService(repo, nil, zap.NewNop())
	handler := NewActivitiesListHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/activities?search=run&sort=distance_m&order=asc", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload struct {
		Activities []activity.Activity `json:"activities"`
		Count      int                 `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Count != 1 || len(payload.Activities) != 1 || payload.Activities[0].Id != 42 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if repo.lastParams.Search != "run" || repo.lastParams.SortColumn != "distance_m" || repo.lastParams.Descending {
		t.Fatalf("query params not forwarded: %+v", repo.lastParams)
	}
}

func TestActivitiesListHandlerRejectsBadDate(t *testing.T) {
	svc := service.NewActivitiesService(&stubActivityRepo{}, nil, zap.NewNop())
	handler := NewActivitiesListHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/activities?from=bogus", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestActivitiesListHandlerReturnsEmptyArray(t *testing.T) {
	svc := service.NewActivitiesService(&stubActivityRepo{}, nil, zap.NewNop())
	handler := NewActivitiesListHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/activities", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(payload["activities"]) != "[]" {
		t.Fatalf("expected empty array, got %s", payload["activities"])
	}
}

func TestActivityDetailHandler(t *testing.T) {
	repo := &stubActivityRepo{byID: map[int64]*activity.Activity{42: {Id: 42, Date: "2012-05-09"}}}
	svc := service.NewActivitiesService(repo, nil, zap.NewNop())
	handler := NewActivityDetailHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/activities/42", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got activity.Activity
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Id != 42 || got.Date != "2012-05-09" {
		t.Fatalf("unexpected activity: %+v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/activities/99", nil)
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/activities/abc", nil)
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
