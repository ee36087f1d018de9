package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"traillog/backend/services/dashboard-api/internal/models"
	"traillog/backend/services/dashboard-api/internal/service"
)

type stubDiaryRepo struct {
	entries []models.DiaryEntry
}

func (s *stubDiaryRepo) Create(ctx context.Context, date, content string) (*models.DiaryEntry, error) {
	entry := models.DiaryEntry{
		ID:        int64(len(s.entries) + 1),
		Date:      date,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	s.entries = append(s.entries, entry)
	return &entry, nil
}

func (s *stubDiaryRepo) ListByRange(ctx context.Context, from, to string) ([]models.DiaryEntry, error) {
	return s.entries, nil
}

func TestDiaryCreateHandler(t *testing.T) {
	repo := &stubDiaryRepo{}
	svc := service.NewDiaryService(repo, zap.NewNop())
	handler := NewDiaryCreateHandler(svc)

	body := `{"date": "2024-03-01", "content": "rest day"}`
	req := httptest.NewRequest(http.MethodPost, "/api/diary", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var entry models.DiaryEntry
	if err := json.NewDecoder(rec.Body).Decode(&entry); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if entry.ID != 1 || entry.Content != "rest day" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestDiaryCreateHandlerRejectsBadInput(t *testing.T) {
	svc := service.NewDiaryService(&stubDiaryRepo{}, zap.NewNop())
	handler := NewDiaryCreateHandler(svc)

	cases := []string{
		`not json`,
		`{"date": "March 1st", "content": "x"}`,
		`{"date": "2024-03-01", "content": ""}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/diary", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestDiaryListHandlerReturnsEmptyArray(t *testing.T) {
	svc := service.NewDiaryService(&stubDiaryRepo{}, zap.NewNop())
	handler := NewDiaryListHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/diary", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(payload["entries"]) != "[]" {
		t.Fatalf("expected empty array, got %s", payload["entries"])
	}
}
