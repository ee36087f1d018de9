package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"traillog/backend/services/dashboard-api/internal/models"
	"traillog/backend/services/dashboard-api/internal/service"
)

// NewDiaryListHandler returns GET /api/diary handler.
func NewDiaryListHandler(svc *service.DiaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		entries, err := svc.List(r.Context(),
			strings.TrimSpace(query.Get("from")),
			strings.TrimSpace(query.Get("to")))
		if err != nil {
			if errors.Is(err, service.ErrInvalidDate) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to load diary entries")
			return
		}
		if entries == nil {
			entries = []models.DiaryEntry{}
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"entries": entries,
		})
	}
}

type createDiaryRequest struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// NewDiaryCreateHandler returns POST /api/diary handler.
func NewDiaryCreateHandler(svc *service.DiaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDiaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entry, err := svc.Create(r.Context(), req.Date, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidDate),
				errors.Is(err, service.ErrDiaryContentEmpty),
				errors.Is(err, service.ErrDiaryContentTooLong):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "failed to save diary entry")
			}
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}
