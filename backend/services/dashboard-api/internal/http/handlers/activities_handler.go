package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"traillog/backend/libs/activity"
	"traillog/backend/services/dashboard-api/internal/repository"
	"traillog/backend/services/dashboard-api/internal/service"
)

// NewActivitiesListHandler returns GET /api/activities handler.
func NewActivitiesListHandler(svc *service.ActivitiesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		input := service.ListInput{
			Search: strings.TrimSpace(query.Get("search")),
			From:   strings.TrimSpace(query.Get("from")),
			To:     strings.TrimSpace(query.Get("to")),
			Sort:   strings.TrimSpace(query.Get("sort")),
			Order:  strings.ToLower(strings.TrimSpace(query.Get("order"))),
		}
		if raw := query.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid limit")
				return
			}
			input.Limit = limit
		}
		if raw := query.Get("offset"); raw != "" {
			offset, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid offset")
				return
			}
			input.Offset = offset
		}

		activities, err := svc.List(r.Context(), input)
		if err != nil {
			if errors.Is(err, service.ErrInvalidDate) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to load activities")
			return
		}
		if activities == nil {
			activities = []activity.Activity{}
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"activities": activities,
			"count":      len(activities),
		})
	}
}

// NewActivityDetailHandler returns GET /api/activities/{id} handler.
func NewActivityDetailHandler(svc *service.ActivitiesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := strings.TrimPrefix(r.URL.Path, "/api/activities/")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			writeError(w, http.StatusBadRequest, "invalid activity id")
			return
		}

		result, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrActivityNotFound) {
				writeError(w, http.StatusNotFound, "activity not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to load activity")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
