package handlers

import (
	"net/http"

	"traillog/backend/services/dashboard-api/internal/service"
)

// NewCacheInvalidateHandler returns POST /internal/cache/invalidate handler.
// The importer calls this after seeding so stale query results disappear
// immediately instead of waiting out the TTL.
func NewCacheInvalidateHandler(svc *service.ActivitiesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.InvalidateCache(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to invalidate cache")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "invalidated"})
	}
}
