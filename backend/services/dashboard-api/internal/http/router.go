package httpserver

import "net/http"

// Routes groups handlers.
type Routes struct {
	ActivitiesList  http.HandlerFunc
	ActivityDetail  http.HandlerFunc
	DiaryList       http.HandlerFunc
	DiaryCreate     http.HandlerFunc
	CacheInvalidate http.HandlerFunc
	Health          http.HandlerFunc
}

// NewRouter registers endpoints. serviceAuth guards the internal surface; when
// nil the internal endpoints are not registered at all.
func NewRouter(routes Routes, serviceAuth func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	if routes.ActivitiesList != nil {
		mux.Handle("/api/activities", method(http.MethodGet, routes.ActivitiesList))
	}
	if routes.ActivityDetail != nil {
		mux.Handle("/api/activities/", method(http.MethodGet, routes.ActivityDetail))
	}
	if routes.DiaryList != nil || routes.DiaryCreate != nil {
		mux.Handle("/api/diary", byMethod(map[string]http.HandlerFunc{
			http.MethodGet:  routes.DiaryList,
			http.MethodPost: routes.DiaryCreate,
		}))
	}
	if routes.CacheInvalidate != nil && serviceAuth != nil {
		mux.Handle("/internal/cache/invalidate",
			method(http.MethodPost, serviceAuth(routes.CacheInvalidate).ServeHTTP))
	}
	if routes.Health != nil {
		mux.Handle("/health", method(http.MethodGet, routes.Health))
	}

	return mux
}

func method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}

func byMethod(handlers map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok && handler != nil {
			handler(w, r)
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
