package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nandervang/go-consult-base/internal/logger"
)

// dateLayout is the format accepted for date query parameters.
const dateLayout = "2006-01-02"

// idFromURL parses the named chi URL parameter as a positive int64.
func idFromURL(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid `%s` url parameter: %q", name, raw)
	}

	return id, nil
}

// queryInt64 parses an optional int64 query parameter. A missing parameter
// yields (nil, nil).
func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid `%s` query parameter: %q", name, raw)
	}

	return &v, nil
}

// queryBool parses an optional boolean query parameter. A missing parameter
// yields (nil, nil).
func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid `%s` query parameter: %q", name, raw)
	}

	return &v, nil
}

// queryDate parses an optional "YYYY-MM-DD" query parameter. A missing
// parameter yields (nil, nil).
func queryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid `%s` query parameter: %q", name, raw)
	}

	return &v, nil
}

// respondError translates a service or storage error into an HTTP response
// using [statusFromError]. Server-side failures are logged at error level
// with a generic body; client errors echo the sentinel's message.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Msg(msg)
	http.Error(w, err.Error(), status)
}
