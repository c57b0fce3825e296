package httpx

import (
	"net/http"
	"strconv"
)

// parseIntQuery reads an integer query parameter, falling back to def when
// absent or malformed.
func parseIntQuery(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// parsePageOptions reads limit/offset with repository-side clamping left to
// the data layer.
func parsePageOptions(r *http.Request) (limit, offset int) {
	return parseIntQuery(r, "limit", 0), parseIntQuery(r, "offset", 0)
}

func optionalQuery(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}
