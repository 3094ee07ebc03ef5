package api

import (
	"encoding/base64"
	"net/http"
	"strconv"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// parsePagination extracts the cursor and limit from query parameters.
// limit defaults to 50 and is silently capped at 200. The returned afterIndex
// is the user_index encoded in the cursor, or 0 for the first page.
func parsePagination(r *http.Request) (afterIndex int64, limit int) {
	afterIndex = decodeCursor(r.URL.Query().Get("cursor"))
	limit = defaultLimit

	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	return afterIndex, limit
}

// encodeCursor encodes an opaque pagination cursor from the last item's
// user_index.
func encodeCursor(index int64) string {
	return base64.URLEncoding.EncodeToString([]byte(strconv.FormatInt(index, 10)))
}

// decodeCursor decodes an opaque pagination cursor back to a user_index.
// Returns 0 if the cursor is empty or invalid.
func decodeCursor(cursor string) int64 {
	if cursor == "" {
		return 0
	}
	b, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return 0
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
