package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/handler/http/response"
)

// decodeJSON decodes the request body into dst and writes a 400 when it
// cannot. The caller returns when it reports false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// listParams reads search, page and limit. A missing limit returns the whole table.
func listParams(r *http.Request) shared.ListParams {
	q := r.URL.Query()
	params := shared.ListParams{Search: strings.TrimSpace(q.Get("search"))}

	if p := q.Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			params.Page = pageNum
		}
	}
	if l := q.Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			params.Limit = limitNum
		}
	}
	return params
}

// queryPtr returns the query value for key, or nil when it is absent or blank.
func queryPtr(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func sessionFrom(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}
